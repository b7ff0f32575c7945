// roster/roster_model.go
package roster

import (
	"gorm.io/gorm"
)

// Player is one imported roster row. Rows are replaced wholesale on every
// import, so there is no uniqueness constraint on player id. Skill ratings
// stay textual because export files mix numbers with level names.
type Player struct {
	gorm.Model
	ScoutNick        string `json:"-" gorm:"index;not null"`
	PlayerID         int64  `json:"player_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	OwningUserID     string `json:"owning_user_id"`
	Age              int    `json:"age"`
	AgeDays          int    `json:"age_days"`
	PlayerForm       int    `json:"player_form"`
	StaminaSkill     string `json:"stamina_skill"`
	DefenderSkill    string `json:"defender_skill"`
	PlaymakerSkill   string `json:"playmaker_skill"`
	WingerSkill      string `json:"winger_skill"`
	PassingSkill     string `json:"passing_skill"`
	ScorerSkill      string `json:"scorer_skill"`
	SetPiecesSkill   string `json:"set_pieces_skill"`
	TeamTrainerSkill int    `json:"team_trainer_skill"`
	FormCoachLevels  int    `json:"form_coach_levels"`
}

// ReconciledRow is the ephemeral display projection: a roster row enriched
// with the matching contact's nick, status and notes. Never persisted;
// rebuilt on every view.
type ReconciledRow struct {
	Player
	ManagerNick   string `json:"manager_nick"`
	ContactStatus string `json:"contact_status"`
	ContactNotes  string `json:"contact_notes"`
}
