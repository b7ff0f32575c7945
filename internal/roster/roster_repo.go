package roster

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pkruszek/scout-assistant/pkg/apperrors"
)

const insertBatchSize = 500

// RosterRepository defines the interface for imported-roster data operations,
// scoped to a single scout nick.
type RosterRepository interface {
	GetAll(scoutNick string) ([]Player, error)
	GetByPlayerID(scoutNick string, playerID int64) (*Player, error)
	// Replace swaps the scout's whole roster for the given rows atomically.
	// An empty slice clears the roster.
	Replace(scoutNick string, players []Player) error
	Clear(scoutNick string) error
	DistinctOwners(scoutNick string) ([]string, error)
}

type rosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new instance of RosterRepository.
func NewRosterRepository(db *gorm.DB) RosterRepository {
	return &rosterRepository{db: db}
}

// GetAll returns the scout's roster in import order.
func (r *rosterRepository) GetAll(scoutNick string) ([]Player, error) {
	var players []Player
	err := r.db.Where("scout_nick = ?", scoutNick).Order("id asc").Find(&players).Error
	if err != nil {
		return nil, apperrors.WrapStore("roster.list", err)
	}
	return players, nil
}

// GetByPlayerID returns the first roster row with the given player id, or nil
// when the roster has none.
func (r *rosterRepository) GetByPlayerID(scoutNick string, playerID int64) (*Player, error) {
	var player Player
	err := r.db.Where("scout_nick = ? AND player_id = ?", scoutNick, playerID).
		Order("id asc").First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.WrapStore("roster.getPlayer", err)
	}
	return &player, nil
}

// Replace runs delete-then-insert inside one transaction so a failed insert
// cannot leave the scout with a half-replaced or empty roster.
func (r *rosterRepository) Replace(scoutNick string, players []Player) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("scout_nick = ?", scoutNick).Delete(&Player{}).Error; err != nil {
			return err
		}
		if len(players) == 0 {
			return nil
		}
		for i := range players {
			players[i].ID = 0
			players[i].ScoutNick = scoutNick
		}
		return tx.CreateInBatches(players, insertBatchSize).Error
	})
	return apperrors.WrapStore("roster.replace", err)
}

func (r *rosterRepository) Clear(scoutNick string) error {
	err := r.db.Unscoped().Where("scout_nick = ?", scoutNick).Delete(&Player{}).Error
	return apperrors.WrapStore("roster.clear", err)
}

// DistinctOwners returns the sorted set of owner ids present in the scout's
// roster, for the owner filter dropdown.
func (r *rosterRepository) DistinctOwners(scoutNick string) ([]string, error) {
	var owners []string
	err := r.db.Model(&Player{}).
		Where("scout_nick = ?", scoutNick).
		Distinct("owning_user_id").
		Order("owning_user_id asc").
		Pluck("owning_user_id", &owners).Error
	if err != nil {
		return nil, apperrors.WrapStore("roster.owners", err)
	}
	return owners, nil
}
