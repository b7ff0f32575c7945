// contact/contact_model.go
package contact

import (
	"time"

	"gorm.io/gorm"
)

// Contact is one row of a scout's private contact register. A scout keeps at
// most one contact per manager; the (scout_nick, manager_id) pair is the
// natural key and writes go through an on-conflict upsert.
type Contact struct {
	gorm.Model
	ScoutNick   string    `json:"-" gorm:"index:idx_contacts_scout_manager,unique;not null"`
	ManagerID   string    `json:"manager_id" gorm:"index:idx_contacts_scout_manager,unique;not null"`
	ManagerNick string    `json:"manager_nick"`
	PlayerName  string    `json:"player_name"`
	PlayerID    string    `json:"player_id"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	ContactDate time.Time `json:"contact_date" gorm:"type:date"`
}

// Contact statuses, in the order they are offered in the UI.
const (
	StatusNoContact       = "No contact"
	StatusNewToContact    = "New (to contact)"
	StatusMailSent        = "HT-mail sent"
	StatusRepliedPositive = "Replied (positive)"
	StatusRepliedNegative = "Replied (negative)"
	StatusMonitored       = "Monitored"
	StatusClosed          = "Closed (do not contact)"
)

// StatusOptions lists every valid contact status.
var StatusOptions = []string{
	StatusNoContact,
	StatusNewToContact,
	StatusMailSent,
	StatusRepliedPositive,
	StatusRepliedNegative,
	StatusMonitored,
	StatusClosed,
}

// ValidStatus reports whether s is one of the fixed contact statuses.
func ValidStatus(s string) bool {
	for _, opt := range StatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}
