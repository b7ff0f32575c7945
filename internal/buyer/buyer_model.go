package buyer

import (
	"time"

	"gorm.io/gorm"
)

// Buyer is one row of a scout's buyer register: a manager who may purchase
// players the scout places. Shares the manager-id domain with contacts but is
// a disjoint namespace; the same manager can be both a contact and a buyer.
type Buyer struct {
	gorm.Model
	ScoutNick   string    `json:"-" gorm:"index:idx_buyers_scout_manager,unique;not null"`
	ManagerID   string    `json:"manager_id" gorm:"index:idx_buyers_scout_manager,unique;not null"`
	ManagerNick string    `json:"manager_nick"`
	Budget      string    `json:"budget"` // free text, not necessarily numeric
	Spots       string    `json:"spots"`  // open squad spots, free text
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	ContactDate time.Time `json:"contact_date" gorm:"type:date"`
}

const (
	StatusNew           = "New"
	StatusAsked         = "Asked"
	StatusInterested    = "Interested"
	StatusPurchased     = "Purchased"
	StatusNotInterested = "Not interested"
	StatusFollowUpLater = "Follow up later"
)

var StatusOptions = []string{
	StatusNew,
	StatusAsked,
	StatusInterested,
	StatusPurchased,
	StatusNotInterested,
	StatusFollowUpLater,
}

func ValidStatus(s string) bool {
	for _, opt := range StatusOptions {
		if s == opt {
			return true
		}
	}
	return false
}
