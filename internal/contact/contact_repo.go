package contact

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pkruszek/scout-assistant/pkg/apperrors"
)

// ContactRepository defines the interface for contact data operations.
// Every method is scoped to a single scout nick; one scout can never see or
// touch another scout's rows.
type ContactRepository interface {
	GetAll(scoutNick string, page, limit int) ([]Contact, int64, error)
	GetByManagerID(scoutNick, managerID string) (*Contact, error)
	Upsert(contact *Contact) error
	Delete(scoutNick, managerID string) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// GetAll returns the scout's contacts ordered by contact date, newest first.
// limit <= 0 disables pagination and returns the whole register.
func (r *contactRepository) GetAll(scoutNick string, page, limit int) ([]Contact, int64, error) {
	var contacts []Contact
	var total int64

	query := r.db.Model(&Contact{}).Where("scout_nick = ?", scoutNick)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapStore("contacts.count", err)
	}

	query = query.Order("contact_date desc, id desc")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.Find(&contacts).Error; err != nil {
		return nil, 0, apperrors.WrapStore("contacts.list", err)
	}
	return contacts, total, nil
}

func (r *contactRepository) GetByManagerID(scoutNick, managerID string) (*Contact, error) {
	var contact Contact
	err := r.db.Where("scout_nick = ? AND manager_id = ?", scoutNick, managerID).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.WrapStore("contacts.get", err)
	}
	return &contact, nil
}

// Upsert inserts the contact or, when the (scout_nick, manager_id) key already
// exists, replaces every mutable field in place. Single atomic statement, so
// two submissions for the same key cannot produce duplicate rows.
func (r *contactRepository) Upsert(contact *Contact) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scout_nick"}, {Name: "manager_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"manager_nick", "player_name", "player_id", "status", "notes", "contact_date", "updated_at",
		}),
	}).Create(contact).Error
	return apperrors.WrapStore("contacts.upsert", err)
}

// Delete removes the contact if present. Deleting an absent manager id is a
// no-op, not an error.
func (r *contactRepository) Delete(scoutNick, managerID string) error {
	err := r.db.Unscoped().
		Where("scout_nick = ? AND manager_id = ?", scoutNick, managerID).
		Delete(&Contact{}).Error
	return apperrors.WrapStore("contacts.delete", err)
}
