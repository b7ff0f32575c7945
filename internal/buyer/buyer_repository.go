package buyer

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pkruszek/scout-assistant/pkg/apperrors"
)

// BuyerRepository defines the interface for buyer data operations, scoped to
// a single scout nick.
type BuyerRepository interface {
	GetAll(scoutNick string, page, limit int) ([]Buyer, int64, error)
	GetByManagerID(scoutNick, managerID string) (*Buyer, error)
	Upsert(buyer *Buyer) error
	Delete(scoutNick, managerID string) error
}

type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository creates a new instance of BuyerRepository.
func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) GetAll(scoutNick string, page, limit int) ([]Buyer, int64, error) {
	var buyers []Buyer
	var total int64

	query := r.db.Model(&Buyer{}).Where("scout_nick = ?", scoutNick)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapStore("buyers.count", err)
	}

	query = query.Order("contact_date desc, id desc")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.Find(&buyers).Error; err != nil {
		return nil, 0, apperrors.WrapStore("buyers.list", err)
	}
	return buyers, total, nil
}

func (r *buyerRepository) GetByManagerID(scoutNick, managerID string) (*Buyer, error) {
	var buyer Buyer
	err := r.db.Where("scout_nick = ? AND manager_id = ?", scoutNick, managerID).First(&buyer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.WrapStore("buyers.get", err)
	}
	return &buyer, nil
}

// Upsert inserts or replaces in a single statement keyed on
// (scout_nick, manager_id).
func (r *buyerRepository) Upsert(buyer *Buyer) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scout_nick"}, {Name: "manager_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"manager_nick", "budget", "spots", "status", "notes", "contact_date", "updated_at",
		}),
	}).Create(buyer).Error
	return apperrors.WrapStore("buyers.upsert", err)
}

func (r *buyerRepository) Delete(scoutNick, managerID string) error {
	err := r.db.Unscoped().
		Where("scout_nick = ? AND manager_id = ?", scoutNick, managerID).
		Delete(&Buyer{}).Error
	return apperrors.WrapStore("buyers.delete", err)
}
