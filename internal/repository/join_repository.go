package repository

import (
	"github.com/skghosh/socialdev-backend/internal/models"
	"gorm.io/gorm"
)

type JoinRepository struct {
	db *gorm.DB
}

func NewJoinRepository(db *gorm.DB) *JoinRepository {
	return &JoinRepository{db: db}
}

// Create inserts a join record and bumps the event's participant counter in
// one transaction. A duplicate (event_id, user_email) pair fails the insert
// with gorm.ErrDuplicatedKey via the composite unique index, so two racing
// joins can never both land.
func (r *JoinRepository) Create(record *models.JoinRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&models.Event{}).
			Where("id = ?", record.EventID).
			UpdateColumn("participants", gorm.Expr("participants + ?", 1)).Error
	})
}

func (r *JoinRepository) GetByID(id uint) (*models.JoinRecord, error) {
	var record models.JoinRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *JoinRepository) GetByEventAndEmail(eventID uint, email string) (*models.JoinRecord, error) {
	var record models.JoinRecord
	err := r.db.Where("event_id = ? AND user_email = ?", eventID, email).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *JoinRepository) GetByUserEmail(email string) ([]models.JoinRecord, error) {
	var records []models.JoinRecord
	err := r.db.Where("user_email = ?", email).
		Order("joined_date DESC").
		Find(&records).Error
	return records, err
}

func (r *JoinRepository) GetRecent(limit int) ([]models.JoinRecord, error) {
	var records []models.JoinRecord
	err := r.db.Order("joined_date DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *JoinRepository) GetAll() ([]models.JoinRecord, error) {
	var records []models.JoinRecord
	err := r.db.Order("joined_date DESC").Find(&records).Error
	return records, err
}

// GetDonations returns join records carrying a paid contribution.
func (r *JoinRepository) GetDonations() ([]models.JoinRecord, error) {
	var records []models.JoinRecord
	err := r.db.Where("amount > 0").
		Order("joined_date DESC").
		Find(&records).Error
	return records, err
}

func (r *JoinRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.JoinRecord{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a join record and gives the seat back to the event,
// mirroring Create in a single transaction.
func (r *JoinRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var record models.JoinRecord
		if err := tx.First(&record, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.JoinRecord{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&models.Event{}).
			Where("id = ? AND participants > 0", record.EventID).
			UpdateColumn("participants", gorm.Expr("participants - ?", 1)).Error
	})
}
