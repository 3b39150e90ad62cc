package repository

import (
	"koperasi-backend/internal/model"

	"gorm.io/gorm"
)

type SavingRepository interface {
	GetAll() ([]model.Saving, error)
	GetByUserID(userID uint) ([]model.Saving, error)
	GetByID(id uint) (*model.Saving, error)
	Create(saving *model.Saving) error
	Update(saving *model.Saving) error
	Delete(id uint) error
	SumByType(savingType string, userID uint) (float64, error)
}

type savingRepository struct {
	db *gorm.DB
}

func NewSavingRepository(db *gorm.DB) SavingRepository {
	return &savingRepository{db}
}

func (r *savingRepository) GetAll() ([]model.Saving, error) {
	var savings []model.Saving
	err := r.db.Preload("User").Find(&savings).Error
	return savings, err
}

func (r *savingRepository) GetByUserID(userID uint) ([]model.Saving, error) {
	var savings []model.Saving
	err := r.db.Where("user_id = ?", userID).Find(&savings).Error
	return savings, err
}

func (r *savingRepository) GetByID(id uint) (*model.Saving, error) {
	var saving model.Saving
	err := r.db.Preload("User").First(&saving, id).Error
	return &saving, err
}

func (r *savingRepository) Create(saving *model.Saving) error {
	return r.db.Create(saving).Error
}

func (r *savingRepository) Update(saving *model.Saving) error {
	return r.db.Save(saving).Error
}

func (r *savingRepository) Delete(id uint) error {
	// Hard delete, bukan soft delete
	return r.db.Unscoped().Delete(&model.Saving{}, id).Error
}

// SumByType dengan userID = 0 menjumlahkan simpanan semua user
func (r *savingRepository) SumByType(savingType string, userID uint) (float64, error) {
	var total float64
	q := r.db.Model(&model.Saving{}).Where("type = ?", savingType)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
