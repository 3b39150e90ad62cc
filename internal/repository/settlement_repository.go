package repository

import (
	"koperasi-backend/internal/model"

	"gorm.io/gorm"
)

type SettlementRepository interface {
	GetAll() ([]model.Settlement, error)
	GetByID(id uint) (*model.Settlement, error)
	Create(settlement *model.Settlement) error
	Update(settlement *model.Settlement) error
	CountByStatus(status string, userID uint) (int64, error)
}

type settlementRepository struct {
	db *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) SettlementRepository {
	return &settlementRepository{db}
}

func (r *settlementRepository) GetAll() ([]model.Settlement, error) {
	var settlements []model.Settlement
	// Preload berantai: pelunasan -> pinjaman -> pemilik pinjaman
	err := r.db.Preload("Loan.User").Find(&settlements).Error
	return settlements, err
}

func (r *settlementRepository) GetByID(id uint) (*model.Settlement, error) {
	var settlement model.Settlement
	err := r.db.Preload("Loan").First(&settlement, id).Error
	return &settlement, err
}

func (r *settlementRepository) Create(settlement *model.Settlement) error {
	return r.db.Create(settlement).Error
}

func (r *settlementRepository) Update(settlement *model.Settlement) error {
	return r.db.Save(settlement).Error
}

// CountByStatus dengan userID = 0 menghitung semua user; selain itu join ke
// tabel loans untuk membatasi ke pinjaman milik user tersebut
func (r *settlementRepository) CountByStatus(status string, userID uint) (int64, error) {
	var count int64
	q := r.db.Model(&model.Settlement{}).Where("settlements.status = ?", status)
	if userID != 0 {
		q = q.Joins("JOIN loans ON loans.id = settlements.loan_id").
			Where("loans.user_id = ?", userID)
	}
	err := q.Count(&count).Error
	return count, err
}
