package repository

import (
	"koperasi-backend/internal/model"

	"gorm.io/gorm"
)

type LoanRepository interface {
	GetAll() ([]model.Loan, error)
	GetByUserID(userID uint) ([]model.Loan, error)
	GetByID(id uint) (*model.Loan, error)
	Create(loan *model.Loan) error
	Update(loan *model.Loan) error
	CountByStatus(status string, userID uint) (int64, error)
}

type loanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db}
}

func (r *loanRepository) GetAll() ([]model.Loan, error) {
	var loans []model.Loan
	// Admin melihat semua pinjaman beserta pemilik dan pelunasannya
	err := r.db.Preload("User").Preload("Settlement").Find(&loans).Error
	return loans, err
}

func (r *loanRepository) GetByUserID(userID uint) ([]model.Loan, error) {
	var loans []model.Loan
	err := r.db.Preload("Settlement").Where("user_id = ?", userID).Find(&loans).Error
	return loans, err
}

func (r *loanRepository) GetByID(id uint) (*model.Loan, error) {
	var loan model.Loan
	err := r.db.First(&loan, id).Error
	return &loan, err
}

func (r *loanRepository) Create(loan *model.Loan) error {
	return r.db.Create(loan).Error
}

func (r *loanRepository) Update(loan *model.Loan) error {
	return r.db.Save(loan).Error
}

// CountByStatus dengan userID = 0 menghitung semua user (untuk dashboard admin)
func (r *loanRepository) CountByStatus(status string, userID uint) (int64, error) {
	var count int64
	q := r.db.Model(&model.Loan{}).Where("status = ?", status)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Count(&count).Error
	return count, err
}
