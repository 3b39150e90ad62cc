package repository

import (
	"koperasi-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	Exists(id uint) bool
	CountMembers() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

// Exists dipakai validasi user_id pada simpanan (exists:users,id)
func (r *userRepository) Exists(id uint) bool {
	var count int64
	r.db.Model(&model.User{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func (r *userRepository) CountMembers() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("role = ?", model.RoleKaryawan).Count(&count).Error
	return count, err
}
