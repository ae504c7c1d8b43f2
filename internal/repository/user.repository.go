package repository

import (
	"jobportal/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	UpdateRole(id uuid.UUID, role models.Role) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (ur *userRepository) Create(user *models.User) error {
	return translate(ur.db.Create(user).Error)
}

func (ur *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := ur.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (ur *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := ur.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (ur *userRepository) UpdateRole(id uuid.UUID, role models.Role) (*models.User, error) {
	result := ur.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return ur.FindByID(id)
}
