package repositories

import (
	"context"
	"errors"
	"evcharge/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *db_models.User) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db_models.User, error)
	UpdateUser(ctx context.Context, user *db_models.User) error
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

type UserRepository struct {
	db *gorm.DB
}

func (r UserRepository) CreateUser(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {

	var user db_models.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r UserRepository) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {

	var user db_models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r UserRepository) UpdateUser(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
