package repositories

import (
	"context"
	"evcharge/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeRepositoryInterface interface {
	ListFeesBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Fee, error)
}

func NewFeeRepository(db *gorm.DB) FeeRepositoryInterface {
	return &FeeRepository{db: db}
}

type FeeRepository struct {
	db *gorm.DB
}

func (r FeeRepository) ListFeesBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Fee, error) {

	var fees []db_models.Fee
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}
