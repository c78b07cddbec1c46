package repositories

import (
	"context"
	"evcharge/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceFactorRepositoryInterface interface {
	// ListActiveFactorsForStation returns every factor whose window contains
	// the given instant. Callers enforce the single-active invariant.
	ListActiveFactorsForStation(ctx context.Context, stationID uuid.UUID, at int64) ([]db_models.PriceFactor, error)
}

func NewPriceFactorRepository(db *gorm.DB) PriceFactorRepositoryInterface {
	return &PriceFactorRepository{db: db}
}

type PriceFactorRepository struct {
	db *gorm.DB
}

func (r PriceFactorRepository) ListActiveFactorsForStation(ctx context.Context, stationID uuid.UUID, at int64) ([]db_models.PriceFactor, error) {

	var factors []db_models.PriceFactor
	err := r.db.WithContext(ctx).
		Where("station_id = ? AND start_time <= ? AND end_time > ?", stationID, at, at).
		Find(&factors).Error
	if err != nil {
		return nil, err
	}
	return factors, nil
}
