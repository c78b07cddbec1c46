package repositories

import (
	"context"
	"errors"
	"evcharge/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepositoryInterface interface {
	CreateVehicle(ctx context.Context, vehicle *db_models.Vehicle) error
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*db_models.Vehicle, error)
	ListVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *db_models.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error
}

func NewVehicleRepository(db *gorm.DB) VehicleRepositoryInterface {
	return &VehicleRepository{db: db}
}

type VehicleRepository struct {
	db *gorm.DB
}

func (r VehicleRepository) CreateVehicle(ctx context.Context, vehicle *db_models.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r VehicleRepository) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*db_models.Vehicle, error) {

	var vehicle db_models.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", vehicleID).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r VehicleRepository) ListVehiclesByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Vehicle, error) {

	var vehicles []db_models.Vehicle
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r VehicleRepository) UpdateVehicle(ctx context.Context, vehicle *db_models.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r VehicleRepository) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Vehicle{}, "id = ?", vehicleID).Error
}
