package services

import (
	"context"
	"evcharge/internal/models/db_models"
	"evcharge/internal/models/request_models"
	"evcharge/internal/repositories"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
)

type VehicleServiceInterface interface {
	CreateVehicle(ctx context.Context, userID uuid.UUID, req request_models.CreateVehicleRequest) (*db_models.Vehicle, error)
	GetVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*db_models.Vehicle, error)
	ListVehicles(ctx context.Context, userID uuid.UUID) ([]db_models.Vehicle, error)
	UpdateVehicle(ctx context.Context, userID, vehicleID uuid.UUID, req request_models.UpdateVehicleRequest) (*db_models.Vehicle, error)
	DeleteVehicle(ctx context.Context, userID, vehicleID uuid.UUID) error
}

func NewVehicleService(vehicleRepo repositories.VehicleRepositoryInterface) VehicleServiceInterface {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

type VehicleService struct {
	vehicleRepo repositories.VehicleRepositoryInterface
}

func (s *VehicleService) CreateVehicle(ctx context.Context, userID uuid.UUID, req request_models.CreateVehicleRequest) (*db_models.Vehicle, error) {

	vehicle := &db_models.Vehicle{
		UserID:        userID,
		PlateNumber:   req.PlateNumber,
		Brand:         req.Brand,
		Model:         req.Model,
		CapacityKwh:   req.CapacityKwh,
		ProductYear:   req.ProductYear,
		ConnectorType: db_models.ConnectorType(req.ConnectorType),
	}
	if err := s.vehicleRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vehicle, nil
}

func (s *VehicleService) GetVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*db_models.Vehicle, error) {

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil || vehicle.UserID != userID {
		return nil, utils.ErrVehicleNotFound
	}
	return vehicle, nil
}

func (s *VehicleService) ListVehicles(ctx context.Context, userID uuid.UUID) ([]db_models.Vehicle, error) {

	vehicles, err := s.vehicleRepo.ListVehiclesByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vehicles, nil
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, userID, vehicleID uuid.UUID, req request_models.UpdateVehicleRequest) (*db_models.Vehicle, error) {

	vehicle, err := s.GetVehicle(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Brand != "" {
		vehicle.Brand = req.Brand
	}
	if req.Model != "" {
		vehicle.Model = req.Model
	}
	if req.CapacityKwh != 0 {
		vehicle.CapacityKwh = req.CapacityKwh
	}
	if req.ProductYear != 0 {
		vehicle.ProductYear = req.ProductYear
	}
	if req.ConnectorType != "" {
		vehicle.ConnectorType = db_models.ConnectorType(req.ConnectorType)
	}

	if err := s.vehicleRepo.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vehicle, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, userID, vehicleID uuid.UUID) error {

	if _, err := s.GetVehicle(ctx, userID, vehicleID); err != nil {
		return err
	}
	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
