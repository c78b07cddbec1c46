package services

import (
	"context"
	"evcharge/internal/models/db_models"
	"evcharge/internal/models/request_models"
	"evcharge/internal/repositories"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
)

type StationServiceInterface interface {
	CreateStation(ctx context.Context, req request_models.CreateStationRequest) (*db_models.ChargingStation, error)
	GetStation(ctx context.Context, stationID uuid.UUID) (*db_models.ChargingStation, error)
	ListStations(ctx context.Context, page int, pageSize int) ([]db_models.ChargingStation, error)
	UpdateStation(ctx context.Context, stationID uuid.UUID, req request_models.UpdateStationRequest) (*db_models.ChargingStation, error)
	DeleteStation(ctx context.Context, stationID uuid.UUID) error

	AddChargingPoint(ctx context.Context, stationID uuid.UUID, req request_models.CreateChargingPointRequest) (*db_models.ChargingPoint, error)
	UpdateChargingPoint(ctx context.Context, pointID uuid.UUID, req request_models.UpdateChargingPointRequest) (*db_models.ChargingPoint, error)
}

func NewStationService(stationRepo repositories.StationRepositoryInterface) StationServiceInterface {
	return &StationService{stationRepo: stationRepo}
}

type StationService struct {
	stationRepo repositories.StationRepositoryInterface
}

func (s *StationService) CreateStation(ctx context.Context, req request_models.CreateStationRequest) (*db_models.ChargingStation, error) {

	station := &db_models.ChargingStation{
		StationName: req.StationName,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      db_models.StationStatusActive,
	}
	if err := s.stationRepo.CreateStation(ctx, station); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return station, nil
}

func (s *StationService) GetStation(ctx context.Context, stationID uuid.UUID) (*db_models.ChargingStation, error) {

	station, err := s.stationRepo.GetStationByID(ctx, stationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if station == nil {
		return nil, utils.ErrStationNotFound
	}
	return station, nil
}

func (s *StationService) ListStations(ctx context.Context, page int, pageSize int) ([]db_models.ChargingStation, error) {

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	stations, err := s.stationRepo.ListStations(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stations, nil
}

func (s *StationService) UpdateStation(ctx context.Context, stationID uuid.UUID, req request_models.UpdateStationRequest) (*db_models.ChargingStation, error) {

	station, err := s.GetStation(ctx, stationID)
	if err != nil {
		return nil, err
	}

	if req.StationName != "" {
		station.StationName = req.StationName
	}
	if req.Address != "" {
		station.Address = req.Address
	}
	if req.Latitude != 0 {
		station.Latitude = req.Latitude
	}
	if req.Longitude != 0 {
		station.Longitude = req.Longitude
	}
	if req.Status != "" {
		station.Status = db_models.ChargingStationStatus(req.Status)
	}

	if err := s.stationRepo.UpdateStation(ctx, station); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return station, nil
}

func (s *StationService) DeleteStation(ctx context.Context, stationID uuid.UUID) error {

	if _, err := s.GetStation(ctx, stationID); err != nil {
		return err
	}
	if err := s.stationRepo.DeleteStation(ctx, stationID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *StationService) AddChargingPoint(ctx context.Context, stationID uuid.UUID, req request_models.CreateChargingPointRequest) (*db_models.ChargingPoint, error) {

	if _, err := s.GetStation(ctx, stationID); err != nil {
		return nil, err
	}

	point := &db_models.ChargingPoint{
		StationID:     stationID,
		PricePerKwh:   req.PricePerKwh,
		MaxPowerKw:    req.MaxPowerKw,
		ConnectorType: db_models.ConnectorType(req.ConnectorType),
		Status:        db_models.PointStatusAvailable,
	}
	if err := s.stationRepo.CreateChargingPoint(ctx, point); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return point, nil
}

func (s *StationService) UpdateChargingPoint(ctx context.Context, pointID uuid.UUID, req request_models.UpdateChargingPointRequest) (*db_models.ChargingPoint, error) {

	point, err := s.stationRepo.GetChargingPointByID(ctx, pointID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if point == nil {
		return nil, utils.ErrChargingPointNotFound
	}

	if req.PricePerKwh != 0 {
		point.PricePerKwh = req.PricePerKwh
	}
	if req.MaxPowerKw != 0 {
		point.MaxPowerKw = req.MaxPowerKw
	}
	if req.Status != "" {
		point.Status = db_models.ChargingPointStatus(req.Status)
	}

	if err := s.stationRepo.UpdateChargingPoint(ctx, point); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return point, nil
}
