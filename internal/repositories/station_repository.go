package repositories

import (
	"context"
	"errors"
	"evcharge/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StationRepositoryInterface interface {
	CreateStation(ctx context.Context, station *db_models.ChargingStation) error
	GetStationByID(ctx context.Context, stationID uuid.UUID) (*db_models.ChargingStation, error)
	ListStations(ctx context.Context, page int, pageSize int) ([]db_models.ChargingStation, error)
	UpdateStation(ctx context.Context, station *db_models.ChargingStation) error
	DeleteStation(ctx context.Context, stationID uuid.UUID) error

	CreateChargingPoint(ctx context.Context, point *db_models.ChargingPoint) error
	GetChargingPointByID(ctx context.Context, pointID uuid.UUID) (*db_models.ChargingPoint, error)
	UpdateChargingPoint(ctx context.Context, point *db_models.ChargingPoint) error
}

func NewStationRepository(db *gorm.DB) StationRepositoryInterface {
	return &StationRepository{db: db}
}

type StationRepository struct {
	db *gorm.DB
}

func (r StationRepository) CreateStation(ctx context.Context, station *db_models.ChargingStation) error {
	return r.db.WithContext(ctx).Create(station).Error
}

func (r StationRepository) GetStationByID(ctx context.Context, stationID uuid.UUID) (*db_models.ChargingStation, error) {

	var station db_models.ChargingStation
	err := r.db.WithContext(ctx).
		Preload("ChargingPoints").
		Where("id = ?", stationID).
		First(&station).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &station, nil
}

func (r StationRepository) ListStations(ctx context.Context, page int, pageSize int) ([]db_models.ChargingStation, error) {

	var stations []db_models.ChargingStation
	err := r.db.WithContext(ctx).
		Preload("ChargingPoints").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&stations).Error
	if err != nil {
		return nil, err
	}
	return stations, nil
}

func (r StationRepository) UpdateStation(ctx context.Context, station *db_models.ChargingStation) error {
	return r.db.WithContext(ctx).Save(station).Error
}

func (r StationRepository) DeleteStation(ctx context.Context, stationID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.ChargingStation{}, "id = ?", stationID).Error
}

func (r StationRepository) CreateChargingPoint(ctx context.Context, point *db_models.ChargingPoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r StationRepository) GetChargingPointByID(ctx context.Context, pointID uuid.UUID) (*db_models.ChargingPoint, error) {

	var point db_models.ChargingPoint
	err := r.db.WithContext(ctx).
		Preload("Station").
		Where("id = ?", pointID).
		First(&point).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

func (r StationRepository) UpdateChargingPoint(ctx context.Context, point *db_models.ChargingPoint) error {
	return r.db.WithContext(ctx).Save(point).Error
}
