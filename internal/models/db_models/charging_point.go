package db_models

import "github.com/google/uuid"

type ChargingPointStatus string

const (
	PointStatusAvailable    ChargingPointStatus = "AVAILABLE"
	PointStatusOccupied     ChargingPointStatus = "OCCUPIED"
	PointStatusMaintenance  ChargingPointStatus = "MAINTENANCE"
	PointStatusOutOfService ChargingPointStatus = "OUT_OF_SERVICE"
)

type ChargingPoint struct {
	BaseModel
	StationID     uuid.UUID `gorm:"index;not null"`
	PricePerKwh   float64   `gorm:"not null"` // base price, VND per kWh
	MaxPowerKw    float64
	ConnectorType ConnectorType       `gorm:"type:connector_type"`
	Status        ChargingPointStatus `gorm:"type:charging_point_status;default:'AVAILABLE'"`

	Station ChargingStation `gorm:"foreignKey:StationID"`
}
