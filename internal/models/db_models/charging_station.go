package db_models

type ChargingStationStatus string

const (
	StationStatusActive      ChargingStationStatus = "ACTIVE"
	StationStatusInactive    ChargingStationStatus = "INACTIVE"
	StationStatusMaintenance ChargingStationStatus = "MAINTENANCE"
)

type ChargingStation struct {
	BaseModel
	StationName string `gorm:"not null"`
	Address     string
	Latitude    float64
	Longitude   float64
	Status      ChargingStationStatus `gorm:"type:charging_station_status;default:'ACTIVE'"`

	ChargingPoints []ChargingPoint `gorm:"foreignKey:StationID"`
}
