package db_models

import "github.com/google/uuid"

// PriceFactor is a time-windowed multiplier on a station's base per-kWh
// price (peak pricing). At most one factor may be active per station at
// any instant; overlapping windows are a data-integrity violation.
type PriceFactor struct {
	BaseModel
	StationID uuid.UUID `gorm:"index;not null"`
	StartTime int64     `gorm:"not null"` // window is [StartTime, EndTime)
	EndTime   int64     `gorm:"not null"`
	Factor    float64   `gorm:"not null"`

	Station ChargingStation `gorm:"foreignKey:StationID"`
}
