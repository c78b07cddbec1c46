package db_models

import "github.com/google/uuid"

// Session is one completed charging event with metered power consumption.
// Sessions are created by the charging control plane and are read-only to
// the payment core once metering ends.
type Session struct {
	BaseModel
	ChargingPointID uuid.UUID `gorm:"index;not null"`
	UserID          uuid.UUID `gorm:"index;not null"`
	StartTime       int64     `gorm:"not null"`
	EndTime         int64     `gorm:"not null"`
	PowerConsumed   float64   `gorm:"not null"` // kWh

	ChargingPoint ChargingPoint `gorm:"foreignKey:ChargingPointID"`
	User          User          `gorm:"foreignKey:UserID"`
}
