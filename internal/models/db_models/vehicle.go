package db_models

import "github.com/google/uuid"

type ConnectorType string

const (
	ConnectorCCS     ConnectorType = "CCS"
	ConnectorCHAdeMO ConnectorType = "CHADEMO"
	ConnectorType2   ConnectorType = "TYPE2"
)

type Vehicle struct {
	BaseModel
	UserID        uuid.UUID `gorm:"index;not null"`
	PlateNumber   string    `gorm:"uniqueIndex;not null"`
	Brand         string
	Model         string
	CapacityKwh   float64
	ProductYear   int32
	ConnectorType ConnectorType `gorm:"type:connector_type"`

	User User `gorm:"foreignKey:UserID"`
}
