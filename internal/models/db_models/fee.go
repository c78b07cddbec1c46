package db_models

import "github.com/google/uuid"

type FeeType string

const (
	FeeCharging FeeType = "CHARGING"
	FeePenalty  FeeType = "PENALTY"
)

// Fee is an append-only per-session charge added after discount.
type Fee struct {
	BaseModel
	SessionID uuid.UUID `gorm:"index;not null"`
	Amount    float64   `gorm:"not null"`
	Type      FeeType   `gorm:"type:fee_type;not null"`

	Session Session `gorm:"foreignKey:SessionID"`
}
