package db_models

import "github.com/google/uuid"

type SubscriptionTier string

const (
	TierBasic   SubscriptionTier = "BASIC"
	TierPlus    SubscriptionTier = "PLUS"
	TierPremium SubscriptionTier = "PREMIUM"
)

// Discount returns the fixed discount fraction granted by a tier.
// An unknown (or absent) tier grants no discount.
func (t SubscriptionTier) Discount() float64 {
	switch t {
	case TierBasic:
		return 0.05
	case TierPlus:
		return 0.10
	case TierPremium:
		return 0.15
	default:
		return 0.0
	}
}

// Subscription grants a user a tier discount inside a validity window.
// Same single-active invariant as PriceFactor, scoped per user.
type Subscription struct {
	BaseModel
	UserID    uuid.UUID        `gorm:"index;not null"`
	Tier      SubscriptionTier `gorm:"type:subscription_tier;not null"`
	StartTime int64            `gorm:"not null"` // window is [StartTime, EndTime)
	EndTime   int64            `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
}
