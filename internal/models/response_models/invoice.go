package response_models

import "github.com/google/uuid"

// Invoice is a projection built on demand after a transaction reaches
// SUCCESS; it is delivered by mail and never persisted.
type Invoice struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	SessionID     uuid.UUID `json:"session_id"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`

	StationName    string `json:"station_name"`
	StationAddress string `json:"station_address"`

	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	PowerConsumed float64 `json:"power_consumed"`

	BasePrice            float64   `json:"base_price"`
	PriceFactor          float64   `json:"price_factor"`
	SubscriptionDiscount float64   `json:"subscription_discount"`
	Fees                 []FeeLine `json:"fees"`

	Subtotal    float64 `json:"subtotal"`
	TotalAmount float64 `json:"total_amount"`

	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
}

type FeeLine struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}
