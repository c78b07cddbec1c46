package response_models

import "github.com/google/uuid"

type PaymentResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	SessionID     uuid.UUID `json:"session_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	PaymentURL    string    `json:"payment_url,omitempty"`
	Message       string    `json:"message,omitempty"`
}

// IPNResponse is the fixed key/value body VNPay expects from the IPN endpoint.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
