package response_models

import "github.com/google/uuid"

type TransactionResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	SessionID     uuid.UUID `json:"session_id"`
	UserID        uuid.UUID `json:"user_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	TxnRef        string    `json:"txn_ref"`
	CreatedAt     int64     `json:"created_at"`
}
