package request_models

type ProcessPaymentRequest struct {
	SessionID     string `json:"session_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	ReturnURL     string `json:"return_url"`
}
