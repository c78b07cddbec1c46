package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "PENDING"
	TxnStatusSuccess TransactionStatus = "SUCCESS"
	TxnStatusFailed  TransactionStatus = "FAILED"
)

type PaymentMethod string

const (
	MethodVNPay PaymentMethod = "VNPAY"
	MethodCash  PaymentMethod = "CASH"
	MethodQR    PaymentMethod = "QR"
)

// Transaction is one payment attempt against a session. Amount and method
// are fixed at creation; status moves exactly once from PENDING to a
// terminal state via a conditional update (see TransactionRepository).
type Transaction struct {
	BaseModel
	SessionID uuid.UUID         `gorm:"index;not null"`
	UserID    uuid.UUID         `gorm:"index;not null"`
	Amount    float64           `gorm:"not null"`
	Method    PaymentMethod     `gorm:"type:payment_method;not null"`
	Status    TransactionStatus `gorm:"type:transaction_status;index;default:'PENDING'"`

	// TxnRef correlates the outbound gateway request with its callback/IPN.
	// Persisted at creation so inbound notifications can be mapped back.
	TxnRef string `gorm:"uniqueIndex;not null"`

	// Raw gateway callback parameters, kept for traceability.
	GatewayResponse datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Session Session `gorm:"foreignKey:SessionID"`
	User    User    `gorm:"foreignKey:UserID"`
}
