package utils

import "errors"

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrStationNotFound       = errors.New("charging station not found")
	ErrChargingPointNotFound = errors.New("charging point not found")
	ErrVehicleNotFound       = errors.New("vehicle not found")

	ErrInvalidPowerConsumed    = errors.New("power consumed must not be negative")
	ErrInvalidAmount           = errors.New("amount must not be negative")
	ErrInvalidPaymentMethod    = errors.New("unsupported payment method")
	ErrInvalidSignature        = errors.New("invalid gateway signature")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidVerificationCode = errors.New("invalid or expired verification code")

	ErrEmailTaken      = errors.New("email already registered")
	ErrDuplicateTxnRef = errors.New("duplicate transaction reference")
	ErrDataIntegrity   = errors.New("data integrity violation")
	ErrDatabaseError   = errors.New("database error")
)
