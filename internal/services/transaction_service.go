package services

import (
	"context"
	"encoding/json"
	"evcharge/internal/models/db_models"
	"evcharge/internal/repositories"
	"evcharge/pkg/utils"
	"evcharge/pkg/vnpay"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"log"
)

// ApplyResult reports the outcome of a settlement attempt. Applied is false
// when the transaction was already terminal and the call was a no-op.
type ApplyResult struct {
	Transaction *db_models.Transaction
	Applied     bool
	Message     string
}

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, sessionID, userID uuid.UUID, amount float64, method db_models.PaymentMethod) (*db_models.Transaction, error)
	SettleImmediately(ctx context.Context, txnID uuid.UUID) (*ApplyResult, error)
	ApplyGatewayResult(ctx context.Context, txnRef string, responseCode string, gatewayParams map[string]string) (*ApplyResult, error)
	GetTransactionByID(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error)
	ListTransactionsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Transaction, error)
}

func NewTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) TransactionServiceInterface {
	return &TransactionService{
		txnRepo:     txnRepo,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

type TransactionService struct {
	txnRepo     repositories.TransactionRepositoryInterface
	sessionRepo repositories.SessionRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
}

func (s *TransactionService) CreateTransaction(ctx context.Context, sessionID, userID uuid.UUID, amount float64, method db_models.PaymentMethod) (*db_models.Transaction, error) {

	if amount < 0 {
		return nil, utils.ErrInvalidAmount
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	txn := &db_models.Transaction{
		SessionID: sessionID,
		UserID:    userID,
		Amount:    amount,
		Method:    method,
		Status:    db_models.TxnStatusPending,
	}
	// The gateway reference is derived from the transaction id and stored
	// up front, so callbacks and IPNs can always be mapped back.
	txn.ID = uuid.New()
	txn.TxnRef = txn.ID.String()

	if err := s.txnRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) SettleImmediately(ctx context.Context, txnID uuid.UUID) (*ApplyResult, error) {
	return s.transition(ctx, txnID, db_models.TxnStatusSuccess, nil, vnpay.ResponseMessage("00"))
}

func (s *TransactionService) ApplyGatewayResult(ctx context.Context, txnRef string, responseCode string, gatewayParams map[string]string) (*ApplyResult, error) {

	txn, err := s.txnRepo.GetTransactionByTxnRef(ctx, txnRef)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	target := db_models.TxnStatusFailed
	if responseCode == "00" {
		target = db_models.TxnStatusSuccess
	}

	var payload datatypes.JSON
	if len(gatewayParams) > 0 {
		if raw, err := json.Marshal(gatewayParams); err == nil {
			payload = raw
		}
	}

	return s.transition(ctx, txn.ID, target, payload, vnpay.ResponseMessage(responseCode))
}

// transition performs the PENDING -> terminal move as a conditional update.
// Duplicate notifications land here after the first write and are accepted
// as no-ops that report the existing state (first-write-wins); a late result
// that disagrees with the stored one is logged as an anomaly.
func (s *TransactionService) transition(ctx context.Context, txnID uuid.UUID, target db_models.TransactionStatus, payload datatypes.JSON, message string) (*ApplyResult, error) {

	applied, err := s.txnRepo.UpdateStatusIfPending(ctx, txnID, target, payload)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	txn, err := s.txnRepo.GetTransactionByID(ctx, txnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	if !applied && txn.Status != target {
		log.Printf("transaction %s: ignoring late result %s, already %s", txnID, target, txn.Status)
	}

	return &ApplyResult{
		Transaction: txn,
		Applied:     applied,
		Message:     message,
	}, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error) {

	txn, err := s.txnRepo.GetTransactionByID(ctx, txnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	return txn, nil
}

func (s *TransactionService) ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error) {

	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

func (s *TransactionService) ListTransactionsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Transaction, error) {

	txns, err := s.txnRepo.ListTransactionsBySession(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}
