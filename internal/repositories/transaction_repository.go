package repositories

import (
	"context"
	"errors"
	"evcharge/internal/models/db_models"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TransactionRepositoryInterface interface {
	CreateTransaction(ctx context.Context, txn *db_models.Transaction) error
	GetTransactionByID(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error)
	GetTransactionByTxnRef(ctx context.Context, txnRef string) (*db_models.Transaction, error)
	// UpdateStatusIfPending transitions the transaction to the given terminal
	// status only if it is still PENDING, in a single conditional update.
	// Returns whether the transition was applied.
	UpdateStatusIfPending(ctx context.Context, txnID uuid.UUID, status db_models.TransactionStatus, gatewayResponse datatypes.JSON) (bool, error)
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error)
	ListTransactionsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Transaction, error)
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

func (r TransactionRepository) CreateTransaction(ctx context.Context, txn *db_models.Transaction) error {

	err := r.db.WithContext(ctx).Create(txn).Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return utils.ErrDuplicateTxnRef
		}
		return err
	}
	return nil
}

func (r TransactionRepository) GetTransactionByID(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error) {

	var txn db_models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Session").
		Preload("User").
		Where("id = ?", txnID).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r TransactionRepository) GetTransactionByTxnRef(ctx context.Context, txnRef string) (*db_models.Transaction, error) {

	var txn db_models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Session").
		Preload("User").
		Where("txn_ref = ?", txnRef).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r TransactionRepository) UpdateStatusIfPending(ctx context.Context, txnID uuid.UUID, status db_models.TransactionStatus, gatewayResponse datatypes.JSON) (bool, error) {

	updates := map[string]interface{}{"status": status}
	if gatewayResponse != nil {
		updates["gateway_response"] = gatewayResponse
	}

	res := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ? AND status = ?", txnID, db_models.TxnStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r TransactionRepository) ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error) {

	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r TransactionRepository) ListTransactionsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Transaction, error) {

	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
