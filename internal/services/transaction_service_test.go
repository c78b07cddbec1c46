package services

import (
	"context"
	"testing"

	"evcharge/internal/models/db_models"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxnFixture(t *testing.T) (TransactionServiceInterface, *memTxnRepo, *db_models.Session, *db_models.User) {
	t.Helper()

	session := testSession(10)
	user := &db_models.User{
		BaseModel: db_models.BaseModel{ID: session.UserID},
		FullName:  "Nguyen Van A",
		Email:     "driver@example.com",
	}

	repo := newMemTxnRepo()
	svc := NewTransactionService(repo, &stubSessionRepo{session: session}, &stubUserRepo{user: user})
	return svc, repo, session, user
}

func TestCreateTransactionPersistsRefAndPending(t *testing.T) {
	svc, repo, session, user := newTxnFixture(t)

	txn, err := svc.CreateTransaction(context.Background(), session.ID, user.ID, 37400, db_models.MethodVNPay)
	require.NoError(t, err)

	assert.Equal(t, db_models.TxnStatusPending, txn.Status)
	assert.Equal(t, txn.ID.String(), txn.TxnRef)

	stored, err := repo.GetTransactionByTxnRef(context.Background(), txn.TxnRef)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, txn.ID, stored.ID)
}

func TestCreateTransactionValidation(t *testing.T) {
	svc, _, session, user := newTxnFixture(t)

	_, err := svc.CreateTransaction(context.Background(), session.ID, user.ID, -1, db_models.MethodCash)
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)

	_, err = svc.CreateTransaction(context.Background(), uuid.New(), user.ID, 100, db_models.MethodCash)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	_, err = svc.CreateTransaction(context.Background(), session.ID, uuid.New(), 100, db_models.MethodCash)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestApplyGatewayResultSuccess(t *testing.T) {
	svc, _, session, user := newTxnFixture(t)

	txn, err := svc.CreateTransaction(context.Background(), session.ID, user.ID, 37400, db_models.MethodVNPay)
	require.NoError(t, err)

	result, err := svc.ApplyGatewayResult(context.Background(), txn.TxnRef, "00", map[string]string{
		"vnp_TxnRef":       txn.TxnRef,
		"vnp_ResponseCode": "00",
	})
	require.NoError(t, err)

	assert.True(t, result.Applied)
	assert.Equal(t, db_models.TxnStatusSuccess, result.Transaction.Status)
	assert.Equal(t, "SUCCESS", result.Message)
	assert.NotEmpty(t, result.Transaction.GatewayResponse)
}

func TestApplyGatewayResultFailureCode(t *testing.T) {
	svc, _, session, user := newTxnFixture(t)

	txn, err := svc.CreateTransaction(context.Background(), session.ID, user.ID, 37400, db_models.MethodVNPay)
	require.NoError(t, err)

	result, err := svc.ApplyGatewayResult(context.Background(), txn.TxnRef, "24", nil)
	require.NoError(t, err)

	assert.True(t, result.Applied)
	assert.Equal(t, db_models.TxnStatusFailed, result.Transaction.Status)
}

func TestApplyGatewayResultDuplicateIsNoOp(t *testing.T) {
	svc, _, session, user := newTxnFixture(t)

	txn, err := svc.CreateTransaction(context.Background(), session.ID, user.ID, 37400, db_models.MethodVNPay)
	require.NoError(t, err)

	first, err := svc.ApplyGatewayResult(context.Background(), txn.TxnRef, "00", nil)
	require.NoError(t, err)
	require.True(t, first.Applied)

	// Replayed notification: accepted, nothing changes.
	second, err := svc.ApplyGatewayResult(context.Background(), txn.TxnRef, "00", nil)
	require.NoError(t, err)
	assert.False(t, second.Applied)
	assert.Equal(t, db_models.TxnStatusSuccess, second.Transaction.Status)

	// Divergent late result: first write wins.
	late, err := svc.ApplyGatewayResult(context.Background(), txn.TxnRef, "24", nil)
	require.NoError(t, err)
	assert.False(t, late.Applied)
	assert.Equal(t, db_models.TxnStatusSuccess, late.Transaction.Status)
}

func TestApplyGatewayResultUnknownRef(t *testing.T) {
	svc, _, _, _ := newTxnFixture(t)

	_, err := svc.ApplyGatewayResult(context.Background(), uuid.New().String(), "00", nil)
	assert.ErrorIs(t, err, utils.ErrTransactionNotFound)
}

func TestSettleImmediately(t *testing.T) {
	svc, _, session, user := newTxnFixture(t)

	txn, err := svc.CreateTransaction(context.Background(), session.ID, user.ID, 35000, db_models.MethodCash)
	require.NoError(t, err)

	result, err := svc.SettleImmediately(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, db_models.TxnStatusSuccess, result.Transaction.Status)

	// A second settle attempt reports the existing terminal state.
	again, err := svc.SettleImmediately(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.False(t, again.Applied)
	assert.Equal(t, db_models.TxnStatusSuccess, again.Transaction.Status)
}
