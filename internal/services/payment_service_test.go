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

type paymentFixture struct {
	svc     PaymentServiceInterface
	txnRepo *memTxnRepo
	gateway *stubGateway
	mail    *stubMail
	session *db_models.Session
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	session := testSession(10)
	session.User = db_models.User{
		BaseModel: db_models.BaseModel{ID: session.UserID},
		FullName:  "Nguyen Van A",
		Email:     "driver@example.com",
	}

	sessionRepo := &stubSessionRepo{session: session}
	userRepo := &stubUserRepo{user: &session.User}
	txnRepo := newMemTxnRepo()

	pricing := NewPricingService(sessionRepo, &stubFactorRepo{}, &stubSubscriptionRepo{}, &stubFeeRepo{})
	txns := NewTransactionService(txnRepo, sessionRepo, userRepo)

	gateway := &stubGateway{valid: true, url: "https://sandbox.vnpayment.vn/redirect"}
	mail := &stubMail{}

	return &paymentFixture{
		svc:     NewPaymentService(pricing, txns, gateway, mail),
		txnRepo: txnRepo,
		gateway: gateway,
		mail:    mail,
		session: session,
	}
}

func (f *paymentFixture) pendingVNPayTxn(t *testing.T) *db_models.Transaction {
	t.Helper()

	resp, err := f.svc.ProcessPayment(context.Background(), f.session.ID, "VNPAY", "https://app/return")
	require.NoError(t, err)

	txn, err := f.txnRepo.GetTransactionByID(context.Background(), resp.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, txn)
	return txn
}

func TestProcessPaymentVNPayStaysPending(t *testing.T) {
	f := newPaymentFixture(t)

	resp, err := f.svc.ProcessPayment(context.Background(), f.session.ID, "VNPAY", "https://app/return")
	require.NoError(t, err)

	assert.Equal(t, "https://sandbox.vnpayment.vn/redirect", resp.PaymentURL)
	assert.Equal(t, string(db_models.TxnStatusPending), resp.Status)
	assert.InDelta(t, 35000.0, resp.Amount, 1e-9)
	assert.Empty(t, f.mail.invoices, "no invoice before the gateway settles")
}

func TestProcessPaymentCashSettlesAndMailsInvoice(t *testing.T) {
	f := newPaymentFixture(t)

	resp, err := f.svc.ProcessPayment(context.Background(), f.session.ID, "CASH", "")
	require.NoError(t, err)

	assert.Equal(t, string(db_models.TxnStatusSuccess), resp.Status)
	assert.Empty(t, resp.PaymentURL)

	require.Len(t, f.mail.invoices, 1)
	invoice := f.mail.invoices[0]
	assert.Equal(t, "driver@example.com", invoice.UserEmail)
	assert.Equal(t, "CASH", invoice.PaymentMethod)
	assert.InDelta(t, 35000.0, invoice.TotalAmount, 1e-9)
}

func TestProcessPaymentUnknownMethod(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.ProcessPayment(context.Background(), f.session.ID, "BANK_WIRE", "")
	assert.ErrorIs(t, err, utils.ErrInvalidPaymentMethod)
}

func TestProcessPaymentUnknownSession(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.ProcessPayment(context.Background(), uuid.New(), "VNPAY", "")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestQuoteAmount(t *testing.T) {
	f := newPaymentFixture(t)

	amount, err := f.svc.QuoteAmount(context.Background(), f.session.ID)
	require.NoError(t, err)
	assert.InDelta(t, 35000.0, amount, 1e-9)
}

func TestHandleGatewayCallbackRejectsBadSignature(t *testing.T) {
	f := newPaymentFixture(t)
	txn := f.pendingVNPayTxn(t)

	f.gateway.valid = false
	_, err := f.svc.HandleGatewayCallback(context.Background(), map[string]string{
		"vnp_TxnRef":       txn.TxnRef,
		"vnp_ResponseCode": "00",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidSignature)

	stored, err := f.txnRepo.GetTransactionByID(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.TxnStatusPending, stored.Status, "transaction untouched on invalid signature")
	assert.Empty(t, f.mail.invoices)
}

func TestHandleGatewayCallbackSettlesOnce(t *testing.T) {
	f := newPaymentFixture(t)
	txn := f.pendingVNPayTxn(t)

	params := map[string]string{
		"vnp_TxnRef":       txn.TxnRef,
		"vnp_ResponseCode": "00",
	}

	resp, err := f.svc.HandleGatewayCallback(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.TxnStatusSuccess), resp.Status)
	assert.Equal(t, "SUCCESS", resp.Message)

	// Replay settles nothing and mails nothing.
	resp, err = f.svc.HandleGatewayCallback(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.TxnStatusSuccess), resp.Status)

	assert.Len(t, f.mail.invoices, 1, "invoice delivered exactly once")
}

func TestHandleGatewayCallbackFailureCode(t *testing.T) {
	f := newPaymentFixture(t)
	txn := f.pendingVNPayTxn(t)

	resp, err := f.svc.HandleGatewayCallback(context.Background(), map[string]string{
		"vnp_TxnRef":       txn.TxnRef,
		"vnp_ResponseCode": "24",
	})
	require.NoError(t, err)

	assert.Equal(t, string(db_models.TxnStatusFailed), resp.Status)
	assert.Empty(t, f.mail.invoices)
}

func TestHandleGatewayIPNResponseCodes(t *testing.T) {
	f := newPaymentFixture(t)
	txn := f.pendingVNPayTxn(t)

	f.gateway.valid = false
	resp := f.svc.HandleGatewayIPN(context.Background(), map[string]string{"vnp_TxnRef": txn.TxnRef})
	assert.Equal(t, "97", resp.RspCode)

	f.gateway.valid = true
	resp = f.svc.HandleGatewayIPN(context.Background(), map[string]string{
		"vnp_TxnRef":       uuid.New().String(),
		"vnp_ResponseCode": "00",
	})
	assert.Equal(t, "99", resp.RspCode)

	resp = f.svc.HandleGatewayIPN(context.Background(), map[string]string{
		"vnp_TxnRef":       txn.TxnRef,
		"vnp_ResponseCode": "00",
	})
	assert.Equal(t, "00", resp.RspCode)

	// Duplicate IPN still acknowledges, without a second invoice.
	resp = f.svc.HandleGatewayIPN(context.Background(), map[string]string{
		"vnp_TxnRef":       txn.TxnRef,
		"vnp_ResponseCode": "00",
	})
	assert.Equal(t, "00", resp.RspCode)
	assert.Len(t, f.mail.invoices, 1)
}

func TestInvoiceFailureDoesNotAffectSettlement(t *testing.T) {
	f := newPaymentFixture(t)
	f.mail.sendErr = assert.AnError

	resp, err := f.svc.ProcessPayment(context.Background(), f.session.ID, "CASH", "")
	require.NoError(t, err)
	assert.Equal(t, string(db_models.TxnStatusSuccess), resp.Status)
}
