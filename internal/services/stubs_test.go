package services

import (
	"context"
	"errors"
	"sync"

	"evcharge/internal/models/db_models"
	"evcharge/internal/models/response_models"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// In-memory repository stubs shared by the service tests.

type stubSessionRepo struct {
	session *db_models.Session
	err     error
}

func (r *stubSessionRepo) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.session == nil || r.session.ID != sessionID {
		return nil, nil
	}
	return r.session, nil
}

func (r *stubSessionRepo) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Session, error) {
	if r.session == nil || r.session.UserID != userID {
		return nil, nil
	}
	return []db_models.Session{*r.session}, nil
}

type stubFactorRepo struct {
	factors []db_models.PriceFactor
	err     error
}

func (r *stubFactorRepo) ListActiveFactorsForStation(ctx context.Context, stationID uuid.UUID, at int64) ([]db_models.PriceFactor, error) {
	return r.factors, r.err
}

type stubSubscriptionRepo struct {
	subs []db_models.Subscription
	err  error
}

func (r *stubSubscriptionRepo) ListActiveSubscriptionsForUser(ctx context.Context, userID uuid.UUID, at int64) ([]db_models.Subscription, error) {
	return r.subs, r.err
}

type stubFeeRepo struct {
	fees []db_models.Fee
	err  error
}

func (r *stubFeeRepo) ListFeesBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Fee, error) {
	return r.fees, r.err
}

type stubUserRepo struct {
	user *db_models.User
}

func (r *stubUserRepo) CreateUser(ctx context.Context, user *db_models.User) error { return nil }

func (r *stubUserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	if r.user == nil || r.user.ID != userID {
		return nil, nil
	}
	return r.user, nil
}

func (r *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, nil
	}
	return r.user, nil
}

func (r *stubUserRepo) UpdateUser(ctx context.Context, user *db_models.User) error { return nil }

// memTxnRepo mirrors the conditional-update semantics of the SQL-backed
// transaction repository, so the state machine tests exercise the real
// once-only transition logic.
type memTxnRepo struct {
	mu    sync.Mutex
	txns  map[uuid.UUID]*db_models.Transaction
	byRef map[string]uuid.UUID
}

func newMemTxnRepo() *memTxnRepo {
	return &memTxnRepo{
		txns:  make(map[uuid.UUID]*db_models.Transaction),
		byRef: make(map[string]uuid.UUID),
	}
}

func (r *memTxnRepo) CreateTransaction(ctx context.Context, txn *db_models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byRef[txn.TxnRef]; taken {
		return utils.ErrDuplicateTxnRef
	}
	stored := *txn
	r.txns[txn.ID] = &stored
	r.byRef[txn.TxnRef] = txn.ID
	return nil
}

func (r *memTxnRepo) GetTransactionByID(ctx context.Context, txnID uuid.UUID) (*db_models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn, ok := r.txns[txnID]
	if !ok {
		return nil, nil
	}
	copied := *txn
	return &copied, nil
}

func (r *memTxnRepo) GetTransactionByTxnRef(ctx context.Context, txnRef string) (*db_models.Transaction, error) {
	r.mu.Lock()
	id, ok := r.byRef[txnRef]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return r.GetTransactionByID(ctx, id)
}

func (r *memTxnRepo) UpdateStatusIfPending(ctx context.Context, txnID uuid.UUID, status db_models.TransactionStatus, gatewayResponse datatypes.JSON) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn, ok := r.txns[txnID]
	if !ok || txn.Status != db_models.TxnStatusPending {
		return false, nil
	}
	txn.Status = status
	if gatewayResponse != nil {
		txn.GatewayResponse = gatewayResponse
	}
	return true, nil
}

func (r *memTxnRepo) ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []db_models.Transaction
	for _, txn := range r.txns {
		if txn.UserID == userID {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (r *memTxnRepo) ListTransactionsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []db_models.Transaction
	for _, txn := range r.txns {
		if txn.SessionID == sessionID {
			out = append(out, *txn)
		}
	}
	return out, nil
}

type stubGateway struct {
	valid bool
	url   string
}

func (g *stubGateway) CreatePaymentURL(amount int64, orderInfo, txnRef, returnURL string) (string, error) {
	if g.url == "" {
		return "", errors.New("gateway unavailable")
	}
	return g.url, nil
}

func (g *stubGateway) VerifyCallback(params map[string]string) bool { return g.valid }

func (g *stubGateway) ResponseMessage(code string) string {
	if code == "00" {
		return "SUCCESS"
	}
	return "Transaction failed"
}

type stubMail struct {
	mu       sync.Mutex
	invoices []response_models.Invoice
	codes    []string
	sendErr  error
}

func (m *stubMail) SendInvoiceEmail(to string, invoice response_models.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.invoices = append(m.invoices, invoice)
	return nil
}

func (m *stubMail) SendVerificationCode(to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.codes = append(m.codes, code)
	return nil
}
