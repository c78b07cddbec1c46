package services

import (
	"context"
	"errors"
	"testing"

	"evcharge/internal/models/db_models"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(power float64) *db_models.Session {
	stationID := uuid.New()
	return &db_models.Session{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		ChargingPointID: uuid.New(),
		UserID:          uuid.New(),
		StartTime:       1_740_000_000,
		EndTime:         1_740_003_600,
		PowerConsumed:   power,
		ChargingPoint: db_models.ChargingPoint{
			BaseModel:   db_models.BaseModel{ID: uuid.New()},
			StationID:   stationID,
			PricePerKwh: 3500,
		},
	}
}

func newPricingService(session *db_models.Session, factors []db_models.PriceFactor, subs []db_models.Subscription, fees []db_models.Fee) PricingServiceInterface {
	return NewPricingService(
		&stubSessionRepo{session: session},
		&stubFactorRepo{factors: factors},
		&stubSubscriptionRepo{subs: subs},
		&stubFeeRepo{fees: fees},
	)
}

func TestCalculateAmountDefaults(t *testing.T) {
	session := testSession(10)

	svc := newPricingService(session, nil, nil, nil)
	amount, err := svc.CalculateAmount(context.Background(), session.ID)

	require.NoError(t, err)
	// 10 kWh * 3500 with no factor, no discount, no fees.
	assert.InDelta(t, 35000.0, amount, 1e-9)
}

func TestCalculateAmountFullFormula(t *testing.T) {
	session := testSession(10)
	session.ChargingPoint.PricePerKwh = 3000

	factors := []db_models.PriceFactor{{Factor: 1.2}}
	subs := []db_models.Subscription{{Tier: db_models.TierPlus}}
	fees := []db_models.Fee{{Amount: 5000, Type: db_models.FeePenalty}}

	svc := newPricingService(session, factors, subs, fees)
	breakdown, err := svc.GetBreakdown(context.Background(), session.ID)

	require.NoError(t, err)
	// 10 * 3000 * 1.2 * (1 - 0.10) = 32400, plus 5000 fees.
	assert.InDelta(t, 32400.0, breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 5000.0, breakdown.FeeTotal, 1e-9)
	assert.InDelta(t, 37400.0, breakdown.Amount, 1e-9)
	assert.Equal(t, 1.2, breakdown.Factor)
	assert.Equal(t, 0.10, breakdown.Discount)
}

func TestCalculateAmountZeroPowerStillAppliesFees(t *testing.T) {
	session := testSession(0)
	fees := []db_models.Fee{{Amount: 2000, Type: db_models.FeePenalty}}

	svc := newPricingService(session, nil, nil, fees)
	amount, err := svc.CalculateAmount(context.Background(), session.ID)

	require.NoError(t, err)
	assert.InDelta(t, 2000.0, amount, 1e-9)
}

func TestCalculateAmountRejectsNegativePower(t *testing.T) {
	session := testSession(-0.5)

	svc := newPricingService(session, nil, nil, nil)
	_, err := svc.CalculateAmount(context.Background(), session.ID)

	assert.ErrorIs(t, err, utils.ErrInvalidPowerConsumed)
}

func TestCalculateAmountSessionNotFound(t *testing.T) {
	svc := newPricingService(nil, nil, nil, nil)
	_, err := svc.CalculateAmount(context.Background(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestCalculateAmountOverlappingFactorsIsIntegrityError(t *testing.T) {
	session := testSession(10)
	factors := []db_models.PriceFactor{{Factor: 1.2}, {Factor: 1.5}}

	svc := newPricingService(session, factors, nil, nil)
	_, err := svc.CalculateAmount(context.Background(), session.ID)

	assert.ErrorIs(t, err, utils.ErrDataIntegrity)
}

func TestCalculateAmountOverlappingSubscriptionsIsIntegrityError(t *testing.T) {
	session := testSession(10)
	subs := []db_models.Subscription{{Tier: db_models.TierBasic}, {Tier: db_models.TierPremium}}

	svc := newPricingService(session, nil, subs, nil)
	_, err := svc.CalculateAmount(context.Background(), session.ID)

	assert.ErrorIs(t, err, utils.ErrDataIntegrity)
}

func TestCalculateAmountRepoFailure(t *testing.T) {
	session := testSession(10)
	svc := NewPricingService(
		&stubSessionRepo{session: session},
		&stubFactorRepo{err: errors.New("connection reset")},
		&stubSubscriptionRepo{},
		&stubFeeRepo{},
	)

	_, err := svc.CalculateAmount(context.Background(), session.ID)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestTierDiscounts(t *testing.T) {
	assert.Equal(t, 0.05, db_models.TierBasic.Discount())
	assert.Equal(t, 0.10, db_models.TierPlus.Discount())
	assert.Equal(t, 0.15, db_models.TierPremium.Discount())
	assert.Equal(t, 0.0, db_models.SubscriptionTier("GOLD").Discount())
}
