package services

import (
	"context"
	"evcharge/internal/models/db_models"
	"evcharge/internal/repositories"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
)

// PriceBreakdown carries every input that went into an amount, pinned at the
// session's start time so repeated lookups stay reproducible.
type PriceBreakdown struct {
	Session   *db_models.Session
	BasePrice float64
	Factor    float64
	Discount  float64
	Fees      []db_models.Fee
	FeeTotal  float64
	Subtotal  float64 // power * base * factor * (1 - discount)
	Amount    float64 // Subtotal + FeeTotal
}

type PricingServiceInterface interface {
	CalculateAmount(ctx context.Context, sessionID uuid.UUID) (float64, error)
	GetBreakdown(ctx context.Context, sessionID uuid.UUID) (*PriceBreakdown, error)
}

func NewPricingService(
	sessionRepo repositories.SessionRepositoryInterface,
	priceFactorRepo repositories.PriceFactorRepositoryInterface,
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	feeRepo repositories.FeeRepositoryInterface,
) PricingServiceInterface {
	return &PricingService{
		sessionRepo:      sessionRepo,
		priceFactorRepo:  priceFactorRepo,
		subscriptionRepo: subscriptionRepo,
		feeRepo:          feeRepo,
	}
}

type PricingService struct {
	sessionRepo      repositories.SessionRepositoryInterface
	priceFactorRepo  repositories.PriceFactorRepositoryInterface
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	feeRepo          repositories.FeeRepositoryInterface
}

func (s *PricingService) CalculateAmount(ctx context.Context, sessionID uuid.UUID) (float64, error) {
	breakdown, err := s.GetBreakdown(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return breakdown.Amount, nil
}

func (s *PricingService) GetBreakdown(ctx context.Context, sessionID uuid.UUID) (*PriceBreakdown, error) {

	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if session.PowerConsumed < 0 {
		return nil, utils.ErrInvalidPowerConsumed
	}

	basePrice := session.ChargingPoint.PricePerKwh

	// Missing factor/subscription is the normal "no surge, no discount"
	// case; more than one active at the same instant is corrupt data.
	factor := 1.0
	factors, err := s.priceFactorRepo.ListActiveFactorsForStation(ctx, session.ChargingPoint.StationID, session.StartTime)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(factors) > 1 {
		return nil, utils.ErrDataIntegrity
	}
	if len(factors) == 1 {
		factor = factors[0].Factor
	}

	discount := 0.0
	subs, err := s.subscriptionRepo.ListActiveSubscriptionsForUser(ctx, session.UserID, session.StartTime)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(subs) > 1 {
		return nil, utils.ErrDataIntegrity
	}
	if len(subs) == 1 {
		discount = subs[0].Tier.Discount()
	}

	fees, err := s.feeRepo.ListFeesBySession(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	feeTotal := 0.0
	for _, fee := range fees {
		feeTotal += fee.Amount
	}

	subtotal := session.PowerConsumed * basePrice * factor * (1 - discount)

	return &PriceBreakdown{
		Session:   session,
		BasePrice: basePrice,
		Factor:    factor,
		Discount:  discount,
		Fees:      fees,
		FeeTotal:  feeTotal,
		Subtotal:  subtotal,
		Amount:    subtotal + feeTotal,
	}, nil
}
