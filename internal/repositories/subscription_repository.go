package repositories

import (
	"context"
	"evcharge/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepositoryInterface interface {
	// ListActiveSubscriptionsForUser returns every subscription whose window
	// contains the given instant. Callers enforce the single-active invariant.
	ListActiveSubscriptionsForUser(ctx context.Context, userID uuid.UUID, at int64) ([]db_models.Subscription, error)
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &SubscriptionRepository{db: db}
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func (r SubscriptionRepository) ListActiveSubscriptionsForUser(ctx context.Context, userID uuid.UUID, at int64) ([]db_models.Subscription, error) {

	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_time <= ? AND end_time > ?", userID, at, at).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
