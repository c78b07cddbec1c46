package repositories

import (
	"context"
	"errors"
	"evcharge/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepositoryInterface interface {
	GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.Session, error)
	ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Session, error)
}

func NewSessionRepository(db *gorm.DB) SessionRepositoryInterface {
	return &SessionRepository{db: db}
}

type SessionRepository struct {
	db *gorm.DB
}

func (r SessionRepository) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.Session, error) {

	var session db_models.Session
	err := r.db.WithContext(ctx).
		Preload("ChargingPoint").
		Preload("ChargingPoint.Station").
		Preload("User").
		Where("id = ?", sessionID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r SessionRepository) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Session, error) {

	var sessions []db_models.Session
	err := r.db.WithContext(ctx).
		Preload("ChargingPoint").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
