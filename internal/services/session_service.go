package services

import (
	"context"
	"evcharge/internal/models/db_models"
	"evcharge/internal/repositories"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
)

type SessionServiceInterface interface {
	GetSession(ctx context.Context, sessionID uuid.UUID) (*db_models.Session, error)
	ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Session, error)
}

func NewSessionService(sessionRepo repositories.SessionRepositoryInterface) SessionServiceInterface {
	return &SessionService{sessionRepo: sessionRepo}
}

type SessionService struct {
	sessionRepo repositories.SessionRepositoryInterface
}

func (s *SessionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*db_models.Session, error) {

	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Session, error) {

	sessions, err := s.sessionRepo.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sessions, nil
}
