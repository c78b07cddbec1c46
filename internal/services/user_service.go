package services

import (
	"context"
	"evcharge/internal/models/db_models"
	"evcharge/internal/models/request_models"
	"evcharge/internal/models/response_models"
	"evcharge/internal/repositories"
	mem "evcharge/pkg/memcache"
	"evcharge/pkg/utils"
	"github.com/google/uuid"
	"log"
	"strings"
	"time"
)

const emailChangeCodeTTL = 10 * time.Minute

type UserServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
	RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error
	ConfirmEmailChange(ctx context.Context, userID uuid.UUID, code string) (*response_models.UserResponse, error)
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	codes mem.VerificationCodeStore,
	mail IMailService,
) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		codes:    codes,
		mail:     mail,
	}
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	codes    mem.VerificationCodeStore
	mail     IMailService
}

func (s *UserService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.UserResponse, error) {

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     db_models.RoleDriver,
		Status:   db_models.UserStatusActive,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return userResponse(user), nil
}

func (s *UserService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.Password, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  *userResponse(user),
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return userResponse(user), nil
}

// RequestEmailChange stores a short-lived single-use code keyed by user and
// mails it to the new address; ConfirmEmailChange consumes it.
func (s *UserService) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) error {

	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, newEmail)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailTaken
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return err
	}
	s.codes.Set(emailChangeKey(userID), code+"|"+newEmail, emailChangeCodeTTL)

	if err := s.mail.SendVerificationCode(newEmail, code); err != nil {
		log.Printf("Failed to send verification code to %s: %v", newEmail, err)
		return err
	}
	return nil
}

func (s *UserService) ConfirmEmailChange(ctx context.Context, userID uuid.UUID, code string) (*response_models.UserResponse, error) {

	stored := s.codes.Consume(emailChangeKey(userID))
	if stored == "" {
		return nil, utils.ErrInvalidVerificationCode
	}
	parts := strings.SplitN(stored, "|", 2)
	if len(parts) != 2 || parts[0] != code {
		return nil, utils.ErrInvalidVerificationCode
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Email = parts[1]
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return userResponse(user), nil
}

func (s *UserService) getUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func emailChangeKey(userID uuid.UUID) string {
	return "email-change:" + userID.String()
}

func userResponse(user *db_models.User) *response_models.UserResponse {
	return &response_models.UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
		Address:  user.Address,
		Role:     string(user.Role),
		Status:   string(user.Status),
	}
}
