package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mentorhub/mentorship-service/internal/auth"
	"github.com/mentorhub/mentorship-service/internal/events"
	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/repositories"
	"github.com/mentorhub/mentorship-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	hasher    auth.PasswordHasher
	tokens    *auth.TokenManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(
	repo repositories.Repository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenManager,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) AuthService {
	return &authService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*SignupResponse, error) {
	s.logger.Info("Signing up user", "username", req.Username)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	// Username lookup is a case-sensitive exact match.
	taken, err := s.repo.User().ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, &StoreError{Op: "username check", Err: err}
	}
	if taken {
		return nil, &ConflictError{Resource: "user", Field: "username", Value: req.Username}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, ValidationErrors{{Field: "password", Message: err.Error(), Rule: "required"}}
	}

	user := &models.User{
		ID:       req.ID,
		Username: req.Username,
		Email:    req.Email,
		Level:    req.Level,
		Password: hash,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, &ConflictError{Resource: "user", Field: "username", Value: req.Username}
		}
		return nil, &StoreError{Op: "create user", Err: err}
	}

	s.publishEvent(ctx, events.UserSignedUp, user)

	return &SignupResponse{
		Success: true,
		Message: "User created successfully",
		UserID:  strconv.FormatInt(user.ID, 10),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.User().GetByUsername(ctx, req.Username)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			// Same message as a wrong password.
			return nil, ErrInvalidCredentials
		}
		return nil, &StoreError{Op: "get user by username", Err: err}
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID)

	return &LoginResponse{
		Success:     true,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.Lifetime().Seconds()),
	}, nil
}

func (s *authService) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}

func (s *authService) publishEvent(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to publish %s event", eventType), "error", err)
	}
}
