package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorhub/mentorship-service/internal/auth"
	"github.com/mentorhub/mentorship-service/internal/events"
	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/repositories"
	"github.com/mentorhub/mentorship-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	hasher    auth.PasswordHasher
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(
	repo repositories.Repository,
	hasher auth.PasswordHasher,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) UserService {
	return &userService{
		repo:      repo,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	s.logger.Info("Creating user", "user_id", req.ID, "username", req.Username)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	// Fast-path pre-check; the unique constraint in the store is authoritative.
	exists, err := s.repo.User().ExistsByID(ctx, req.ID)
	if err != nil {
		return nil, &StoreError{Op: "user exists check", Err: err}
	}
	if exists {
		return nil, &ConflictError{Resource: "user", Field: "id", Value: req.ID}
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
			return nil, &ConflictError{Resource: "user", Field: "id", Value: req.ID}
		}
		return nil, &StoreError{Op: "create user", Err: err}
	}

	s.publishEvent(ctx, events.UserCreated, user)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, &NotFoundError{Resource: "user", ID: id}
		}
		return nil, &StoreError{Op: "get user", Err: err}
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list users", Err: err}
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*models.User, error) {
	s.logger.Info("Updating user", "user_id", id)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, ValidationErrors{{Field: "password", Message: err.Error(), Rule: "required"}}
	}

	user := &models.User{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Level:    req.Level,
		Password: hash,
	}

	matched, err := s.repo.User().Update(ctx, user)
	if err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, &ConflictError{Resource: "user", Field: "username", Value: req.Username}
		}
		return nil, &StoreError{Op: "update user", Err: err}
	}
	if !matched {
		return nil, &NotFoundError{Resource: "user", ID: id}
	}

	s.publishEvent(ctx, events.UserUpdated, user)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Deleting user", "user_id", id)

	deleted, err := s.repo.User().Delete(ctx, id)
	if err != nil {
		return &StoreError{Op: "delete user", Err: err}
	}
	if !deleted {
		return &NotFoundError{Resource: "user", ID: id}
	}

	s.publishEvent(ctx, events.UserDeleted, map[string]int64{"id": id})
	return nil
}

func (s *userService) publishEvent(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to publish %s event", eventType), "error", err)
	}
}
