package services

import (
	"context"
	"log/slog"

	"github.com/mentorhub/mentorship-service/internal/auth"
	"github.com/mentorhub/mentorship-service/internal/events"
	"github.com/mentorhub/mentorship-service/internal/repositories"
	"github.com/mentorhub/mentorship-service/internal/validator"
)

// DefaultServiceManager wires all services over one repository handle and one
// event publisher.
type DefaultServiceManager struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger

	user       UserService
	instructor InstructorService
	session    SessionService
	auth       AuthService
}

func NewDefaultServiceManager(
	repo repositories.Repository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenManager,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) *DefaultServiceManager {
	return &DefaultServiceManager{
		repo:       repo,
		publisher:  publisher,
		logger:     logger,
		user:       NewUserService(repo, hasher, publisher, logger, validator),
		instructor: NewInstructorService(repo, publisher, logger, validator),
		session:    NewSessionService(repo, publisher, logger, validator),
		auth:       NewAuthService(repo, hasher, tokens, publisher, logger, validator),
	}
}

func (m *DefaultServiceManager) User() UserService             { return m.user }
func (m *DefaultServiceManager) Instructor() InstructorService { return m.instructor }
func (m *DefaultServiceManager) Session() SessionService       { return m.session }
func (m *DefaultServiceManager) Auth() AuthService             { return m.auth }

func (m *DefaultServiceManager) Initialize(ctx context.Context) error {
	return m.repo.Ping(ctx)
}

func (m *DefaultServiceManager) HealthCheck(ctx context.Context) error {
	return m.repo.Ping(ctx)
}

func (m *DefaultServiceManager) Shutdown(ctx context.Context) error {
	return m.publisher.Close()
}
