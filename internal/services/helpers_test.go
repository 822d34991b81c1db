package services

import (
	"io"
	"log/slog"
	"time"

	"github.com/mentorhub/mentorship-service/internal/auth"
	"github.com/mentorhub/mentorship-service/internal/events"
	"github.com/mentorhub/mentorship-service/internal/validator"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubHasher is a deterministic PasswordHasher that keeps the password
// recognizable in assertions.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", auth.ErrEmptyPassword
	}
	return "hashed:" + password, nil
}

func (stubHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

type testEnv struct {
	repo      *mockRepository
	publisher *events.MockEventPublisher
	manager   *DefaultServiceManager
}

func newTestEnv() *testEnv {
	logger := newTestLogger()
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(logger)

	tokens, err := auth.NewTokenManager("test-secret", "HS256", time.Hour)
	if err != nil {
		panic(err)
	}

	return &testEnv{
		repo:      repo,
		publisher: publisher,
		manager: NewDefaultServiceManager(
			repo,
			stubHasher{},
			tokens,
			publisher,
			logger,
			validator.New(),
		),
	}
}

func (e *testEnv) eventTypes() []string {
	published := e.publisher.GetPublishedEvents()
	types := make([]string, len(published))
	for i, ev := range published {
		types[i] = ev.Type
	}
	return types
}
