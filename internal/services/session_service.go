package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/mentorhub/mentorship-service/internal/events"
	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/repositories"
	"github.com/mentorhub/mentorship-service/internal/validator"
)

type sessionService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSessionService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) SessionService {
	return &sessionService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *sessionService) Create(ctx context.Context, req *CreateSessionRequest) (*models.Session, error) {
	s.logger.Info("Creating session", "session_id", req.ID, "user_id", req.UserID, "instructor_id", req.InstructorID)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Session().ExistsByID(ctx, req.ID)
	if err != nil {
		return nil, &StoreError{Op: "session exists check", Err: err}
	}
	if exists {
		return nil, &ConflictError{Resource: "session", Field: "id", Value: req.ID}
	}

	userSnap, instructorSnap, err := s.resolveReferences(ctx, req.UserID, req.InstructorID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:           req.ID,
		Topic:        req.Topic,
		Date:         req.Date,
		InstructorID: req.InstructorID,
		UserID:       req.UserID,
		User:         userSnap,
		Instructor:   instructorSnap,
	}

	if err := s.repo.Session().Create(ctx, session); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, &ConflictError{Resource: "session", Field: "id", Value: req.ID}
		}
		return nil, &StoreError{Op: "create session", Err: err}
	}

	s.publishEvent(ctx, events.SessionCreated, session)
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	session, err := s.repo.Session().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, &NotFoundError{Resource: "session", ID: id}
		}
		return nil, &StoreError{Op: "get session", Err: err}
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context) ([]*models.Session, error) {
	sessions, err := s.repo.Session().List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list sessions", Err: err}
	}
	return sessions, nil
}

func (s *sessionService) Update(ctx context.Context, id int64, req *UpdateSessionRequest) (*models.Session, error) {
	s.logger.Info("Updating session", "session_id", id)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	// References are re-resolved on every update so the stored snapshots are
	// fresh copies as of this write.
	userSnap, instructorSnap, err := s.resolveReferences(ctx, req.UserID, req.InstructorID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:           id,
		Topic:        req.Topic,
		Date:         req.Date,
		InstructorID: req.InstructorID,
		UserID:       req.UserID,
		User:         userSnap,
		Instructor:   instructorSnap,
	}

	matched, err := s.repo.Session().Update(ctx, session)
	if err != nil {
		return nil, &StoreError{Op: "update session", Err: err}
	}
	if !matched {
		return nil, &NotFoundError{Resource: "session", ID: id}
	}

	s.publishEvent(ctx, events.SessionUpdated, session)
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Deleting session", "session_id", id)

	deleted, err := s.repo.Session().Delete(ctx, id)
	if err != nil {
		return &StoreError{Op: "delete session", Err: err}
	}
	if !deleted {
		return &NotFoundError{Resource: "session", ID: id}
	}

	s.publishEvent(ctx, events.SessionDeleted, map[string]int64{"id": id})
	return nil
}

// resolveReferences loads both referenced records and returns their JSON
// snapshots, failing with a NotFoundError naming the missing reference. The
// user snapshot carries no password hash: the model excludes it from JSON.
func (s *sessionService) resolveReferences(ctx context.Context, userID, instructorID int64) (datatypes.JSON, datatypes.JSON, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil, &NotFoundError{Resource: "user", ID: userID}
		}
		return nil, nil, &StoreError{Op: "resolve user reference", Err: err}
	}

	instructor, err := s.repo.Instructor().GetByID(ctx, instructorID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil, &NotFoundError{Resource: "instructor", ID: instructorID}
		}
		return nil, nil, &StoreError{Op: "resolve instructor reference", Err: err}
	}

	userSnap, err := json.Marshal(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to snapshot user: %w", err)
	}
	instructorSnap, err := json.Marshal(instructor)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to snapshot instructor: %w", err)
	}

	return datatypes.JSON(userSnap), datatypes.JSON(instructorSnap), nil
}

func (s *sessionService) publishEvent(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to publish %s event", eventType), "error", err)
	}
}
