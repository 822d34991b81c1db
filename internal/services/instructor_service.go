package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorhub/mentorship-service/internal/events"
	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/repositories"
	"github.com/mentorhub/mentorship-service/internal/validator"
)

type instructorService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewInstructorService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) InstructorService {
	return &instructorService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *instructorService) Create(ctx context.Context, req *CreateInstructorRequest) (*models.Instructor, error) {
	s.logger.Info("Creating instructor", "instructor_id", req.ID, "name", req.Name)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Instructor().ExistsByID(ctx, req.ID)
	if err != nil {
		return nil, &StoreError{Op: "instructor exists check", Err: err}
	}
	if exists {
		return nil, &ConflictError{Resource: "instructor", Field: "id", Value: req.ID}
	}

	instructor := &models.Instructor{
		ID:           req.ID,
		Name:         req.Name,
		Role:         req.Role,
		ModelVersion: req.ModelVersion,
		Expertise:    req.Expertise,
	}

	if err := s.repo.Instructor().Create(ctx, instructor); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, &ConflictError{Resource: "instructor", Field: "id", Value: req.ID}
		}
		return nil, &StoreError{Op: "create instructor", Err: err}
	}

	s.publishEvent(ctx, events.InstructorCreated, instructor)
	return instructor, nil
}

func (s *instructorService) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.repo.Instructor().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, &NotFoundError{Resource: "instructor", ID: id}
		}
		return nil, &StoreError{Op: "get instructor", Err: err}
	}
	return instructor, nil
}

func (s *instructorService) List(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.repo.Instructor().List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list instructors", Err: err}
	}
	return instructors, nil
}

func (s *instructorService) Update(ctx context.Context, id int64, req *UpdateInstructorRequest) (*models.Instructor, error) {
	s.logger.Info("Updating instructor", "instructor_id", id)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	instructor := &models.Instructor{
		ID:           id,
		Name:         req.Name,
		Role:         req.Role,
		ModelVersion: req.ModelVersion,
		Expertise:    req.Expertise,
	}

	matched, err := s.repo.Instructor().Update(ctx, instructor)
	if err != nil {
		return nil, &StoreError{Op: "update instructor", Err: err}
	}
	if !matched {
		return nil, &NotFoundError{Resource: "instructor", ID: id}
	}

	s.publishEvent(ctx, events.InstructorUpdated, instructor)
	return instructor, nil
}

func (s *instructorService) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Deleting instructor", "instructor_id", id)

	deleted, err := s.repo.Instructor().Delete(ctx, id)
	if err != nil {
		return &StoreError{Op: "delete instructor", Err: err}
	}
	if !deleted {
		return &NotFoundError{Resource: "instructor", ID: id}
	}

	s.publishEvent(ctx, events.InstructorDeleted, map[string]int64{"id": id})
	return nil
}

func (s *instructorService) publishEvent(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, payload)); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to publish %s event", eventType), "error", err)
	}
}
