package services

import (
	"context"

	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use validator request types
type CreateUserRequest = validator.UserCreateRequest
type UpdateUserRequest = validator.UserUpdateRequest
type CreateInstructorRequest = validator.InstructorCreateRequest
type UpdateInstructorRequest = validator.InstructorUpdateRequest
type CreateSessionRequest = validator.SessionCreateRequest
type UpdateSessionRequest = validator.SessionUpdateRequest
type LoginRequest = validator.LoginRequest

// SignupRequest reuses the full user document shape.
type SignupRequest = validator.UserCreateRequest

type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

// ===== SERVICE INTERFACES =====

type UserService interface {
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, req *UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type InstructorService interface {
	Create(ctx context.Context, req *CreateInstructorRequest) (*models.Instructor, error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	List(ctx context.Context) ([]*models.Instructor, error)
	Update(ctx context.Context, id int64, req *UpdateInstructorRequest) (*models.Instructor, error)
	Delete(ctx context.Context, id int64) error
}

type SessionService interface {
	Create(ctx context.Context, req *CreateSessionRequest) (*models.Session, error)
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	List(ctx context.Context) ([]*models.Session, error)
	Update(ctx context.Context, id int64, req *UpdateSessionRequest) (*models.Session, error)
	Delete(ctx context.Context, id int64) error
}

type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*SignupResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// VerifyToken validates a bearer token and returns its subject.
	VerifyToken(token string) (string, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	User() UserService
	Instructor() InstructorService
	Session() SessionService
	Auth() AuthService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
