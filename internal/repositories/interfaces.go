package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mentorhub/mentorship-service/internal/models"
)

// All repositories address rows by the external integer identifier supplied by
// the caller, never by a store-internal one. Update replaces the full document
// and reports whether a row matched; Delete reports whether a row was removed.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type InstructorRepository interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	List(ctx context.Context) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	List(ctx context.Context) ([]*models.Session, error)
	Update(ctx context.Context, session *models.Session) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// Repository aggregates the per-collection repositories behind one handle.
type Repository interface {
	User() UserRepository
	Instructor() InstructorRepository
	Session() SessionRepository

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns repository lifecycle (connect, health, shutdown).
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// IsNotFoundError reports whether err means no row matched a lookup.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError reports whether err is a unique-constraint violation. The
// constraint in the store, not the application pre-check, is authoritative for
// conflicts.
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
