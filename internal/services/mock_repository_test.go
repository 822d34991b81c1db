package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/repositories"
)

// mockRepository is an in-memory repositories.Repository with the same
// uniqueness and matched-row semantics as the PostgreSQL implementation.
type mockRepository struct {
	users       *mockUserRepository
	instructors *mockInstructorRepository
	sessions    *mockSessionRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:       &mockUserRepository{users: map[int64]models.User{}},
		instructors: &mockInstructorRepository{instructors: map[int64]models.Instructor{}},
		sessions:    &mockSessionRepository{sessions: map[int64]models.Session{}},
	}
}

func (r *mockRepository) User() repositories.UserRepository             { return r.users }
func (r *mockRepository) Instructor() repositories.InstructorRepository { return r.instructors }
func (r *mockRepository) Session() repositories.SessionRepository       { return r.sessions }
func (r *mockRepository) Ping(context.Context) error                    { return nil }
func (r *mockRepository) Close() error                                  { return nil }

type mockUserRepository struct {
	mu    sync.Mutex
	users map[int64]models.User
}

func (r *mockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *mockUserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *mockUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepository) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		out = append(out, &u)
	}
	return out, nil
}

func (r *mockUserRepository) Update(_ context.Context, user *models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return false, nil
	}
	for id, u := range r.users {
		if id != user.ID && u.Username == user.Username {
			return false, gorm.ErrDuplicatedKey
		}
	}
	r.users[user.ID] = *user
	return true, nil
}

func (r *mockUserRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *mockUserRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *mockUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type mockInstructorRepository struct {
	mu          sync.Mutex
	instructors map[int64]models.Instructor
}

func (r *mockInstructorRepository) Create(_ context.Context, instructor *models.Instructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.instructors[instructor.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.instructors[instructor.ID] = *instructor
	return nil
}

func (r *mockInstructorRepository) GetByID(_ context.Context, id int64) (*models.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.instructors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &i, nil
}

func (r *mockInstructorRepository) List(_ context.Context) ([]*models.Instructor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Instructor, 0, len(r.instructors))
	for _, i := range r.instructors {
		i := i
		out = append(out, &i)
	}
	return out, nil
}

func (r *mockInstructorRepository) Update(_ context.Context, instructor *models.Instructor) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instructors[instructor.ID]; !ok {
		return false, nil
	}
	r.instructors[instructor.ID] = *instructor
	return true, nil
}

func (r *mockInstructorRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instructors[id]; !ok {
		return false, nil
	}
	delete(r.instructors, id)
	return true, nil
}

func (r *mockInstructorRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.instructors[id]
	return ok, nil
}

type mockSessionRepository struct {
	mu       sync.Mutex
	sessions map[int64]models.Session
}

func (r *mockSessionRepository) Create(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[session.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *mockSessionRepository) GetByID(_ context.Context, id int64) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *mockSessionRepository) List(_ context.Context) ([]*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (r *mockSessionRepository) Update(_ context.Context, session *models.Session) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return false, nil
	}
	r.sessions[session.ID] = *session
	return true, nil
}

func (r *mockSessionRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}

func (r *mockSessionRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	return ok, nil
}
