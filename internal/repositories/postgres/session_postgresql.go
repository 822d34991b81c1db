package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/repositories"
)

type SessionPostgreSQL struct {
	db *gorm.DB
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{db: db}
}

func (r *SessionPostgreSQL) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionPostgreSQL) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionPostgreSQL) List(ctx context.Context) ([]*models.Session, error) {
	var sessions []*models.Session
	if err := r.db.WithContext(ctx).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Update replaces the full document, embedded snapshots included.
func (r *SessionPostgreSQL) Update(ctx context.Context, session *models.Session) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", session.ID).
		Select("*").
		Omit("id").
		Updates(session)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SessionPostgreSQL) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SessionPostgreSQL) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
