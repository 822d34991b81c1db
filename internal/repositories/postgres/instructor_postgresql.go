package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mentorhub/mentorship-service/internal/models"
	"github.com/mentorhub/mentorship-service/internal/repositories"
)

type InstructorPostgreSQL struct {
	db *gorm.DB
}

func NewInstructorPostgreSQL(db *gorm.DB) repositories.InstructorRepository {
	return &InstructorPostgreSQL{db: db}
}

func (r *InstructorPostgreSQL) Create(ctx context.Context, instructor *models.Instructor) error {
	return r.db.WithContext(ctx).Create(instructor).Error
}

func (r *InstructorPostgreSQL) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := r.db.WithContext(ctx).First(&instructor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorPostgreSQL) List(ctx context.Context) ([]*models.Instructor, error) {
	var instructors []*models.Instructor
	if err := r.db.WithContext(ctx).Find(&instructors).Error; err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	return instructors, nil
}

func (r *InstructorPostgreSQL) Update(ctx context.Context, instructor *models.Instructor) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Instructor{}).
		Where("id = ?", instructor.ID).
		Select("*").
		Omit("id").
		Updates(instructor)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *InstructorPostgreSQL) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Instructor{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *InstructorPostgreSQL) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Instructor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
