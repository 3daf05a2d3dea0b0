package repository

import (
	"github.com/lakshya-prep/lakshya/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByID(id string) (*model.Attempt, error)
	FindAllByAssessmentAndUser(assessmentID, userID string) ([]model.Attempt, error)
	FindRecentByUser(userID string, limit int) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByAssessmentAndUser(assessmentID, userID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("assessment_id = ? AND user_id = ?", assessmentID, userID).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindRecentByUser(userID string, limit int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}
