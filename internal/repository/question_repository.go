package repository

import (
	"github.com/lakshya-prep/lakshya/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id string) (*model.Question, error)
	FindByIDs(ids []string) ([]model.Question, error)
	CountDailyEligible() (int64, error)
	FindByDailySerial(serial int) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDs returns the questions that exist for the given ids. Missing ids
// are simply absent from the result, never an error. Callers are expected to
// keep each id set within the lookup batch cap.
func (r *questionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountDailyEligible() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("daily_serial IS NOT NULL").Count(&count).Error
	return count, err
}

func (r *questionRepository) FindByDailySerial(serial int) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "daily_serial = ?", serial).Error; err != nil {
		return nil, err
	}
	return &question, nil
}
