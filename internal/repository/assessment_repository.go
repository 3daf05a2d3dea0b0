package repository

import (
	"github.com/lakshya-prep/lakshya/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id string) (*model.Assessment, error)
	FindByIDWithSections(id string) (*model.Assessment, error)
	FindAll() ([]model.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	// Creates associated Sections in the same insert.
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDWithSections(id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("sections.order_index ASC")
	}).First(&assessment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAll() ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("sections.order_index ASC")
	}).Order("created_at DESC").Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}
