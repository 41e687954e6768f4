package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gym_manager/internal/models"
	"gym_manager/internal/services"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) Create(ctx context.Context, assessment *models.PhysicalAssessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id uint) (*models.PhysicalAssessment, error) {
	var assessment models.PhysicalAssessment
	err := r.db.WithContext(ctx).First(&assessment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) Update(ctx context.Context, assessment *models.PhysicalAssessment) error {
	return r.db.WithContext(ctx).Save(assessment).Error
}

// ListByStudent returns the student's assessments, newest first.
func (r *AssessmentRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.PhysicalAssessment, error) {
	var assessments []models.PhysicalAssessment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&assessments).Error
	return assessments, err
}
