package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gym_manager/internal/models"
	"gym_manager/internal/services"
)

type WorkoutPlanRepository struct {
	db *gorm.DB
}

func NewWorkoutPlanRepository(db *gorm.DB) *WorkoutPlanRepository {
	return &WorkoutPlanRepository{db: db}
}

// Upsert creates the student's plan or replaces its content, stamping the
// editing employee either way.
func (r *WorkoutPlanRepository) Upsert(ctx context.Context, studentID, employeeID uint, content []byte) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&plan).Error
	switch {
	case err == nil:
		plan.Content = content
		plan.EmployeeID = employeeID
		if err := r.db.WithContext(ctx).Save(&plan).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		plan = models.WorkoutPlan{
			StudentID:  studentID,
			EmployeeID: employeeID,
			Content:    content,
		}
		if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &plan, nil
}

func (r *WorkoutPlanRepository) FindByStudent(ctx context.Context, studentID uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}
