package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gym_manager/internal/models"
	"gym_manager/internal/services"
)

// StudentRepository reads student records; it satisfies the StudentFinder
// interfaces of the membership service and the ownership middleware.
type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) FindStudent(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindStudentWithPerson(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Preload("Person").First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// ListWithActiveMembership returns all students, each with its person and its
// current ACTIVE membership (if any) loaded.
func (r *StudentRepository) ListWithActiveMembership(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Preload("Person").
		Preload("Memberships", "status = ?", models.MembershipActive).
		Find(&students).Error
	return students, err
}
