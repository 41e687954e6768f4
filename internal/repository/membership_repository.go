package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gym_manager/internal/models"
	"gym_manager/internal/services"
)

// MembershipRepository implements the membership service's transactional
// store on gorm. The cancel-existing + insert-new sequence runs inside one
// database transaction so concurrent enrollments for the same student
// serialize at the database.
type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) InTransaction(ctx context.Context, fn func(tx services.MembershipTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&membershipTx{tx: tx})
	})
}

// ListByStudent returns the student's full membership history, newest first.
func (r *MembershipRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("start_date desc").
		Find(&memberships).Error
	return memberships, err
}

type membershipTx struct {
	tx *gorm.DB
}

func (t *membershipTx) CancelActiveMemberships(studentID uint, endedAt time.Time) error {
	return t.tx.Model(&models.Membership{}).
		Where("student_id = ? AND status = ?", studentID, models.MembershipActive).
		Updates(map[string]interface{}{
			"status":   models.MembershipCancelled,
			"end_date": endedAt,
		}).Error
}

func (t *membershipTx) InsertMembership(m *models.Membership) error {
	return t.tx.Create(m).Error
}
