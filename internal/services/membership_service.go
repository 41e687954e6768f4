package services

import (
	"context"
	"time"

	"gym_manager/internal/models"
)

// MembershipTx is the set of writes available inside one atomic unit of work.
type MembershipTx interface {
	CancelActiveMemberships(studentID uint, endedAt time.Time) error
	InsertMembership(m *models.Membership) error
}

// MembershipStore runs a function inside a transaction. If the function
// returns an error the transaction rolls back and nothing is visible.
type MembershipStore interface {
	InTransaction(ctx context.Context, fn func(tx MembershipTx) error) error
}

// StudentFinder resolves a student record by id.
type StudentFinder interface {
	FindStudent(ctx context.Context, id uint) (*models.Student, error)
}

// MembershipService owns the enrollment lifecycle. All status transitions go
// through here; nothing else writes membership rows.
type MembershipService struct {
	store    MembershipStore
	students StudentFinder
	now      func() time.Time
}

func NewMembershipService(store MembershipStore, students StudentFinder) *MembershipService {
	return &MembershipService{store: store, students: students, now: time.Now}
}

// CreateActiveMembership enrolls the student on a new plan. Any membership
// still ACTIVE is superseded: it becomes CANCELLED with endDate stamped to the
// call time, and the new row is inserted ACTIVE, all in one transaction. After
// a successful return exactly one ACTIVE row exists for the student; after a
// failed one the set of ACTIVE rows is unchanged, so callers may retry.
func (s *MembershipService) CreateActiveMembership(ctx context.Context, studentID uint, membershipType models.MembershipType, startDate time.Time) (*models.Membership, error) {
	if _, err := s.students.FindStudent(ctx, studentID); err != nil {
		return nil, err
	}

	var created *models.Membership
	err := s.store.InTransaction(ctx, func(tx MembershipTx) error {
		if err := tx.CancelActiveMemberships(studentID, s.now()); err != nil {
			return err
		}
		membership := &models.Membership{
			StudentID: studentID,
			Type:      membershipType,
			Status:    models.MembershipActive,
			StartDate: startDate,
		}
		if err := tx.InsertMembership(membership); err != nil {
			return err
		}
		created = membership
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
