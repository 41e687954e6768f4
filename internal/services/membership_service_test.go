package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gym_manager/internal/models"
)

var errInsertRejected = errors.New("insert rejected")

// memoryStore is a transactional in-memory stand-in for the gorm repository.
// Writes go to a staged copy that only replaces the live slice on commit, so
// a failed transaction leaves nothing behind.
type memoryStore struct {
	mu          sync.Mutex
	nextID      uint
	memberships []models.Membership
	students    map[uint]*models.Student
	failInsert  bool
}

func newMemoryStore(studentIDs ...uint) *memoryStore {
	s := &memoryStore{students: make(map[uint]*models.Student)}
	for _, id := range studentIDs {
		s.students[id] = &models.Student{Model: gorm.Model{ID: id}, PersonID: id + 100}
	}
	return s
}

func (s *memoryStore) FindStudent(_ context.Context, id uint) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	return student, nil
}

func (s *memoryStore) InTransaction(_ context.Context, fn func(tx MembershipTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make([]models.Membership, len(s.memberships))
	copy(staged, s.memberships)

	tx := &memoryTx{store: s, staged: &staged}
	if err := fn(tx); err != nil {
		return err
	}
	s.memberships = staged
	return nil
}

func (s *memoryStore) active(studentID uint) []models.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Membership
	for _, m := range s.memberships {
		if m.StudentID == studentID && m.Status == models.MembershipActive {
			out = append(out, m)
		}
	}
	return out
}

type memoryTx struct {
	store  *memoryStore
	staged *[]models.Membership
}

func (t *memoryTx) CancelActiveMemberships(studentID uint, endedAt time.Time) error {
	for i := range *t.staged {
		m := &(*t.staged)[i]
		if m.StudentID == studentID && m.Status == models.MembershipActive {
			m.Status = models.MembershipCancelled
			end := endedAt
			m.EndDate = &end
		}
	}
	return nil
}

func (t *memoryTx) InsertMembership(m *models.Membership) error {
	if t.store.failInsert {
		return errInsertRejected
	}
	t.store.nextID++
	m.ID = t.store.nextID
	*t.staged = append(*t.staged, *m)
	return nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFirstEnrollment(t *testing.T) {
	store := newMemoryStore(1)
	service := NewMembershipService(store, store)

	membership, err := service.CreateActiveMembership(context.Background(), 1, models.MembershipMonthly, date("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, models.MembershipActive, membership.Status)
	assert.Equal(t, models.MembershipMonthly, membership.Type)
	assert.Nil(t, membership.EndDate)

	active := store.active(1)
	require.Len(t, active, 1)
	assert.Equal(t, membership.ID, active[0].ID)
}

func TestEnrollmentSupersedesActive(t *testing.T) {
	store := newMemoryStore(1)
	service := NewMembershipService(store, store)
	before := time.Now()

	first, err := service.CreateActiveMembership(context.Background(), 1, models.MembershipMonthly, date("2023-11-01"))
	require.NoError(t, err)

	second, err := service.CreateActiveMembership(context.Background(), 1, models.MembershipAnnual, date("2024-02-01"))
	require.NoError(t, err)

	active := store.active(1)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
	assert.Equal(t, models.MembershipAnnual, active[0].Type)

	// The superseded record is cancelled with its end stamped to the call time
	store.mu.Lock()
	var old *models.Membership
	for i := range store.memberships {
		if store.memberships[i].ID == first.ID {
			old = &store.memberships[i]
		}
	}
	store.mu.Unlock()
	require.NotNil(t, old)
	assert.Equal(t, models.MembershipCancelled, old.Status)
	require.NotNil(t, old.EndDate)
	assert.False(t, old.EndDate.Before(before))
}

func TestEnrollmentUnknownStudent(t *testing.T) {
	store := newMemoryStore(1)
	service := NewMembershipService(store, store)

	_, err := service.CreateActiveMembership(context.Background(), 42, models.MembershipMonthly, date("2024-01-01"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.active(42))
}

func TestFailedEnrollmentLeavesStateUnchanged(t *testing.T) {
	store := newMemoryStore(1)
	service := NewMembershipService(store, store)

	first, err := service.CreateActiveMembership(context.Background(), 1, models.MembershipMonthly, date("2024-01-01"))
	require.NoError(t, err)

	store.failInsert = true
	_, err = service.CreateActiveMembership(context.Background(), 1, models.MembershipAnnual, date("2024-02-01"))
	require.Error(t, err)

	// The aborted transaction did not cancel the existing membership
	active := store.active(1)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Nil(t, active[0].EndDate)

	// Retrying after the failure succeeds cleanly
	store.failInsert = false
	retried, err := service.CreateActiveMembership(context.Background(), 1, models.MembershipAnnual, date("2024-02-01"))
	require.NoError(t, err)
	active = store.active(1)
	require.Len(t, active, 1)
	assert.Equal(t, retried.ID, active[0].ID)
}

func TestConcurrentEnrollmentsKeepSingleActive(t *testing.T) {
	store := newMemoryStore(1, 2)
	service := NewMembershipService(store, store)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			studentID := uint(1 + n%2)
			_, err := service.CreateActiveMembership(context.Background(), studentID, models.MembershipMonthly, date("2024-01-01"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// However the calls interleave, each student ends with exactly one
	// ACTIVE membership, and every cancelled row has its end stamped.
	for _, studentID := range []uint{1, 2} {
		assert.Len(t, store.active(studentID), 1)
	}
	store.mu.Lock()
	for _, m := range store.memberships {
		if m.Status == models.MembershipCancelled {
			assert.NotNil(t, m.EndDate)
		}
	}
	store.mu.Unlock()
}
