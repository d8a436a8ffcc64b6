package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
)

// memoryStore is an in-memory stand-in for the enrollment repository. Its
// claim and withdrawal honor the same contract: the seat counter and the
// enrollment row change together under one lock, and a full section refuses
// the claim with apperrors.ErrSeatsExhausted.
type memoryStore struct {
	mu          sync.Mutex
	nextID      int64
	offerings   map[int64]*models.CourseOffering
	enrollments map[int64]*models.Enrollment
}

func newMemoryStore(offerings ...*models.CourseOffering) *memoryStore {
	s := &memoryStore{
		nextID:      1,
		offerings:   make(map[int64]*models.CourseOffering),
		enrollments: make(map[int64]*models.Enrollment),
	}
	for _, o := range offerings {
		s.offerings[o.ID] = o
	}
	return s
}

func (s *memoryStore) GetByID(_ context.Context, id int64) (*models.CourseOffering, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	offering, ok := s.offerings[id]
	if !ok {
		return nil, apperrors.ErrOfferingNotFound
	}
	copied := *offering
	return &copied, nil
}

func (s *memoryStore) ListByStudentTerm(_ context.Context, studentID int64, year int, term models.Term) ([]*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Enrollment
	for _, e := range s.enrollments {
		offering := s.offerings[e.OfferingID]
		if e.StudentID == studentID && offering.Year == year && offering.Term == term {
			copied := *e
			offeringCopy := *offering
			copied.Offering = &offeringCopy
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memoryStore) ClaimSeatAndEnroll(_ context.Context, enrollment *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	offering, ok := s.offerings[enrollment.OfferingID]
	if !ok {
		return apperrors.ErrOfferingNotFound
	}
	if offering.Filled >= offering.Capacity {
		return apperrors.ErrSeatsExhausted
	}
	offering.Filled++
	enrollment.ID = s.nextID
	s.nextID++
	stored := *enrollment
	s.enrollments[enrollment.ID] = &stored
	return nil
}

func (s *memoryStore) WithdrawReleasingSeat(_ context.Context, enrollmentID, studentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrollment, ok := s.enrollments[enrollmentID]
	if !ok || enrollment.StudentID != studentID {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(s.enrollments, enrollmentID)
	if offering := s.offerings[enrollment.OfferingID]; offering.Filled > 0 {
		offering.Filled--
	}
	return nil
}

func (s *memoryStore) filled(offeringID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offerings[offeringID].Filled
}

func offeringFixture(id, courseID int64, credits float64, daySlot, timeSlot string, capacity int) *models.CourseOffering {
	return &models.CourseOffering{
		ID:       id,
		CourseID: courseID,
		Year:     2026,
		Term:     models.TermFall,
		Section:  "A",
		DaySlot:  daySlot,
		TimeSlot: timeSlot,
		Room:     "A-101",
		Capacity: capacity,
		Course:   &models.Course{ID: courseID, Code: "CENG101", Credits: credits},
	}
}

func TestEnrollAdmitsAndClaimsSeat(t *testing.T) {
	store := newMemoryStore(offeringFixture(10, 1, 3, "MW", "08:30 - 10:00", 30))
	service := NewEnrollmentService(store, store, ClashExactSlot)

	decision, enrollment, err := service.Enroll(context.Background(), 7, 10)

	require.NoError(t, err)
	assert.True(t, decision.Admitted)
	require.NotNil(t, enrollment)
	assert.Equal(t, int64(7), enrollment.StudentID)
	assert.Equal(t, int64(10), enrollment.OfferingID)
	assert.Equal(t, 1, store.filled(10))
}

func TestEnrollRejectsWithoutSideEffects(t *testing.T) {
	courseA := offeringFixture(10, 1, 3, "MW", "08:30 - 10:00", 30)
	sectionB := offeringFixture(11, 1, 3, "TR", "10:10 - 11:40", 30)
	store := newMemoryStore(courseA, sectionB)
	service := NewEnrollmentService(store, store, ClashExactSlot)

	_, _, err := service.Enroll(context.Background(), 7, 10)
	require.NoError(t, err)

	// Another section of the same course: rejected, nothing written
	decision, enrollment, err := service.Enroll(context.Background(), 7, 11)

	require.NoError(t, err)
	assert.False(t, decision.Admitted)
	assert.Equal(t, ReasonAlreadyEnrolled, decision.Reason)
	assert.Nil(t, enrollment)
	assert.Equal(t, 0, store.filled(11))
}

func TestEnrollUnknownOffering(t *testing.T) {
	store := newMemoryStore()
	service := NewEnrollmentService(store, store, ClashExactSlot)

	_, _, err := service.Enroll(context.Background(), 7, 99)

	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)
}

func TestEnrollMalformedSlotUnderOverlapPolicy(t *testing.T) {
	broken := offeringFixture(10, 1, 3, "MW", "TBA", 30)
	store := newMemoryStore(broken)
	service := NewEnrollmentService(store, store, ClashIntervalOverlap)

	_, _, err := service.Enroll(context.Background(), 7, 10)

	assert.ErrorIs(t, err, apperrors.ErrMalformedTimeSlot)
}

func TestEnrollMalformedSlotToleratedUnderExactPolicy(t *testing.T) {
	broken := offeringFixture(10, 1, 3, "MW", "TBA", 30)
	store := newMemoryStore(broken)
	service := NewEnrollmentService(store, store, ClashExactSlot)

	decision, _, err := service.Enroll(context.Background(), 7, 10)

	require.NoError(t, err)
	assert.True(t, decision.Admitted)
}

// Two admissions racing for the last seat: exactly one may win, and the
// counter must end at capacity, not beyond it.
func TestEnrollLastSeatRace(t *testing.T) {
	lastSeat := offeringFixture(10, 1, 3, "MW", "08:30 - 10:00", 1)
	store := newMemoryStore(lastSeat)
	service := NewEnrollmentService(store, store, ClashExactSlot)

	const racers = 16
	decisions := make([]Decision, racers)
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			decisions[i], _, errs[i] = service.Enroll(context.Background(), int64(100+i), 10)
		}(i)
	}
	wg.Wait()

	admitted := 0
	for i := 0; i < racers; i++ {
		require.NoError(t, errs[i])
		if decisions[i].Admitted {
			admitted++
		} else {
			assert.Equal(t, ReasonNoSeatsAvailable, decisions[i].Reason)
		}
	}
	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, store.filled(10))
}

func TestWithdrawIsIdempotent(t *testing.T) {
	store := newMemoryStore(offeringFixture(10, 1, 3, "MW", "08:30 - 10:00", 30))
	service := NewEnrollmentService(store, store, ClashExactSlot)

	_, enrollment, err := service.Enroll(context.Background(), 7, 10)
	require.NoError(t, err)
	require.Equal(t, 1, store.filled(10))

	require.NoError(t, service.Withdraw(context.Background(), 7, enrollment.ID))
	assert.Equal(t, 0, store.filled(10))

	// Second withdrawal finds nothing and must not drive the counter negative
	err = service.Withdraw(context.Background(), 7, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
	assert.Equal(t, 0, store.filled(10))
}

func TestWithdrawOtherStudentsEnrollment(t *testing.T) {
	store := newMemoryStore(offeringFixture(10, 1, 3, "MW", "08:30 - 10:00", 30))
	service := NewEnrollmentService(store, store, ClashExactSlot)

	_, enrollment, err := service.Enroll(context.Background(), 7, 10)
	require.NoError(t, err)

	err = service.Withdraw(context.Background(), 8, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
	assert.Equal(t, 1, store.filled(10))
}

func TestScheduleTotalsCredits(t *testing.T) {
	first := offeringFixture(10, 1, 3, "MW", "08:30 - 10:00", 30)
	second := offeringFixture(11, 2, 1.5, "F", "13:30 - 16:30", 30)
	store := newMemoryStore(first, second)
	service := NewEnrollmentService(store, store, ClashExactSlot)

	ctx := context.Background()
	_, _, err := service.Enroll(ctx, 7, 10)
	require.NoError(t, err)
	_, _, err = service.Enroll(ctx, 7, 11)
	require.NoError(t, err)

	enrollments, total, err := service.Schedule(ctx, 7, 2026, models.TermFall)

	require.NoError(t, err)
	assert.Len(t, enrollments, 2)
	assert.InDelta(t, 4.5, total, 1e-9)
}
