package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func candidateFixture() AdmissionCandidate {
	return AdmissionCandidate{
		OfferingID: 10,
		CourseID:   1,
		Credits:    3,
		Capacity:   30,
		Filled:     0,
		DaySlot:    "MW",
		TimeSlot:   "08:30 - 10:00",
	}
}

func heldFixture(courseID int64, credits float64, daySlot, timeSlot string) HeldEnrollment {
	return HeldEnrollment{
		OfferingID: courseID * 100,
		CourseID:   courseID,
		Credits:    credits,
		DaySlot:    daySlot,
		TimeSlot:   timeSlot,
	}
}

func TestEvaluateAdmissionAdmitsOnEmptySchedule(t *testing.T) {
	decision := EvaluateAdmission(candidateFixture(), nil, ClashExactSlot)

	assert.True(t, decision.Admitted)
	assert.Empty(t, decision.Reason)
}

func TestEvaluateAdmissionRejectsSameCourseAnySection(t *testing.T) {
	candidate := candidateFixture()
	// Held section of the same course meets at a different time; the
	// course-level check must still fire.
	held := []HeldEnrollment{heldFixture(candidate.CourseID, 3, "TR", "10:10 - 11:40")}

	decision := EvaluateAdmission(candidate, held, ClashExactSlot)

	assert.False(t, decision.Admitted)
	assert.Equal(t, ReasonAlreadyEnrolled, decision.Reason)
}

func TestEvaluateAdmissionCreditCapBoundary(t *testing.T) {
	tests := []struct {
		name       string
		current    float64
		candidate  float64
		wantAdmit  bool
		wantReason RejectReason
	}{
		{"landing exactly on the cap admits", 12, 3, true, ""},
		{"one credit over rejects", 12, 4, false, ReasonCreditLimitExceeded},
		{"half-credit lab over rejects", 14, 1.5, false, ReasonCreditLimitExceeded},
		{"well under admits", 6, 3, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := candidateFixture()
			candidate.Credits = tt.candidate

			// Spread the current load over distinct courses on clash-free slots
			var held []HeldEnrollment
			remaining := tt.current
			courseID := int64(100)
			for remaining > 0 {
				chunk := 3.0
				if remaining < chunk {
					chunk = remaining
				}
				held = append(held, heldFixture(courseID, chunk, "F", "13:30 - 15:00"))
				remaining -= chunk
				courseID++
			}

			decision := EvaluateAdmission(candidate, held, ClashExactSlot)

			assert.Equal(t, tt.wantAdmit, decision.Admitted)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

func TestEvaluateAdmissionExactSlotClash(t *testing.T) {
	candidate := candidateFixture()

	t.Run("identical slot strings clash", func(t *testing.T) {
		held := []HeldEnrollment{heldFixture(2, 3, candidate.DaySlot, candidate.TimeSlot)}

		decision := EvaluateAdmission(candidate, held, ClashExactSlot)

		assert.False(t, decision.Admitted)
		assert.Equal(t, ReasonTimeClash, decision.Reason)
	})

	t.Run("overlapping but unequal slots pass under exact policy", func(t *testing.T) {
		// Shares Monday and overlaps 09:00-10:00, but the strings differ
		held := []HeldEnrollment{heldFixture(2, 3, "SM", "09:00 - 10:30")}

		decision := EvaluateAdmission(candidate, held, ClashExactSlot)

		assert.True(t, decision.Admitted)
	})
}

func TestEvaluateAdmissionIntervalOverlapClash(t *testing.T) {
	candidate := candidateFixture()

	t.Run("shared day with overlapping minutes clashes", func(t *testing.T) {
		held := []HeldEnrollment{heldFixture(2, 3, "SM", "09:00 - 10:30")}

		decision := EvaluateAdmission(candidate, held, ClashIntervalOverlap)

		assert.False(t, decision.Admitted)
		assert.Equal(t, ReasonTimeClash, decision.Reason)
	})

	t.Run("touching intervals do not clash", func(t *testing.T) {
		// Candidate ends 10:00, held starts 10:00 on the same days
		held := []HeldEnrollment{heldFixture(2, 3, "MW", "10:00 - 11:30")}

		decision := EvaluateAdmission(candidate, held, ClashIntervalOverlap)

		assert.True(t, decision.Admitted)
	})

	t.Run("overlap on disjoint days passes", func(t *testing.T) {
		held := []HeldEnrollment{heldFixture(2, 3, "TR", candidate.TimeSlot)}

		decision := EvaluateAdmission(candidate, held, ClashIntervalOverlap)

		assert.True(t, decision.Admitted)
	})
}

func TestEvaluateAdmissionNoSeats(t *testing.T) {
	candidate := candidateFixture()
	candidate.Capacity = 25
	candidate.Filled = 25

	decision := EvaluateAdmission(candidate, nil, ClashExactSlot)

	assert.False(t, decision.Admitted)
	assert.Equal(t, ReasonNoSeatsAvailable, decision.Reason)
}

// Rules are checked in a fixed order; a candidate failing several rules must
// report only the highest-precedence one.
func TestEvaluateAdmissionPrecedence(t *testing.T) {
	candidate := candidateFixture()
	candidate.Filled = candidate.Capacity // seats also exhausted

	t.Run("already-enrolled wins over everything", func(t *testing.T) {
		held := []HeldEnrollment{
			heldFixture(candidate.CourseID, 13, candidate.DaySlot, candidate.TimeSlot),
		}

		decision := EvaluateAdmission(candidate, held, ClashExactSlot)

		assert.Equal(t, ReasonAlreadyEnrolled, decision.Reason)
	})

	t.Run("credit cap wins over clash and seats", func(t *testing.T) {
		held := []HeldEnrollment{
			heldFixture(2, 13, candidate.DaySlot, candidate.TimeSlot),
		}

		decision := EvaluateAdmission(candidate, held, ClashExactSlot)

		assert.Equal(t, ReasonCreditLimitExceeded, decision.Reason)
	})

	t.Run("clash wins over seats", func(t *testing.T) {
		held := []HeldEnrollment{
			heldFixture(2, 3, candidate.DaySlot, candidate.TimeSlot),
		}

		decision := EvaluateAdmission(candidate, held, ClashExactSlot)

		assert.Equal(t, ReasonTimeClash, decision.Reason)
	})
}

func TestClashPolicyFromString(t *testing.T) {
	assert.Equal(t, ClashIntervalOverlap, ClashPolicyFromString("overlap"))
	assert.Equal(t, ClashExactSlot, ClashPolicyFromString("exact"))
	assert.Equal(t, ClashExactSlot, ClashPolicyFromString(""))
	assert.Equal(t, ClashExactSlot, ClashPolicyFromString("garbage"))
}

func TestTotalCredits(t *testing.T) {
	held := []HeldEnrollment{
		heldFixture(1, 3, "MW", "08:30 - 10:00"),
		heldFixture(2, 1.5, "F", "13:30 - 16:30"),
	}

	assert.InDelta(t, 4.5, TotalCredits(held), 1e-9)
	assert.Zero(t, TotalCredits(nil))
}
