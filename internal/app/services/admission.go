package services

import (
	"fmt"

	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/pkg/schedule"
)

// RejectReason identifies why an admission request was refused. These are
// expected business outcomes carried in the Decision value, never Go errors.
type RejectReason string

const (
	ReasonAlreadyEnrolled     RejectReason = "ALREADY_ENROLLED"
	ReasonCreditLimitExceeded RejectReason = "CREDIT_LIMIT_EXCEEDED"
	ReasonTimeClash           RejectReason = "TIME_CLASH"
	ReasonNoSeatsAvailable    RejectReason = "NO_SEATS_AVAILABLE"
)

// Decision is the tagged result of an admission evaluation: either an ADMIT or
// a single REJECT carrying the first failing rule in precedence order.
type Decision struct {
	Admitted bool         `json:"admitted"`
	Reason   RejectReason `json:"reason,omitempty"`
	Detail   string       `json:"detail,omitempty"`
}

// Admit is the positive decision.
func Admit() Decision {
	return Decision{Admitted: true}
}

// Reject builds a negative decision with a reason code and human-readable detail.
func Reject(reason RejectReason, detail string) Decision {
	return Decision{Admitted: false, Reason: reason, Detail: detail}
}

// ClashPolicy selects how the time-clash rule compares the candidate against
// held enrollments.
type ClashPolicy int

const (
	// ClashExactSlot flags a clash only when day-slot and time-slot strings
	// match a held offering exactly. This mirrors the portal's historical
	// behavior and is the default; it misses overlapping-but-unequal slots.
	ClashExactSlot ClashPolicy = iota
	// ClashIntervalOverlap flags a clash whenever the candidate shares a
	// weekday with a held offering and their minute intervals overlap.
	ClashIntervalOverlap
)

// AdmissionCandidate is the offering a student asks to join, flattened to the
// fields the rules need.
type AdmissionCandidate struct {
	OfferingID int64
	CourseID   int64
	Credits    float64
	Capacity   int
	Filled     int
	DaySlot    string
	TimeSlot   string
}

// HeldEnrollment is one of the student's current (offering, course-credit)
// pairs for the term.
type HeldEnrollment struct {
	OfferingID int64
	CourseID   int64
	Credits    float64
	DaySlot    string
	TimeSlot   string
}

// TotalCredits sums the credit weight of a student's held enrollments.
func TotalCredits(held []HeldEnrollment) float64 {
	var total float64
	for _, h := range held {
		total += h.Credits
	}
	return total
}

// EvaluateAdmission applies the admission rules in fixed precedence order and
// returns the first failure, or an ADMIT when every rule passes:
//
//  1. already enrolled in the same course (any section)
//  2. credit cap: current + candidate must not exceed MaxTermCredits
//     (landing exactly on the cap is allowed)
//  3. time clash against any held offering, per the configured policy
//  4. seat availability: filled must be below capacity
//
// The function is pure; seat claiming happens afterwards as an atomic
// conditional update so a concurrent admission cannot oversubscribe a section.
func EvaluateAdmission(candidate AdmissionCandidate, held []HeldEnrollment, policy ClashPolicy) Decision {
	for _, h := range held {
		if h.CourseID == candidate.CourseID {
			return Reject(ReasonAlreadyEnrolled, "you are already enrolled in a section of this course")
		}
	}

	current := TotalCredits(held)
	if current+candidate.Credits > models.MaxTermCredits {
		return Reject(ReasonCreditLimitExceeded, fmt.Sprintf(
			"enrolling would exceed the %g-credit limit: you carry %g credits and this course adds %g",
			models.MaxTermCredits, current, candidate.Credits))
	}

	for _, h := range held {
		if clashes(candidate, h, policy) {
			return Reject(ReasonTimeClash, fmt.Sprintf(
				"schedule conflict with an enrolled section meeting %s %s", h.DaySlot, h.TimeSlot))
		}
	}

	if candidate.Filled >= candidate.Capacity {
		return Reject(ReasonNoSeatsAvailable, "no seats available in this section")
	}

	return Admit()
}

func clashes(candidate AdmissionCandidate, held HeldEnrollment, policy ClashPolicy) bool {
	switch policy {
	case ClashIntervalOverlap:
		return schedule.Clash(candidate.DaySlot, candidate.TimeSlot, held.DaySlot, held.TimeSlot)
	default:
		return candidate.DaySlot == held.DaySlot && candidate.TimeSlot == held.TimeSlot
	}
}
