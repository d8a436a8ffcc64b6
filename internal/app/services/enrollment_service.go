package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
	"github.com/kaanbk/registrar/internal/pkg/logger"
	"github.com/kaanbk/registrar/internal/pkg/schedule"
)

// enrollmentStore is the slice of the enrollment repository the service needs.
// ClaimSeatAndEnroll and WithdrawReleasingSeat must pair the row change with
// the offering's filled counter atomically; the claim returns
// apperrors.ErrSeatsExhausted when the section is full.
type enrollmentStore interface {
	ListByStudentTerm(ctx context.Context, studentID int64, year int, term models.Term) ([]*models.Enrollment, error)
	ClaimSeatAndEnroll(ctx context.Context, enrollment *models.Enrollment) error
	WithdrawReleasingSeat(ctx context.Context, enrollmentID, studentID int64) error
}

// offeringGetter resolves candidate offerings with their course loaded.
type offeringGetter interface {
	GetByID(ctx context.Context, id int64) (*models.CourseOffering, error)
}

// EnrollmentService runs the admission rules and applies their side effects
type EnrollmentService struct {
	enrollments enrollmentStore
	offerings   offeringGetter
	clashPolicy ClashPolicy
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollments enrollmentStore, offerings offeringGetter, clashPolicy ClashPolicy) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		offerings:   offerings,
		clashPolicy: clashPolicy,
	}
}

// ClashPolicyFromString maps a config value onto a ClashPolicy.
// Unknown values fall back to the exact-match policy.
func ClashPolicyFromString(value string) ClashPolicy {
	if value == "overlap" {
		return ClashIntervalOverlap
	}
	return ClashExactSlot
}

// Enroll evaluates a student's admission into an offering and, on ADMIT,
// claims a seat and records the enrollment in one transaction. A REJECT is a
// normal outcome carried in the Decision; the error return is reserved for
// infrastructure failures, which leave no side effects behind.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, offeringID int64) (Decision, *models.Enrollment, error) {
	offering, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		return Decision{}, nil, err
	}
	if offering.Course == nil {
		return Decision{}, nil, fmt.Errorf("offering %d loaded without course", offering.ID)
	}

	// The overlap policy needs a parseable candidate interval up front.
	if s.clashPolicy == ClashIntervalOverlap {
		if _, ok := schedule.ParseTimeSlot(offering.TimeSlot); !ok {
			return Decision{}, nil, fmt.Errorf("%w: offering %d has time slot %q",
				apperrors.ErrMalformedTimeSlot, offering.ID, offering.TimeSlot)
		}
	}

	held, err := s.heldEnrollments(ctx, studentID, offering.Year, offering.Term)
	if err != nil {
		return Decision{}, nil, err
	}

	candidate := AdmissionCandidate{
		OfferingID: offering.ID,
		CourseID:   offering.CourseID,
		Credits:    offering.Course.Credits,
		Capacity:   offering.Capacity,
		Filled:     offering.Filled,
		DaySlot:    offering.DaySlot,
		TimeSlot:   offering.TimeSlot,
	}

	decision := EvaluateAdmission(candidate, held, s.clashPolicy)
	if !decision.Admitted {
		logger.Debug().
			Int64("studentID", studentID).
			Int64("offeringID", offeringID).
			Str("reason", string(decision.Reason)).
			Msg("Admission rejected")
		return decision, nil, nil
	}

	enrollment := &models.Enrollment{
		StudentID:  studentID,
		OfferingID: offering.ID,
		Grade:      0,
	}
	if err := s.enrollments.ClaimSeatAndEnroll(ctx, enrollment); err != nil {
		// Another admission may have taken the last seat between the
		// evaluation read and the conditional claim.
		if errors.Is(err, apperrors.ErrSeatsExhausted) {
			return Reject(ReasonNoSeatsAvailable, "no seats available in this section"), nil, nil
		}
		return Decision{}, nil, err
	}

	logger.Info().
		Int64("studentID", studentID).
		Int64("offeringID", offeringID).
		Int64("enrollmentID", enrollment.ID).
		Msg("Student admitted")

	return decision, enrollment, nil
}

// Withdraw removes an enrollment and releases its seat. Withdrawing an
// enrollment that no longer exists returns apperrors.ErrEnrollmentNotFound and
// changes nothing, so a repeated withdrawal cannot drive the counter negative.
func (s *EnrollmentService) Withdraw(ctx context.Context, studentID, enrollmentID int64) error {
	if err := s.enrollments.WithdrawReleasingSeat(ctx, enrollmentID, studentID); err != nil {
		return err
	}

	logger.Info().
		Int64("studentID", studentID).
		Int64("enrollmentID", enrollmentID).
		Msg("Student withdrawn")
	return nil
}

// Schedule returns a student's enrollments for a term with their credit total.
func (s *EnrollmentService) Schedule(ctx context.Context, studentID int64, year int, term models.Term) ([]*models.Enrollment, float64, error) {
	enrollments, err := s.enrollments.ListByStudentTerm(ctx, studentID, year, term)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, e := range enrollments {
		if e.Offering != nil && e.Offering.Course != nil {
			total += e.Offering.Course.Credits
		}
	}

	return enrollments, total, nil
}

// heldEnrollments flattens the student's current enrollments for evaluation.
func (s *EnrollmentService) heldEnrollments(ctx context.Context, studentID int64, year int, term models.Term) ([]HeldEnrollment, error) {
	enrollments, err := s.enrollments.ListByStudentTerm(ctx, studentID, year, term)
	if err != nil {
		return nil, err
	}

	held := make([]HeldEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Offering == nil || e.Offering.Course == nil {
			return nil, fmt.Errorf("enrollment %d loaded without offering join", e.ID)
		}
		held = append(held, HeldEnrollment{
			OfferingID: e.OfferingID,
			CourseID:   e.Offering.CourseID,
			Credits:    e.Offering.Course.Credits,
			DaySlot:    e.Offering.DaySlot,
			TimeSlot:   e.Offering.TimeSlot,
		})
	}

	return held, nil
}
