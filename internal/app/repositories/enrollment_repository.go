package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/db"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
)

// EnrollmentRepository handles database operations for enrollments. The two
// mutating operations pair the enrollment row change with the offering's
// filled counter inside one transaction so filled always equals the number of
// enrollment rows.
type EnrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// ListByStudentTerm retrieves a student's enrollments for a term joined to
// their offerings and courses.
func (r *EnrollmentRepository) ListByStudentTerm(ctx context.Context, studentID int64, year int, term models.Term) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.offering_id, e.grade, e.enrolled_at,
		       o.id, o.course_id, o.instructor_id, o.year, o.term, o.section,
		       o.day_slot, o.time_slot, o.room, o.capacity, o.filled,
		       c.id, c.department_id, c.code, c.name, c.credits, c.has_lab
		FROM enrollments e
		JOIN course_offerings o ON o.id = e.offering_id
		JOIN courses c ON c.id = o.course_id
		WHERE e.student_id = $1 AND o.year = $2 AND o.term = $3
		ORDER BY e.enrolled_at
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID, year, term)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var offering models.CourseOffering
		var course models.Course
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.OfferingID,
			&enrollment.Grade,
			&enrollment.EnrolledAt,
			&offering.ID,
			&offering.CourseID,
			&offering.InstructorID,
			&offering.Year,
			&offering.Term,
			&offering.Section,
			&offering.DaySlot,
			&offering.TimeSlot,
			&offering.Room,
			&offering.Capacity,
			&offering.Filled,
			&course.ID,
			&course.DepartmentID,
			&course.Code,
			&course.Name,
			&course.Credits,
			&course.HasLab,
		); err != nil {
			return nil, err
		}
		offering.Course = &course
		enrollment.Offering = &offering
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByID retrieves one enrollment
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, student_id, offering_id, grade, enrolled_at
		FROM enrollments
		WHERE id = $1
	`

	var enrollment models.Enrollment
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.OfferingID,
		&enrollment.Grade,
		&enrollment.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// ClaimSeatAndEnroll claims one seat on the offering and inserts the enrollment
// row as a single transaction. The seat claim is a conditional update checked
// by rows-affected, so two concurrent admissions cannot both pass a
// last-seat check: the loser gets apperrors.ErrSeatsExhausted and nothing is
// written for it.
func (r *EnrollmentRepository) ClaimSeatAndEnroll(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE course_offerings
			SET filled = filled + 1
			WHERE id = $1 AND filled < capacity`,
			enrollment.OfferingID)
		if err != nil {
			return fmt.Errorf("error claiming seat: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrSeatsExhausted
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO enrollments (student_id, offering_id, grade)
			VALUES ($1, $2, $3)
			RETURNING id, enrolled_at`,
			enrollment.StudentID, enrollment.OfferingID, enrollment.Grade,
		).Scan(&enrollment.ID, &enrollment.EnrolledAt)
		if err != nil {
			return fmt.Errorf("error inserting enrollment: %w", err)
		}

		return nil
	})
}

// WithdrawReleasingSeat removes the enrollment row and gives its seat back in
// one transaction. The decrement is floored at zero and a repeated withdrawal
// finds no row to delete, so the counter can never go negative or drift.
// Returns apperrors.ErrEnrollmentNotFound when the student holds no such
// enrollment (already withdrawn or never enrolled).
func (r *EnrollmentRepository) WithdrawReleasingSeat(ctx context.Context, enrollmentID, studentID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var offeringID int64
		err := tx.QueryRow(ctx, `
			DELETE FROM enrollments
			WHERE id = $1 AND student_id = $2
			RETURNING offering_id`,
			enrollmentID, studentID,
		).Scan(&offeringID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEnrollmentNotFound
			}
			return fmt.Errorf("error deleting enrollment: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE course_offerings
			SET filled = GREATEST(filled - 1, 0)
			WHERE id = $1`,
			offeringID)
		if err != nil {
			return fmt.Errorf("error releasing seat: %w", err)
		}

		return nil
	})
}

// UpdateGrade records a grade-point for an enrollment
func (r *EnrollmentRepository) UpdateGrade(ctx context.Context, enrollmentID int64, grade float64) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE enrollments SET grade = $2 WHERE id = $1`,
		enrollmentID, grade)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
