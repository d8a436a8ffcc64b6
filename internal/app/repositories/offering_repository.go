package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
)

// OfferingRepository handles database operations for course offerings
type OfferingRepository struct {
	db *pgxpool.Pool
}

// NewOfferingRepository creates a new offering repository
func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{
		db: db,
	}
}

// Create inserts a new offering. The filled count always starts at zero.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.CourseOffering) error {
	query := `
		INSERT INTO course_offerings
			(course_id, instructor_id, year, term, section, day_slot, time_slot, room, capacity, filled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		offering.CourseID,
		offering.InstructorID,
		offering.Year,
		offering.Term,
		offering.Section,
		offering.DaySlot,
		offering.TimeSlot,
		offering.Room,
		offering.Capacity,
	).Scan(&offering.ID)
	if err != nil {
		return fmt.Errorf("error creating offering: %w", err)
	}
	offering.Filled = 0

	return nil
}

// GetByID retrieves an offering joined to its course
func (r *OfferingRepository) GetByID(ctx context.Context, id int64) (*models.CourseOffering, error) {
	query := `
		SELECT o.id, o.course_id, o.instructor_id, o.year, o.term, o.section,
		       o.day_slot, o.time_slot, o.room, o.capacity, o.filled,
		       c.id, c.department_id, c.code, c.name, c.credits, c.has_lab
		FROM course_offerings o
		JOIN courses c ON c.id = o.course_id
		WHERE o.id = $1
	`

	var offering models.CourseOffering
	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
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
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error retrieving offering: %w", err)
	}
	offering.Course = &course

	return &offering, nil
}

// ListByTerm retrieves all offerings for a year/term joined to their courses
func (r *OfferingRepository) ListByTerm(ctx context.Context, year int, term models.Term) ([]*models.CourseOffering, error) {
	query := `
		SELECT o.id, o.course_id, o.instructor_id, o.year, o.term, o.section,
		       o.day_slot, o.time_slot, o.room, o.capacity, o.filled,
		       c.id, c.department_id, c.code, c.name, c.credits, c.has_lab
		FROM course_offerings o
		JOIN courses c ON c.id = o.course_id
		WHERE o.year = $1 AND o.term = $2
		ORDER BY c.code, o.section
	`

	rows, err := r.db.Query(ctx, query, year, term)
	if err != nil {
		return nil, fmt.Errorf("error listing offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*models.CourseOffering
	for rows.Next() {
		var offering models.CourseOffering
		var course models.Course
		if err := rows.Scan(
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
		offerings = append(offerings, &offering)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}

// ListSections returns the section labels already taken for a course in a term,
// used by the deterministic section sequencer.
func (r *OfferingRepository) ListSections(ctx context.Context, courseID int64, year int, term models.Term) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT section FROM course_offerings
		WHERE course_id = $1 AND year = $2 AND term = $3`,
		courseID, year, term)
	if err != nil {
		return nil, fmt.Errorf("error listing sections: %w", err)
	}
	defer rows.Close()

	var sections []string
	for rows.Next() {
		var section string
		if err := rows.Scan(&section); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// Delete removes an offering that has no enrollments
func (r *OfferingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM course_offerings
		WHERE id = $1 AND filled = 0`,
		id)
	if err != nil {
		return fmt.Errorf("error deleting offering: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or still holding enrollments.
		var exists bool
		if checkErr := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM course_offerings WHERE id = $1)`, id).Scan(&exists); checkErr == nil && exists {
			return apperrors.ErrConflict
		}
		return apperrors.ErrOfferingNotFound
	}
	return nil
}
