package models

import "time"

// Enrollment links a student to a course offering for a term. Rows are created
// only by a successful admission and removed only by withdrawal; both paths
// adjust the offering's filled count in the same transaction.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	OfferingID int64     `json:"offeringId" db:"offering_id"`
	Grade      float64   `json:"grade" db:"grade"` // grade-point, 0 until graded
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	// Relations (populated when needed)
	Offering *CourseOffering `json:"offering,omitempty"`
}
