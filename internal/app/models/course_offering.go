package models

// CourseOffering represents a scheduled section of a course in a given year and
// term. DaySlot is a day-pair token ("MW", "ST"), TimeSlot a "HH:MM - HH:MM"
// range, both drawn from the schedule catalogs at creation time.
//
// Filled tracks the live number of active enrollments and must never exceed
// Capacity. Only the admission and withdrawal transactions may change it.
type CourseOffering struct {
	ID           int64  `json:"id" db:"id"`
	CourseID     int64  `json:"courseId" db:"course_id"`
	InstructorID int64  `json:"instructorId" db:"instructor_id"`
	Year         int    `json:"year" db:"year"`
	Term         Term   `json:"term" db:"term"`
	Section      string `json:"section" db:"section"`
	DaySlot      string `json:"daySlot" db:"day_slot"`
	TimeSlot     string `json:"timeSlot" db:"time_slot"`
	Room         string `json:"room" db:"room"`
	Capacity     int    `json:"capacity" db:"capacity"`
	Filled       int    `json:"filled" db:"filled"`

	// Relations (populated when needed)
	Course     *Course     `json:"course,omitempty"`
	Instructor *Instructor `json:"instructor,omitempty"`
}

// SeatsLeft returns the number of unclaimed seats.
func (o *CourseOffering) SeatsLeft() int {
	left := o.Capacity - o.Filled
	if left < 0 {
		return 0
	}
	return left
}
