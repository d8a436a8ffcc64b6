package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleInstructor RoleType = "INSTRUCTOR"
)

// Term represents a semester term
type Term string

// Term constants
const (
	TermFall   Term = "FALL"
	TermSpring Term = "SPRING"
	TermSummer Term = "SUMMER"
)

// MaxTermCredits is the maximum total course-credit weight a student may carry
// in a single term. Admission rejects any enrollment that would push the
// student's total past this cap; landing exactly on it is allowed.
const MaxTermCredits = 15.0
