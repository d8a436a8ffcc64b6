package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64  `json:"id" db:"id"`
	UserID       int64  `json:"userId" db:"user_id"`
	Identifier   string `json:"identifier" db:"identifier"` // student number
	DepartmentID int64  `json:"departmentId" db:"department_id"`

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}
