package models

// Course represents a catalog entry offered by a department. Credits carries
// the course's credit weight used by the admission credit-cap rule; the
// evaluator treats courses as immutable.
type Course struct {
	ID           int64   `json:"id" db:"id"`
	DepartmentID int64   `json:"departmentId" db:"department_id"`
	Code         string  `json:"code" db:"code"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"` // Nullable
	Credits      float64 `json:"credits" db:"credits"`
	HasLab       bool    `json:"hasLab" db:"has_lab"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
