package dto

// CreateCourseRequest adds a course to the catalog
type CreateCourseRequest struct {
	DepartmentID int64   `json:"departmentId" binding:"required,gt=0"`
	Code         string  `json:"code" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description,omitempty"`
	Credits      float64 `json:"credits" binding:"required,gt=0"`
	HasLab       bool    `json:"hasLab"`
}

// UpdateCourseRequest edits a course's catalog fields
type UpdateCourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Credits     float64 `json:"credits" binding:"required,gt=0"`
	HasLab      bool    `json:"hasLab"`
}
