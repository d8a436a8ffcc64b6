package dto

import "github.com/kaanbk/registrar/internal/app/models"

// EnrollRequest asks to enroll the current student into an offering
type EnrollRequest struct {
	OfferingID int64 `json:"offeringId" binding:"required,gt=0"`
}

// EnrollmentResponse reports a successful admission
type EnrollmentResponse struct {
	Enrollment *models.Enrollment `json:"enrollment"`
}

// ScheduleResponse is a student's term schedule with its credit total
type ScheduleResponse struct {
	Enrollments  []*models.Enrollment `json:"enrollments"`
	TotalCredits float64              `json:"totalCredits"`
	CreditLimit  float64              `json:"creditLimit"`
}
