package dto

import "github.com/kaanbk/registrar/internal/app/models"

// CreateOfferingRequest schedules a new section of a course. The section
// letter is assigned by the server; day/time/room must come from the catalogs.
type CreateOfferingRequest struct {
	CourseID int64       `json:"courseId" binding:"required,gt=0"`
	Year     int         `json:"year" binding:"required,gte=2000"`
	Term     models.Term `json:"term" binding:"required,oneof=FALL SPRING SUMMER"`
	DaySlot  string      `json:"daySlot" binding:"required"`
	TimeSlot string      `json:"timeSlot" binding:"required"`
	Room     string      `json:"room" binding:"required"`
	Capacity int         `json:"capacity" binding:"required,gte=1"`
}
