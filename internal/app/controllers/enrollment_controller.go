package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/app/models/dto"
	"github.com/kaanbk/registrar/internal/app/repositories"
	"github.com/kaanbk/registrar/internal/app/services"
	"github.com/kaanbk/registrar/internal/middleware"
)

// EnrollmentController handles enrollment and withdrawal endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	userRepo          *repositories.UserRepository
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, userRepo *repositories.UserRepository) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		userRepo:          userRepo,
	}
}

// Enroll runs the admission evaluation for the current student
// @Summary Enroll in an offering
// @Description Applies the admission rules (already-enrolled, credit cap, time clash, seats) in order; the first failing rule is returned. A rejection is a 409 carrying the reason code, not a server error.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Offering to join"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Admitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 409 {object} dto.ErrorResponse "Rejected with reason code"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.userRepo.GetStudentByUserID(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	decision, enrollment, err := c.enrollmentService.Enroll(ctx, student.ID, req.OfferingID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !decision.Admitted {
		ctx.JSON(middleware.RejectStatus(decision.Reason), dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCode(decision.Reason), decision.Detail)))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.EnrollmentResponse{Enrollment: enrollment}))
}

// Withdraw removes the current student's enrollment
// @Summary Withdraw from an enrollment
// @Description Deletes the enrollment and releases its seat. Withdrawing twice is rejected with 404 and leaves the seat count untouched.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse "Withdrawn"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) Withdraw(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.userRepo.GetStudentByUserID(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.enrollmentService.Withdraw(ctx, student.ID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "withdrawn"}))
}

// MySchedule lists the current student's enrollments for a term
// @Summary Current student's schedule
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (defaults to current)"
// @Param term query string false "Term (FALL, SPRING, SUMMER)"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule"
// @Router /students/me/enrollments [get]
func (c *EnrollmentController) MySchedule(ctx *gin.Context) {
	student, err := c.userRepo.GetStudentByUserID(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	year, term := termParams(ctx)
	enrollments, total, err := c.enrollmentService.Schedule(ctx, student.ID, year, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ScheduleResponse{
		Enrollments:  enrollments,
		TotalCredits: total,
		CreditLimit:  models.MaxTermCredits,
	}))
}
