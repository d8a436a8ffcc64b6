package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/app/models/dto"
	"github.com/kaanbk/registrar/internal/app/repositories"
	"github.com/kaanbk/registrar/internal/app/services"
	"github.com/kaanbk/registrar/internal/middleware"
)

// OfferingController handles course offering endpoints
type OfferingController struct {
	offeringService *services.OfferingService
	userRepo        *repositories.UserRepository
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService *services.OfferingService, userRepo *repositories.UserRepository) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
		userRepo:        userRepo,
	}
}

// GetCatalog returns the schedule choices for a course
// @Summary Slot catalog
// @Description Lists the day tokens, lecture/lab windows and rooms available when scheduling a section of the course
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=services.SlotCatalog} "Catalog"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /offerings/catalog [get]
func (c *OfferingController) GetCatalog(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err != nil || courseID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid courseId parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	catalog, err := c.offeringService.Catalog(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(catalog))
}

// CreateOffering schedules a new section
// @Summary Create an offering
// @Description Schedules a section of a course; the section letter is assigned server-side
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOfferingRequest true "Offering data"
// @Success 201 {object} dto.APIResponse{data=models.CourseOffering} "Offering created"
// @Failure 400 {object} dto.ErrorResponse "Invalid offering data"
// @Failure 409 {object} dto.ErrorResponse "All section letters taken"
// @Router /offerings [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	var req dto.CreateOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offering data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor, err := c.userRepo.GetInstructorByUserID(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	offering := &models.CourseOffering{
		CourseID:     req.CourseID,
		InstructorID: instructor.ID,
		Year:         req.Year,
		Term:         req.Term,
		DaySlot:      req.DaySlot,
		TimeSlot:     req.TimeSlot,
		Room:         req.Room,
		Capacity:     req.Capacity,
	}
	if err := c.offeringService.CreateOffering(ctx, offering); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(offering))
}

// ListOfferings lists a term's offerings
// @Summary List offerings
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year (defaults to current)"
// @Param term query string false "Term (FALL, SPRING, SUMMER)"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseOffering} "Offerings"
// @Router /offerings [get]
func (c *OfferingController) ListOfferings(ctx *gin.Context) {
	year, term := termParams(ctx)

	offerings, err := c.offeringService.ListOfferings(ctx, year, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offerings))
}

// GetOfferingByID retrieves one offering
// @Summary Get offering by ID
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offering ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseOffering} "Offering"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Router /offerings/{id} [get]
func (c *OfferingController) GetOfferingByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	offering, err := c.offeringService.GetOfferingByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offering))
}

// DeleteOffering removes an empty offering
// @Summary Delete an offering
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offering ID"
// @Success 200 {object} dto.APIResponse "Offering deleted"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 409 {object} dto.ErrorResponse "Offering still has enrollments"
// @Router /offerings/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.offeringService.DeleteOffering(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "offering deleted"}))
}

// termParams reads year/term query parameters with sensible defaults:
// the current year, and FALL from August on, SPRING otherwise.
func termParams(ctx *gin.Context) (int, models.Term) {
	now := time.Now()

	year := now.Year()
	if y, err := strconv.Atoi(ctx.Query("year")); err == nil && y >= 2000 {
		year = y
	}

	term := models.TermSpring
	if now.Month() >= time.August {
		term = models.TermFall
	}
	switch models.Term(ctx.Query("term")) {
	case models.TermFall:
		term = models.TermFall
	case models.TermSpring:
		term = models.TermSpring
	case models.TermSummer:
		term = models.TermSummer
	}

	return year, term
}
