package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/app/repositories"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
	"github.com/kaanbk/registrar/internal/pkg/schedule"
)

// Common offering errors
var (
	ErrOfferingValidation = errors.New("offering validation failed")
)

// SlotCatalog bundles the fixed choices shown when scheduling a section.
type SlotCatalog struct {
	DaySlots  []string `json:"daySlots"`
	TimeSlots []string `json:"timeSlots"`
	LabSlots  []string `json:"labSlots,omitempty"`
	Rooms     []string `json:"rooms"`
}

// OfferingService handles course offering scheduling
type OfferingService struct {
	offeringRepo *repositories.OfferingRepository
	courseRepo   *repositories.CourseRepository
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(offeringRepo *repositories.OfferingRepository, courseRepo *repositories.CourseRepository) *OfferingService {
	return &OfferingService{
		offeringRepo: offeringRepo,
		courseRepo:   courseRepo,
	}
}

// Catalog returns the schedule choices for a course. Lab windows are included
// only for courses with a lab component, sized by the course's credit weight.
func (s *OfferingService) Catalog(ctx context.Context, courseID int64) (*SlotCatalog, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	catalog := &SlotCatalog{
		DaySlots:  schedule.DaySlotTokens(),
		TimeSlots: schedule.ClassTimeSlots(),
		Rooms:     schedule.RoomNumbers(),
	}
	if course.HasLab {
		catalog.LabSlots = schedule.LabTimeSlots(course.Credits)
	}

	return catalog, nil
}

// CreateOffering validates a new section against the slot catalogs, assigns
// the next free section letter for the course and term, and persists it.
func (s *OfferingService) CreateOffering(ctx context.Context, offering *models.CourseOffering) error {
	course, err := s.courseRepo.GetByID(ctx, offering.CourseID)
	if err != nil {
		return err
	}

	if err := s.validateOffering(offering, course); err != nil {
		return err
	}

	taken, err := s.offeringRepo.ListSections(ctx, offering.CourseID, offering.Year, offering.Term)
	if err != nil {
		return fmt.Errorf("error finding free section: %w", err)
	}
	section, err := nextSectionLabel(taken)
	if err != nil {
		return err
	}
	offering.Section = section

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return err
	}

	offering.Course = course
	return nil
}

// GetOfferingByID retrieves an offering with its course
func (s *OfferingService) GetOfferingByID(ctx context.Context, id int64) (*models.CourseOffering, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: offering ID must be positive", ErrOfferingValidation)
	}
	return s.offeringRepo.GetByID(ctx, id)
}

// ListOfferings retrieves all offerings for a year/term
func (s *OfferingService) ListOfferings(ctx context.Context, year int, term models.Term) ([]*models.CourseOffering, error) {
	return s.offeringRepo.ListByTerm(ctx, year, term)
}

// DeleteOffering removes an empty offering
func (s *OfferingService) DeleteOffering(ctx context.Context, id int64) error {
	return s.offeringRepo.Delete(ctx, id)
}

// validateOffering checks a new section's fields against the fixed catalogs.
func (s *OfferingService) validateOffering(offering *models.CourseOffering, course *models.Course) error {
	if offering.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrOfferingValidation)
	}
	if offering.Year < 2000 {
		return fmt.Errorf("%w: invalid year", ErrOfferingValidation)
	}
	switch offering.Term {
	case models.TermFall, models.TermSpring, models.TermSummer:
	default:
		return fmt.Errorf("%w: unknown term %q", ErrOfferingValidation, offering.Term)
	}

	if len(schedule.DaysForSlot(offering.DaySlot)) == 0 {
		return fmt.Errorf("%w: unknown day-slot token %q", ErrOfferingValidation, offering.DaySlot)
	}

	if !validTimeSlot(offering.TimeSlot, course) {
		return fmt.Errorf("%w: time slot %q is not in the catalog", ErrOfferingValidation, offering.TimeSlot)
	}

	if !contains(schedule.RoomNumbers(), offering.Room) {
		return fmt.Errorf("%w: unknown room %q", ErrOfferingValidation, offering.Room)
	}

	return nil
}

func validTimeSlot(slot string, course *models.Course) bool {
	if contains(schedule.ClassTimeSlots(), slot) {
		return true
	}
	if course.HasLab && contains(schedule.LabTimeSlots(course.Credits), slot) {
		return true
	}
	return false
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// nextSectionLabel returns the first unused section letter A-Z. Assignment is
// deterministic and collision-checked against the sections already taken for
// the course in that term.
func nextSectionLabel(taken []string) (string, error) {
	used := make(map[string]bool, len(taken))
	for _, t := range taken {
		used[t] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		label := string(c)
		if !used[label] {
			return label, nil
		}
	}
	return "", apperrors.ErrSectionsExhausted
}
