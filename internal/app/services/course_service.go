package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/app/repositories"
)

// Common course errors
var (
	ErrCourseValidation = errors.New("course validation failed")
)

// CourseService handles catalog course operations
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, departmentRepo *repositories.DepartmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", ErrCourseValidation)
	}

	if course.DepartmentID <= 0 {
		return fmt.Errorf("%w: department ID must be positive", ErrCourseValidation)
	}

	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrCourseValidation)
	}

	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCourseValidation)
	}

	if course.Credits < 0.5 || course.Credits > 4.0 {
		return fmt.Errorf("%w: credits must be between 0.5 and 4.0", ErrCourseValidation)
	}

	return nil
}

// CreateCourse creates a new catalog course
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	// The department must exist before the course can reference it.
	if _, err := s.departmentRepo.GetByID(ctx, course.DepartmentID); err != nil {
		return err
	}

	course.Code = strings.ToUpper(strings.TrimSpace(course.Code))
	return s.courseRepo.Create(ctx, course)
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", ErrCourseValidation)
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves all catalog courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// UpdateCourse updates a course's catalog fields
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse removes a course that has no offerings
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: course ID must be positive", ErrCourseValidation)
	}
	return s.courseRepo.Delete(ctx, id)
}
