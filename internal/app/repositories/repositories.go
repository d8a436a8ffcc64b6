package repositories

import (
	"github.com/kaanbk/registrar/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
	TokenRepository      *TokenRepository
	CourseRepository     *CourseRepository
	OfferingRepository   *OfferingRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	pool := database.Pool
	return &Repositories{
		UserRepository:       NewUserRepository(pool),
		FacultyRepository:    NewFacultyRepository(pool),
		DepartmentRepository: NewDepartmentRepository(pool),
		TokenRepository:      NewTokenRepository(pool),
		CourseRepository:     NewCourseRepository(pool),
		OfferingRepository:   NewOfferingRepository(pool),
		EnrollmentRepository: NewEnrollmentRepository(database),
	}
}
