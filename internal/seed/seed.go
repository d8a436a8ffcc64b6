package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaanbk/registrar/internal/app/models"
	appRepos "github.com/kaanbk/registrar/internal/app/repositories"
	"github.com/kaanbk/registrar/internal/pkg/apperrors"
	"github.com/kaanbk/registrar/internal/pkg/auth"
)

// CreateDefaultData creates the default faculties, departments and a demo
// instructor account if they don't exist. Errors are collected so one failed
// insert doesn't abandon the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	facultyRepo := appRepos.NewFacultyRepository(dbPool)
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Faculties/Departments)...")
	var finalErr error

	engineeringID := seedFaculty(ctx, facultyRepo, &appModels.Faculty{Name: "Engineering Faculty", Code: "ENG"}, lgr, &finalErr)
	if engineeringID > 0 {
		seedDepartment(ctx, departmentRepo, &appModels.Department{FacultyID: engineeringID, Name: "Computer Engineering", Code: "CENG"}, lgr, &finalErr)
		seedDepartment(ctx, departmentRepo, &appModels.Department{FacultyID: engineeringID, Name: "Electrical Engineering", Code: "EEE"}, lgr, &finalErr)
	}

	scienceID := seedFaculty(ctx, facultyRepo, &appModels.Faculty{Name: "Science Faculty", Code: "SCI"}, lgr, &finalErr)
	if scienceID > 0 {
		seedDepartment(ctx, departmentRepo, &appModels.Department{FacultyID: scienceID, Name: "Mathematics", Code: "MATH"}, lgr, &finalErr)
		seedDepartment(ctx, departmentRepo, &appModels.Department{FacultyID: scienceID, Name: "Physics", Code: "PHYS"}, lgr, &finalErr)
	}

	if engineeringID > 0 {
		seedDemoInstructor(ctx, userRepo, departmentRepo, lgr, &finalErr)
	}

	return finalErr
}

func seedFaculty(ctx context.Context, repo *appRepos.FacultyRepository, faculty *appModels.Faculty, lgr zerolog.Logger, finalErr *error) int64 {
	id, err := repo.CreateFaculty(ctx, faculty)
	if err == nil {
		return id
	}
	if !errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
		lgr.Error().Err(err).Str("code", faculty.Code).Msg("Error creating faculty")
		*finalErr = errors.Join(*finalErr, err)
		return 0
	}

	// Already seeded on a previous start, find the existing row
	faculties, err := repo.GetAllFaculties(ctx)
	if err != nil {
		lgr.Error().Err(err).Str("code", faculty.Code).Msg("Error looking up existing faculty")
		*finalErr = errors.Join(*finalErr, err)
		return 0
	}
	for _, f := range faculties {
		if f.Code == faculty.Code {
			return f.ID
		}
	}
	return 0
}

func seedDepartment(ctx context.Context, repo *appRepos.DepartmentRepository, department *appModels.Department, lgr zerolog.Logger, finalErr *error) {
	err := repo.Create(ctx, department)
	if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
		lgr.Error().Err(err).Str("code", department.Code).Msg("Error creating department")
		*finalErr = errors.Join(*finalErr, err)
	}
}

func seedDemoInstructor(ctx context.Context, userRepo *appRepos.UserRepository, departmentRepo *appRepos.DepartmentRepository, lgr zerolog.Logger, finalErr *error) {
	const demoEmail = "instructor@registrar.app"

	exists, err := userRepo.EmailExists(ctx, demoEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking demo instructor account")
		*finalErr = errors.Join(*finalErr, err)
		return
	}
	if exists {
		return
	}

	departments, err := departmentRepo.GetAll(ctx)
	if err != nil || len(departments) == 0 {
		lgr.Error().Err(err).Msg("No departments available for demo instructor")
		*finalErr = errors.Join(*finalErr, err)
		return
	}

	hashed, err := auth.HashPassword("changeme123")
	if err != nil {
		*finalErr = errors.Join(*finalErr, err)
		return
	}

	user := &appModels.User{
		Email:     demoEmail,
		Password:  hashed,
		FirstName: "Demo",
		LastName:  "Instructor",
		RoleType:  appModels.RoleInstructor,
		IsActive:  true,
	}
	userID, err := userRepo.CreateUser(ctx, user)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo instructor user")
		*finalErr = errors.Join(*finalErr, err)
		return
	}

	instructor := &appModels.Instructor{
		UserID:       userID,
		DepartmentID: departments[0].ID,
		Title:        "Lecturer",
	}
	if err := userRepo.CreateInstructor(ctx, instructor); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo instructor record")
		*finalErr = errors.Join(*finalErr, err)
		return
	}

	lgr.Info().Str("email", demoEmail).Msg("Demo instructor account created")
}
