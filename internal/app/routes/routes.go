package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kaanbk/registrar/internal/app/controllers"
	"github.com/kaanbk/registrar/internal/app/models"
	"github.com/kaanbk/registrar/internal/app/models/dto"
	"github.com/kaanbk/registrar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	offeringController *controllers.OfferingController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Course catalog: readable by everyone signed in, writable by instructors
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)

			coursesInstructorProtected := courses.Group("")
			coursesInstructorProtected.Use(authMiddleware.RoleRequired(string(models.RoleInstructor)))
			{
				coursesInstructorProtected.POST("", courseController.CreateCourse)
				coursesInstructorProtected.PUT("/:id", courseController.UpdateCourse)
				coursesInstructorProtected.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		// Term offerings: scheduling is instructor-only, browsing is open
		offerings := authenticated.Group("/offerings")
		{
			offerings.GET("", offeringController.ListOfferings)
			offerings.GET("/catalog", offeringController.GetCatalog)
			offerings.GET("/:id", offeringController.GetOfferingByID)

			offeringsInstructorProtected := offerings.Group("")
			offeringsInstructorProtected.Use(authMiddleware.RoleRequired(string(models.RoleInstructor)))
			{
				offeringsInstructorProtected.POST("", offeringController.CreateOffering)
				offeringsInstructorProtected.DELETE("/:id", offeringController.DeleteOffering)
			}
		}

		// Enrollment: student-only
		enrollments := authenticated.Group("")
		enrollments.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			enrollments.POST("/enrollments", enrollmentController.Enroll)
			enrollments.DELETE("/enrollments/:id", enrollmentController.Withdraw)
			enrollments.GET("/students/me/enrollments", enrollmentController.MySchedule)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
