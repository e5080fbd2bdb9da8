package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/controllers"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	progressController *controllers.ProgressController,
	monitorController *controllers.MonitorController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", healthController.Health)

	api := router.Group("/api")

	// --- Public user routes ---
	users := api.Group("/users")
	{
		users.POST("/register/", authController.Register)
		users.POST("/login/", authController.Login)
		users.GET("/me/", authMiddleware.JWTAuth(), authController.Me)
	}

	// The catalog is readable anonymously; a valid token adds the caller's status
	api.GET("/courses/", authMiddleware.OptionalJWTAuth(), courseController.ListCourses)

	// --- Authenticated routes ---
	courses := api.Group("/courses")
	courses.Use(authMiddleware.JWTAuth())
	{
		courses.GET("/my-courses/", courseController.ListMyCourses)
		courses.GET("/monitor/dashboard/", monitorController.Dashboard)
		courses.GET("/:id/full/", courseController.GetCourseDetail)

		courses.POST("/:id/enroll/", enrollmentController.Enroll)
		courses.POST("/enrollment/:id/manage/", enrollmentController.Manage)
		courses.POST("/lessons/:id/complete/", progressController.CompleteLesson)

		// Ownership is checked by the service; the role gate only stops students early
		courses.POST("/", authMiddleware.RoleRequired(models.RoleInstructor, models.RoleAdmin), courseController.CreateCourse)
		courses.DELETE("/:id/", courseController.DeleteCourse)
		courses.POST("/:id/lessons/", courseController.AddLesson)
		courses.POST("/:id/thumbnail/", courseController.UploadThumbnail)
	}
}
