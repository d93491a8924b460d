package routes

import (
	"github.com/gin-gonic/gin"

	"student-showcase-api/controllers"
	"student-showcase-api/middleware"
)

// Controllers bundles the handler sets wired in main.
type Controllers struct {
	Submissions *controllers.SubmissionController
	Students    *controllers.StudentController
	Auth        *controllers.AuthController
}

// SetupRoutes registers the API surface. Admin endpoints sit behind the JWT
// bearer middleware; intake, the public showcase and login stay open.
func SetupRoutes(router *gin.Engine, ctl Controllers, jwtSecret string) {
	api := router.Group("/api")
	{
		// Public routes
		api.POST("/auth/login", ctl.Auth.Login)
		api.GET("/students", ctl.Students.ListStudents)

		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Student Showcase API is running",
			})
		})

		submissions := api.Group("/submissions")
		{
			// Intake is public
			submissions.POST("", ctl.Submissions.CreateSubmission)

			// Moderation requires an admin token
			admin := submissions.Group("")
			admin.Use(middleware.AuthMiddleware(jwtSecret))
			{
				admin.GET("", ctl.Submissions.ListSubmissions)
				admin.GET("/stats", ctl.Submissions.GetSubmissionStats)
				admin.GET("/:id", ctl.Submissions.GetSubmission)
				admin.PATCH("/:id", ctl.Submissions.UpdateSubmission)
				admin.DELETE("/:id", ctl.Submissions.DeleteSubmission)
				admin.POST("/:id/approve", ctl.Submissions.ApproveSubmission)
				admin.POST("/:id/reject", ctl.Submissions.RejectSubmission)
			}
		}
	}
}
