package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/advisory/internal/app/controllers"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/middleware"
	"github.com/yigit/advisory/internal/pkg/websocket"
)

// HealthCheck reports whether a backing dependency is reachable
type HealthCheck func(ctx context.Context) error

// Handlers groups everything SetupRouter mounts. WebSocket and Health may be nil.
type Handlers struct {
	Auth      *controllers.AuthController
	Students  *controllers.StudentController
	Courses   *controllers.CourseController
	Results   *controllers.ResultController
	Standing  *controllers.StandingController
	WebSocket *websocket.Handler
	Health    HealthCheck
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	staffOnly := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleAdviser)
	ownRecord := authMiddleware.StudentScope("id")

	students := authenticated.Group("/students")
	{
		students.POST("", adminOnly, h.Students.CreateStudent)
		students.GET("", staffOnly, h.Students.ListStudents)

		// A student token may only address its own id below this point
		scoped := students.Group("/:id", ownRecord)
		{
			scoped.GET("", h.Students.GetStudent)
			scoped.GET("/results", h.Students.ListResults)
			scoped.GET("/dashboard", h.Standing.Dashboard)
			scoped.GET("/eligibility/:courseId", h.Standing.Eligibility)
			scoped.POST("/ask", h.Standing.Ask)
			if h.WebSocket != nil {
				scoped.GET("/advisor/ws", h.WebSocket.HandleConnection)
			}
		}
	}

	adviser := authenticated.Group("/adviser", staffOnly)
	{
		adviser.GET("/students/:id", h.Standing.Dashboard)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", h.Courses.ListCourses)
		courses.GET("/:id", h.Courses.GetCourse)
		courses.GET("/:id/prerequisites", h.Courses.ListPrerequisites)
		courses.POST("", adminOnly, h.Courses.CreateCourse)
		courses.POST("/:id/prerequisites", adminOnly, h.Courses.AddPrerequisite)
	}

	semesters := authenticated.Group("/semesters")
	{
		semesters.GET("", h.Courses.ListSemesters)
		semesters.POST("", adminOnly, h.Courses.CreateSemester)
	}

	results := authenticated.Group("/results")
	{
		results.POST("", adminOnly, h.Results.RecordResult)
		results.GET("", staffOnly, h.Results.ListResults)
	}

	// Health check endpoint (public)
	v1.GET("/health", healthHandler(h.Health))
	router.GET("/health", healthHandler(h.Health))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func healthHandler(check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, dto.NewFailureResponse(
					dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Record store unavailable")))
				return
			}
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	}
}
