package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/app/services"
	"github.com/yigit/advisory/internal/middleware"
)

// StandingController serves dashboards, eligibility checks and advisor questions
type StandingController struct {
	standingService services.StandingService
	advisorService  services.AdvisorService
	logger          zerolog.Logger
}

// NewStandingController creates a new StandingController
func NewStandingController(standingService services.StandingService, advisorService services.AdvisorService, logger zerolog.Logger) *StandingController {
	return &StandingController{
		standingService: standingService,
		advisorService:  advisorService,
		logger:          logger,
	}
}

// Dashboard returns a student's standing
// @Summary Student dashboard
// @Description Profile, cumulative and per-semester performance, and the status of every catalog course.
// @Tags standing
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/dashboard [get]
// @Router /adviser/students/{id} [get]
func (c *StandingController) Dashboard(ctx *gin.Context) {
	id, ok := requireID(ctx, "id")
	if !ok {
		return
	}

	dashboard, err := c.standingService.Dashboard(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard, ""))
}

// Eligibility classifies one course for a student
// @Summary Course eligibility
// @Tags standing
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.EligibilityResponse} "Eligibility resolved"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /students/{id}/eligibility/{courseId} [get]
func (c *StandingController) Eligibility(ctx *gin.Context) {
	studentID, ok := requireID(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := requireID(ctx, "courseId")
	if !ok {
		return
	}

	verdict, err := c.standingService.Eligibility(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(verdict, ""))
}

// Ask answers a free-text question
// @Summary Ask the advisor
// @Description Answers eligibility questions ("Why can't I take CSC499?") and improvement questions ("How can I improve my GPA?").
// @Tags advisor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.APIResponse{data=dto.AskResponse} "Answer"
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/ask [post]
func (c *StandingController) Ask(ctx *gin.Context) {
	id, ok := requireID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AskRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	reply, err := c.advisorService.Answer(ctx.Request.Context(), id, req.Question)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AskResponse{
		Response:   reply.Text,
		Intent:     string(reply.Intent),
		CourseCode: reply.CourseCode,
	}, ""))
}
