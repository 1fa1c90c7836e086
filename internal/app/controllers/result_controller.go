package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/app/services"
	"github.com/yigit/advisory/internal/middleware"
	"github.com/yigit/advisory/internal/pkg/helpers"
)

// ResultController records graded attempts
type ResultController struct {
	resultService services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService services.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// RecordResult records one graded attempt
// @Summary Record a result
// @Description Records an attempt. Credits default to the course credits. Open advisor sessions of the student receive a standing_changed notice.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResultRequest true "Result information"
// @Success 201 {object} dto.APIResponse{data=dto.ResultResponse} "Result recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student, course or semester not found"
// @Router /results [post]
func (c *ResultController) RecordResult(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.resultService.RecordResult(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Result recorded successfully"))
}

// ListResults lists every result page by page
// @Summary List results
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Results retrieved successfully"
// @Router /results [get]
func (c *ResultController) ListResults(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	results, err := c.resultService.ListResults(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results, ""))
}
