package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/services"
	"github.com/okandemir/schoolhub/internal/middleware"
)

// GradeController handles grade record operations
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// SaveGrade creates or overwrites a grade record
// @Summary Save a grade record
// @Description Upserts the grade record keyed by (student, subject, term, academic year); total marks and letter grade are recomputed
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveGradeRequest true "Grade components"
// @Success 200 {object} dto.APIResponse{data=models.GradeRecord} "Grade saved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /grades [post]
func (c *GradeController) SaveGrade(ctx *gin.Context) {
	var req dto.SaveGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.SaveGrade(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade, "Grade saved"))
}

// GetGradeByID retrieves one grade record
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade, ""))
}

// ListGrades retrieves grade records matching the filter
func (c *GradeController) ListGrades(ctx *gin.Context) {
	var filter dto.GradeListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grades, err := c.gradeService.ListGrades(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grades, ""))
}
