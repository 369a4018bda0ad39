package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/services"
	"github.com/okandemir/schoolhub/internal/middleware"
)

// ReportController handles student report snapshots
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GenerateReport computes and persists a fresh report snapshot
// @Summary Generate a student report
// @Description Computes GPA, attendance statistics and financial standing for one student/term/year and upserts the snapshot in a single transaction
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateReportRequest true "Report key"
// @Success 200 {object} dto.APIResponse{data=models.StudentReport} "Report generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /reports/generate [post]
func (c *ReportController) GenerateReport(ctx *gin.Context) {
	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	report, err := c.reportService.GenerateReport(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report, "Report generated"))
}

// GetReports retrieves stored snapshots for a student. With term and
// academicYear query parameters it returns that single snapshot, otherwise
// every snapshot the student has.
// @Summary Get student reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param term query string false "Term (TERM_1, TERM_2, TERM_3)"
// @Param academicYear query string false "Academic year, e.g. 2025/2026"
// @Success 200 {object} dto.APIResponse "Reports retrieved"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{studentId} [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	term := ctx.Query("term")
	academicYear := ctx.Query("academicYear")

	if term != "" && academicYear != "" {
		report, err := c.reportService.GetReport(ctx, studentID, term, academicYear)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report, ""))
		return
	}

	reports, err := c.reportService.ListReports(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reports, ""))
}
