package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/services"
	"github.com/okandemir/schoolhub/internal/middleware"
)

// AttendanceController handles attendance recording and queries
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// RecordBatch submits attendance for one date and subject across students
// @Summary Record an attendance batch
// @Description Upserts all entries of one date/subject submission atomically; on any failure nothing persists
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordAttendanceBatchRequest true "Attendance batch"
// @Success 201 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Batch recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /attendance/batch [post]
func (c *AttendanceController) RecordBatch(ctx *gin.Context) {
	recorderID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RecordAttendanceBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.attendanceService.RecordBatch(ctx, &req, recorderID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(records, "Attendance recorded"))
}

// ListAttendance retrieves attendance records matching the filter
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	var filter dto.AttendanceListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.attendanceService.ListAttendance(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}
