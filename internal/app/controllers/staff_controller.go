package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/services"
	"github.com/okandemir/schoolhub/internal/middleware"
)

// StaffController handles staff profile operations
type StaffController struct {
	staffService *services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// ListStaff retrieves all staff profiles, including inactive ones for the
// admin listing.
func (c *StaffController) ListStaff(ctx *gin.Context) {
	staff, err := c.staffService.ListStaff(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// GetStaffByID retrieves one staff profile
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// CreateStaff creates a staff profile
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	staff, err := c.staffService.CreateStaff(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(staff, "Staff member created"))
}

// UpdateStaff applies a partial update to a staff profile
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	staff, err := c.staffService.UpdateStaff(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, "Staff member updated"))
}

// DeleteStaff marks a staff profile inactive
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.staffService.DeleteStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Staff member deleted"))
}
