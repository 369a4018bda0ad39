package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/services"
	"github.com/okandemir/schoolhub/internal/middleware"
)

// FinanceController handles fee payment records
type FinanceController struct {
	financeService *services.FinanceService
}

// NewFinanceController creates a new FinanceController
func NewFinanceController(financeService *services.FinanceService) *FinanceController {
	return &FinanceController{
		financeService: financeService,
	}
}

// CreateRecord records a fee payment
func (c *FinanceController) CreateRecord(ctx *gin.Context) {
	var req dto.CreateFinanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.financeService.CreateRecord(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record, "Payment recorded"))
}

// ListRecords retrieves fee records matching the filter
func (c *FinanceController) ListRecords(ctx *gin.Context) {
	var filter dto.FinanceListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.financeService.ListRecords(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}

// UpdateStatus mutates only the payment status of one record
func (c *FinanceController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFinanceStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.financeService.UpdateStatus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, "Payment status updated"))
}
