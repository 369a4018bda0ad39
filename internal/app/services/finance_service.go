package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
)

// FinanceService handles fee payment records
type FinanceService struct {
	financeRepo *repositories.FinanceRepository
	studentRepo *repositories.StudentRepository
}

// NewFinanceService creates a new finance service instance
func NewFinanceService(financeRepo *repositories.FinanceRepository, studentRepo *repositories.StudentRepository) *FinanceService {
	return &FinanceService{
		financeRepo: financeRepo,
		studentRepo: studentRepo,
	}
}

// CreateRecord validates and persists a fee payment record. A PAID record
// without a receipt number gets one generated.
func (s *FinanceService) CreateRecord(ctx context.Context, req *dto.CreateFinanceRequest) (*models.FinanceRecord, error) {
	if req.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "amount must be positive")
	}

	status := models.PaymentStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status", "status must be PAID or PENDING")
	}

	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		return nil, apperrors.NewValidationError("paymentDate", "paymentDate must be in YYYY-MM-DD format")
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, studentLookupError(err)
	}

	record := &models.FinanceRecord{
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		Status:        status,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		ReceiptNumber: req.ReceiptNumber,
	}

	if status == models.PaymentPaid && record.ReceiptNumber == nil {
		receipt := "RCP-" + strings.ToUpper(uuid.New().String()[:8])
		record.ReceiptNumber = &receipt
	}

	if err := s.financeRepo.Create(ctx, record); err != nil {
		return nil, apperrors.NewStorageError(err, "error creating finance record")
	}

	return record, nil
}

// ListRecords retrieves finance records matching the filter
func (s *FinanceService) ListRecords(ctx context.Context, filter *dto.FinanceListFilter) ([]*models.FinanceRecord, error) {
	if filter.Status != "" && !models.PaymentStatus(filter.Status).Valid() {
		return nil, apperrors.NewValidationError("status", "status must be PAID or PENDING")
	}

	records, err := s.financeRepo.List(ctx, filter.StudentID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("error retrieving finance records: %w", err)
	}

	return records, nil
}

// UpdateStatus mutates the payment status of one record
func (s *FinanceService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateFinanceStatusRequest) (*models.FinanceRecord, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "invalid finance record ID")
	}

	status := models.PaymentStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status", "status must be PAID or PENDING")
	}

	if err := s.financeRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrFinanceRecordNotFound) {
			return nil, apperrors.NewResourceNotFoundError("finance record not found")
		}
		return nil, apperrors.NewStorageError(err, "error updating finance record")
	}

	return s.financeRepo.GetByID(ctx, id)
}
