package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/db"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
	"github.com/okandemir/schoolhub/internal/pkg/logger"
)

// AttendanceService handles attendance recording and queries
type AttendanceService struct {
	database       *db.PostgresDB
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(database *db.PostgresDB, attendanceRepo *repositories.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		database:       database,
		attendanceRepo: attendanceRepo,
	}
}

// RecordBatch upserts all entries of one date/subject submission inside a
// single transaction. Either every entry persists or none do.
func (s *AttendanceService) RecordBatch(ctx context.Context, req *dto.RecordAttendanceBatchRequest, recorderID int64) ([]*models.AttendanceRecord, error) {
	if len(req.Entries) == 0 {
		return nil, apperrors.NewValidationError("entries", "at least one attendance entry is required")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "date must be in YYYY-MM-DD format")
	}

	records := make([]*models.AttendanceRecord, 0, len(req.Entries))
	for _, entry := range req.Entries {
		status := models.AttendanceStatus(entry.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("status", "status must be PRESENT, ABSENT or LATE")
		}
		records = append(records, &models.AttendanceRecord{
			StudentID:  entry.StudentID,
			Date:       date,
			Subject:    req.Subject,
			Status:     status,
			Notes:      entry.Notes,
			RecordedBy: recorderID,
		})
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, record := range records {
			if err := s.attendanceRepo.UpsertTx(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("date", req.Date).Str("subject", req.Subject).
			Int("entries", len(records)).Msg("Attendance batch rolled back")
		return nil, apperrors.NewStorageError(err, "error recording attendance batch")
	}

	return records, nil
}

// ListAttendance retrieves attendance records matching the filter
func (s *AttendanceService) ListAttendance(ctx context.Context, filter *dto.AttendanceListFilter) ([]*models.AttendanceRecord, error) {
	var date *time.Time
	if filter.Date != "" {
		parsed, err := time.Parse(dateLayout, filter.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "date must be in YYYY-MM-DD format")
		}
		date = &parsed
	}

	records, err := s.attendanceRepo.List(ctx, filter.StudentID, date, filter.Subject)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}

	return records, nil
}
