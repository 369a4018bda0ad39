package services

import (
	"testing"
	"time"

	"github.com/okandemir/schoolhub/internal/app/models"
)

func TestGpaFor(t *testing.T) {
	tests := []struct {
		name    string
		letters []string
		want    float64
	}{
		{
			name:    "A and B average to 3.5",
			letters: []string{"A", "B"},
			want:    3.5,
		},
		{
			name:    "single F is zero",
			letters: []string{"F"},
			want:    0,
		},
		{
			name:    "ungraded records are excluded, not zeroed",
			letters: []string{"A", "", "B", ""},
			want:    3.5,
		},
		{
			name:    "all ungraded yields zero",
			letters: []string{"", ""},
			want:    0,
		},
		{
			name:    "no records yields zero",
			letters: nil,
			want:    0,
		},
		{
			name:    "non-terminating average rounds to two decimals",
			letters: []string{"A", "B", "B"},
			want:    3.33,
		},
		{
			name:    "E carries half a point",
			letters: []string{"E"},
			want:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gpaFor(tt.letters); got != tt.want {
				t.Errorf("gpaFor(%v) = %v, want %v", tt.letters, got, tt.want)
			}
		})
	}
}

func TestAttendancePercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{
			name:    "18 of 20 is 90 percent",
			present: 18,
			total:   20,
			want:    90,
		},
		{
			name:    "zero recorded days must not divide by zero",
			present: 0,
			total:   0,
			want:    0,
		},
		{
			name:    "full attendance",
			present: 20,
			total:   20,
			want:    100,
		},
		{
			name:    "rounds to two decimals",
			present: 1,
			total:   3,
			want:    33.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attendancePercentage(tt.present, tt.total); got != tt.want {
				t.Errorf("attendancePercentage(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}

func TestFinancialStanding(t *testing.T) {
	tests := []struct {
		name            string
		expected        float64
		paid            float64
		wantStatus      models.FinancialStatus
		wantOutstanding float64
	}{
		{
			name:            "fully paid is cleared with zero outstanding",
			expected:        500,
			paid:            500,
			wantStatus:      models.FinancialCleared,
			wantOutstanding: 0,
		},
		{
			name:            "partial payment is not cleared",
			expected:        500,
			paid:            300,
			wantStatus:      models.FinancialNotCleared,
			wantOutstanding: 200,
		},
		{
			name:            "overpayment is cleared, outstanding never negative",
			expected:        500,
			paid:            600,
			wantStatus:      models.FinancialCleared,
			wantOutstanding: 0,
		},
		{
			name:            "nothing paid owes the full fee",
			expected:        500,
			paid:            0,
			wantStatus:      models.FinancialNotCleared,
			wantOutstanding: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, outstanding := financialStanding(tt.expected, tt.paid)
			if status != tt.wantStatus {
				t.Errorf("financialStanding(%v, %v) status = %v, want %v", tt.expected, tt.paid, status, tt.wantStatus)
			}
			if outstanding != tt.wantOutstanding {
				t.Errorf("financialStanding(%v, %v) outstanding = %v, want %v", tt.expected, tt.paid, outstanding, tt.wantOutstanding)
			}
		})
	}
}

func TestAcademicYearRange(t *testing.T) {
	from, to, err := academicYearRange("2025/2026")
	if err != nil {
		t.Fatalf("academicYearRange(2025/2026) unexpected error: %v", err)
	}

	wantFrom := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	if !from.Equal(wantFrom) {
		t.Errorf("academicYearRange() from = %v, want %v", from, wantFrom)
	}
	if !to.Equal(wantTo) {
		t.Errorf("academicYearRange() to = %v, want %v", to, wantTo)
	}

	invalid := []string{"2025", "2025/2027", "abcd/efgh", "2026/2025", ""}
	for _, year := range invalid {
		if _, _, err := academicYearRange(year); err == nil {
			t.Errorf("academicYearRange(%q) expected error, got nil", year)
		}
	}
}
