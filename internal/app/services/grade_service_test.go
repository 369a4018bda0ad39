package services

import (
	"errors"
	"testing"

	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
)

func TestComputeTotalMarks(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{
			name:   "empty record totals zero",
			scores: nil,
			want:   0,
		},
		{
			name:   "single score",
			scores: []float64{75},
			want:   75,
		},
		{
			name:   "plain average of all sub-scores",
			scores: []float64{80, 90, 70},
			want:   80,
		},
		{
			name:   "average rounds to two decimals",
			scores: []float64{70, 75, 80},
			want:   75,
		},
		{
			name:   "repeating decimal rounds",
			scores: []float64{100, 100, 50},
			want:   83.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeTotalMarks(tt.scores); got != tt.want {
				t.Errorf("computeTotalMarks(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}

func TestLetterGradeFor(t *testing.T) {
	tests := []struct {
		marks float64
		want  string
	}{
		{marks: 100, want: "A"},
		{marks: 90, want: "A"},
		{marks: 89.99, want: "B"},
		{marks: 80, want: "B"},
		{marks: 70, want: "C"},
		{marks: 60, want: "D"},
		{marks: 50, want: "E"},
		{marks: 49.99, want: "F"},
		{marks: 0, want: "F"},
	}

	for _, tt := range tests {
		if got := letterGradeFor(tt.marks); got != tt.want {
			t.Errorf("letterGradeFor(%v) = %q, want %q", tt.marks, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 3.333333, want: 3.33},
		{in: 3.335, want: 3.34},
		{in: 90, want: 90},
		{in: 0, want: 0},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateTerm(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    models.Term
		wantErr bool
	}{
		{name: "first term", value: "TERM_1", want: models.TermFirst},
		{name: "second term", value: "TERM_2", want: models.TermSecond},
		{name: "third term", value: "TERM_3", want: models.TermThird},
		{name: "lowercase rejected", value: "term_1", wantErr: true},
		{name: "unknown term rejected", value: "TERM_4", wantErr: true},
		{name: "empty rejected", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateTerm(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("validateTerm(%q) accepted an invalid term", tt.value)
				}
				var custom *apperrors.CustomError
				if !errors.As(err, &custom) || custom.Details["field"] != "term" {
					t.Errorf("validateTerm(%q) error = %v, want a validation error on field %q", tt.value, err, "term")
				}
				return
			}
			if err != nil {
				t.Fatalf("validateTerm(%q) returned error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("validateTerm(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
