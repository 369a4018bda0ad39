package models

import "testing"

func TestAttendanceStatusValid(t *testing.T) {
	valid := []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate}
	for _, status := range valid {
		if !status.Valid() {
			t.Errorf("AttendanceStatus(%q).Valid() = false, want true", status)
		}
	}

	invalid := []AttendanceStatus{"", "present", "EXCUSED"}
	for _, status := range invalid {
		if status.Valid() {
			t.Errorf("AttendanceStatus(%q).Valid() = true, want false", status)
		}
	}
}

func TestCountsAsPresent(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		want   bool
	}{
		{AttendancePresent, true},
		{AttendanceLate, true},
		{AttendanceAbsent, false},
	}

	for _, tt := range tests {
		if got := tt.status.CountsAsPresent(); got != tt.want {
			t.Errorf("AttendanceStatus(%q).CountsAsPresent() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
