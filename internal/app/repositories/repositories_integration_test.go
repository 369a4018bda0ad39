//go:build integration

package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/pkg/dberrors"
)

// These tests run against a real PostgreSQL database with the migrations
// from migrations/ already applied. They are skipped unless
// TEST_DATABASE_URL points at such a database:
//
//	TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/app/repositories
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func newTestStudent(number string) *models.Student {
	return &models.Student{
		StudentNumber: number,
		FirstName:     "Amina",
		LastName:      "Diallo",
		GradeLevel:    "JSS2",
		ClassSection:  "B",
		DateOfBirth:   time.Date(2012, time.May, 14, 0, 0, 0, 0, time.UTC),
		Gender:        "F",
		Address:       "12 Harbour Road",
		GuardianName:  "Fatou Diallo",
		GuardianPhone: "+220-555-0101",
		Subjects:      []string{"Mathematics", "English"},
	}
}

func createTestStudent(t *testing.T, pool *pgxpool.Pool) *models.Student {
	t.Helper()

	repo := NewStudentRepository(pool)
	student := newTestStudent(fmt.Sprintf("ITG%d", time.Now().UnixNano()))
	if err := repo.Create(context.Background(), student); err != nil {
		t.Fatalf("creating student: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM attendance_records WHERE student_id = $1`, student.ID)
		pool.Exec(context.Background(), `DELETE FROM students WHERE id = $1`, student.ID)
	})

	return student
}

func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	repo := NewUserRepository(pool)
	nano := time.Now().UnixNano()
	user := &models.User{
		Username:         fmt.Sprintf("itg_user_%d", nano),
		Email:            fmt.Sprintf("itg_user_%d@schoolhub.local", nano),
		Password:         "not-a-real-hash",
		Role:             models.RoleStaff,
		Permissions:      []string{},
		AssignedClasses:  []string{},
		AssignedSubjects: []string{},
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM attendance_records WHERE recorded_by = $1`, user.ID)
		pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, user.ID)
	})

	return user
}

func upsertAttendance(t *testing.T, pool *pgxpool.Pool, record *models.AttendanceRecord) {
	t.Helper()

	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("beginning transaction: %v", err)
	}
	repo := NewAttendanceRepository(pool)
	if err := repo.UpsertTx(ctx, tx, record); err != nil {
		tx.Rollback(ctx)
		t.Fatalf("upserting attendance record: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("committing transaction: %v", err)
	}
}

func TestAttendanceResubmissionKeepsLatestStatus(t *testing.T) {
	pool := testPool(t)
	student := createTestStudent(t, pool)
	recorder := createTestUser(t, pool)

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	first := &models.AttendanceRecord{
		StudentID:  student.ID,
		Date:       day,
		Subject:    "Mathematics",
		Status:     models.AttendanceAbsent,
		RecordedBy: recorder.ID,
	}
	upsertAttendance(t, pool, first)

	second := &models.AttendanceRecord{
		StudentID:  student.ID,
		Date:       day,
		Subject:    "Mathematics",
		Status:     models.AttendancePresent,
		RecordedBy: recorder.ID,
	}
	upsertAttendance(t, pool, second)

	if second.ID != first.ID {
		t.Errorf("resubmission created a new row: got id %d, want %d", second.ID, first.ID)
	}
	if second.CreatedAt.IsZero() || second.UpdatedAt.IsZero() {
		t.Errorf("upsert returned zero timestamps: createdAt=%v updatedAt=%v", second.CreatedAt, second.UpdatedAt)
	}

	records, err := NewAttendanceRepository(pool).List(context.Background(), student.ID, &day, "Mathematics")
	if err != nil {
		t.Fatalf("listing attendance records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d attendance rows for the day, want 1", len(records))
	}
	if records[0].Status != models.AttendancePresent {
		t.Errorf("got status %s, want %s", records[0].Status, models.AttendancePresent)
	}
}

func TestSoftDeletedStudentHiddenFromReads(t *testing.T) {
	pool := testPool(t)
	repo := NewStudentRepository(pool)
	student := createTestStudent(t, pool)

	if err := repo.SoftDelete(context.Background(), student.ID); err != nil {
		t.Fatalf("soft-deleting student: %v", err)
	}

	if _, err := repo.GetByID(context.Background(), student.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("GetByID after soft delete: got %v, want ErrStudentNotFound", err)
	}

	students, err := repo.List(context.Background(), "", "", student.StudentNumber)
	if err != nil {
		t.Fatalf("listing students: %v", err)
	}
	for _, s := range students {
		if s.ID == student.ID {
			t.Errorf("soft-deleted student %d still present in listing", student.ID)
		}
	}

	// The row itself must survive for historical attendance and grades.
	var isActive bool
	err = pool.QueryRow(context.Background(),
		`SELECT is_active FROM students WHERE id = $1`, student.ID).Scan(&isActive)
	if err != nil {
		t.Fatalf("reading raw student row: %v", err)
	}
	if isActive {
		t.Error("soft-deleted student row still flagged active")
	}
}

func TestDuplicateStudentNumberRejected(t *testing.T) {
	pool := testPool(t)
	repo := NewStudentRepository(pool)
	student := createTestStudent(t, pool)

	dup := newTestStudent(student.StudentNumber)
	err := repo.Create(context.Background(), dup)
	if err == nil {
		pool.Exec(context.Background(), `DELETE FROM students WHERE id = $1`, dup.ID)
		t.Fatal("second student with the same number was accepted")
	}
	if !dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
		t.Errorf("got %v, want unique violation on students_student_number_key", err)
	}
}

func TestAdminListingsIncludeDeactivated(t *testing.T) {
	pool := testPool(t)

	userRepo := NewUserRepository(pool)
	user := createTestUser(t, pool)
	if err := userRepo.SoftDelete(context.Background(), user.ID); err != nil {
		t.Fatalf("deactivating user: %v", err)
	}

	staffRepo := NewStaffRepository(pool)
	nano := time.Now().UnixNano()
	staff := &models.StaffMember{
		FirstName: "Kwame",
		LastName:  "Mensah",
		Position:  "Mathematics Teacher",
		Email:     fmt.Sprintf("itg_staff_%d@schoolhub.local", nano),
		Phone:     "+220-555-0102",
		Subjects:  []string{"Mathematics"},
	}
	if err := staffRepo.Create(context.Background(), staff); err != nil {
		t.Fatalf("creating staff member: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, staff.ID)
	})
	if err := staffRepo.SoftDelete(context.Background(), staff.ID); err != nil {
		t.Fatalf("deactivating staff member: %v", err)
	}

	users, err := userRepo.List(context.Background())
	if err != nil {
		t.Fatalf("listing users: %v", err)
	}
	foundUser := false
	for _, u := range users {
		if u.ID == user.ID {
			foundUser = true
			if u.IsActive {
				t.Error("deactivated user listed with isActive true")
			}
		}
	}
	if !foundUser {
		t.Error("deactivated user missing from the admin listing")
	}

	members, err := staffRepo.List(context.Background())
	if err != nil {
		t.Fatalf("listing staff: %v", err)
	}
	foundStaff := false
	for _, m := range members {
		if m.ID == staff.ID {
			foundStaff = true
			if m.IsActive {
				t.Error("deactivated staff member listed with isActive true")
			}
		}
	}
	if !foundStaff {
		t.Error("deactivated staff member missing from the admin listing")
	}
}

func TestGradeLookupMissingRecord(t *testing.T) {
	pool := testPool(t)
	repo := NewGradeRepository(pool)

	_, err := repo.GetByID(context.Background(), -1)
	if !errors.Is(err, ErrGradeRecordNotFound) {
		t.Errorf("GetByID(-1) = %v, want ErrGradeRecordNotFound", err)
	}
}
