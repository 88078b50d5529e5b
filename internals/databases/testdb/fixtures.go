//go:build integration

package testdb

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Fixture rows are inserted with plain SQL so this package stays independent of the feature packages.

type idRow struct {
	ID uuid.UUID `gorm:"column:id"`
}

func (h *DBHandle) insert(t *testing.T, what, q string, args ...any) uuid.UUID {
	t.Helper()
	var row idRow
	if err := h.Gorm.Raw(q, args...).Scan(&row).Error; err != nil {
		t.Fatalf("insert %s: %v", what, err)
	}
	return row.ID
}

func (h *DBHandle) Instructor(t *testing.T, first, last string) uuid.UUID {
	t.Helper()
	email := fmt.Sprintf("%s.%s.%s@school.test", first, last, uuid.NewString()[:8])
	return h.insert(t, "instructor",
		`INSERT INTO instructors (first_name, last_name, email) VALUES (?, ?, ?) RETURNING id`,
		first, last, email)
}

type ClassFixture struct {
	Name            string
	Style           string
	MaxParticipants int
	InstructorID    uuid.UUID
	StartTime       time.Time
}

func (h *DBHandle) Class(t *testing.T, c ClassFixture) uuid.UUID {
	t.Helper()
	if c.Style == "" {
		c.Style = "salsa"
	}
	if c.Name == "" {
		c.Name = "Class " + uuid.NewString()[:6]
	}
	return h.insert(t, "class",
		`INSERT INTO classes (name, style, max_participants, instructor_id, start_time, end_time)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		c.Name, c.Style, c.MaxParticipants, c.InstructorID, c.StartTime.UTC(), c.StartTime.Add(time.Hour).UTC())
}

// Student inserts a users row plus its students profile and returns (userID, studentID).
func (h *DBHandle) Student(t *testing.T, email string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	userID := h.insert(t, "user",
		`INSERT INTO users (email, password, first_name, last_name, role) VALUES (?, 'x', 'Test', 'Student', 'student') RETURNING id`,
		email)
	studentID := h.insert(t, "student",
		`INSERT INTO students (user_id, first_name, last_name, email, phone_number, date_of_birth)
		 VALUES (?, 'Test', 'Student', ?, '500600700', '2000-01-01') RETURNING id`,
		userID, email)
	return userID, studentID
}

// Booking inserts a booking row directly, bypassing capacity checks.
func (h *DBHandle) Booking(t *testing.T, studentID, classID uuid.UUID, status string) uuid.UUID {
	t.Helper()
	return h.insert(t, "booking",
		`INSERT INTO bookings (student_id, class_id, status) VALUES (?, ?, ?) RETURNING id`,
		studentID, classID, status)
}

func (h *DBHandle) Count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	if err := h.Gorm.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
