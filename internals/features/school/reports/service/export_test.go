package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"dancebook_backend/internals/features/school/reports/model"
)

func TestBuildAttendanceWorkbook(t *testing.T) {
	rows := []model.AttendanceRow{
		{ClassID: uuid.New(), ClassName: "Bachata", InstructorName: "Anna Nowak", Date: time.Date(2026, 5, 1, 17, 0, 0, 0, time.UTC), BookedSlots: 6, MaxSlots: 12, AttendanceRate: 50},
		{ClassID: uuid.New(), ClassName: "Tango", InstructorName: "Jan Kowalski", Date: time.Date(2026, 4, 28, 18, 0, 0, 0, time.UTC), BookedSlots: 0, MaxSlots: 10},
	}

	data, err := buildAttendanceWorkbook(rows)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(attendanceSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(got))
	}
	if got[0][0] != "Class" || got[0][5] != "Rate %" {
		t.Fatalf("header = %v", got[0])
	}
	if got[1][0] != "Bachata" || got[1][3] != "6" || got[1][5] != "50.00" {
		t.Fatalf("first row = %v", got[1])
	}
	if got[2][5] != "0.00" {
		t.Fatalf("second row rate = %v", got[2][5])
	}
}
