package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dancebook_backend/internals/features/school/reports/model"
	"dancebook_backend/internals/helpers/dbtime"
)

const attendanceSheet = "Attendance"

var attendanceHeader = []string{"Class", "Instructor", "Date", "Booked", "Capacity", "Rate %"}

// ExportAttendanceXLSX renders the attendance report as a single-sheet workbook.
func (s *ReportService) ExportAttendanceXLSX(ctx context.Context, period string) ([]byte, string, error) {
	w := ResolveWindow(KindAttendance, period, s.Now())
	rows, err := s.attendanceRows(ctx, w)
	if err != nil {
		return nil, "", err
	}
	buf, err := buildAttendanceWorkbook(rows)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("attendance_%s_%s.xlsx", w.Period, w.To.In(dbtime.SchoolLocation()).Format("2006-01-02"))
	return buf, name, nil
}

func buildAttendanceWorkbook(rows []model.AttendanceRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for col, h := range attendanceHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellStr(attendanceSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end, _ := excelize.CoordinatesToCellName(len(attendanceHeader), 1)
	_ = f.SetCellStyle(attendanceSheet, "A1", end, bold)
	_ = f.AutoFilter(attendanceSheet, "A1:"+end, nil)

	loc := dbtime.SchoolLocation()
	for i, r := range rows {
		values := []any{
			r.ClassName,
			r.InstructorName,
			r.Date.In(loc).Format("2006-01-02 15:04"),
			r.BookedSlots,
			r.MaxSlots,
			strconv.FormatFloat(r.AttendanceRate, 'f', 2, 64),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(attendanceSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("set row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(attendanceSheet, "A", "B", 28)
	_ = f.SetColWidth(attendanceSheet, "C", "C", 18)
	_ = f.SetColWidth(attendanceSheet, "D", "F", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
