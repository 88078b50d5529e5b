package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancebook_backend/internals/features/school/attendance/dto"
	"dancebook_backend/internals/features/school/attendance/model"
	bookingService "dancebook_backend/internals/features/school/bookings/service"
	classModel "dancebook_backend/internals/features/school/classes/model"
	studentModel "dancebook_backend/internals/features/users/students/model"
	helper "dancebook_backend/internals/helpers"
)

var (
	ErrClassNotFound      = errors.New("Class not found.")
	ErrStudentNotFound    = errors.New("Student not found.")
	ErrAttendanceNotFound = errors.New("Attendance record not found.")
	ErrAttendanceExists   = errors.New("Attendance for this student at this class is already recorded.")
)

func ensureClass(tx *gorm.DB, classID uuid.UUID) error {
	var n int64
	if err := tx.Model(&classModel.ClassModel{}).Where("id = ?", classID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrClassNotFound
	}
	return nil
}

// ListForClass is 404 for a missing class and an empty list for a class without records.
func ListForClass(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]model.AttendanceModel, error) {
	tx := db.WithContext(ctx)
	if err := ensureClass(tx, classID); err != nil {
		return nil, err
	}
	var rows []model.AttendanceModel
	err := tx.Preload("Student").
		Where("class_id = ?", classID).
		Order("created_at").Order("id").
		Find(&rows).Error
	return rows, err
}

func Get(ctx context.Context, db *gorm.DB, classID, studentID uuid.UUID) (*model.AttendanceModel, error) {
	var m model.AttendanceModel
	if err := db.WithContext(ctx).Preload("Student").
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create records attendance; is_booked defaults to whether the student holds a confirmed seat.
func Create(ctx context.Context, db *gorm.DB, classID uuid.UUID, req dto.AttendanceCreateRequest) (*model.AttendanceModel, error) {
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, ErrStudentNotFound
	}

	m := &model.AttendanceModel{
		ClassID:   classID,
		StudentID: studentID,
		Status:    model.AttendanceStatus(req.Status),
		Notes:     req.Notes,
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureClass(tx, classID); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&studentModel.StudentModel{}).Where("id = ?", studentID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrStudentNotFound
		}

		if req.IsBooked != nil {
			m.IsBooked = *req.IsBooked
		} else {
			booked, err := bookingService.HasConfirmedBooking(ctx, tx, studentID, classID)
			if err != nil {
				return err
			}
			m.IsBooked = booked
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Preload("Student").Where("id = ?", m.ID).Take(m).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrAttendanceExists
		}
		return nil, err
	}
	return m, nil
}

func Update(ctx context.Context, db *gorm.DB, classID, studentID uuid.UUID, req dto.AttendanceUpdateRequest) (*model.AttendanceModel, error) {
	m, err := Get(ctx, db, classID, studentID)
	if err != nil {
		return nil, err
	}
	req.ApplyUpdate(m)
	if err := db.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"status":    m.Status,
			"is_booked": m.IsBooked,
			"notes":     m.Notes,
		}).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func Delete(ctx context.Context, db *gorm.DB, classID, studentID uuid.UUID) error {
	res := db.WithContext(ctx).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}
