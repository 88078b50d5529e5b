package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/features/school/bookings/model"
	classModel "dancebook_backend/internals/features/school/classes/model"
	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/metrics"
)

var (
	ErrClassNotFound     = errors.New("Class not found.")
	ErrDuplicateBooking  = errors.New("You have already booked this class.")
	ErrCapacityExceeded  = errors.New("No spots available for this class.")
	ErrBookingNotFound   = errors.New("Booking not found.")
	ErrInvalidTransition = errors.New("Booking cannot change to that status.")
)

// AvailableSlots is max(0, max - confirmed).
func AvailableSlots(maxParticipants int, confirmed int64) int {
	free := int64(maxParticipants) - confirmed
	if free < 0 {
		return 0
	}
	return int(free)
}

// BookingService owns seat allocation. Writers for the same class are serialized
// by a row lock on that class inside the transaction.
type BookingService struct {
	DB    *gorm.DB
	Cache *cache.RedisCache
	Now   func() time.Time
}

func NewBookingService(db *gorm.DB, rc *cache.RedisCache) *BookingService {
	return &BookingService{DB: db, Cache: rc, Now: func() time.Time { return time.Now().UTC() }}
}

// Create books classID for studentID with status confirmed.
func (s *BookingService) Create(ctx context.Context, studentID, classID uuid.UUID) (*model.BookingModel, error) {
	var out *model.BookingModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class classModel.ClassModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "max_participants").
			Where("id = ?", classID).
			Take(&class).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return fmt.Errorf("lock class: %w", err)
		}

		var existing int64
		if err := tx.Model(&model.BookingModel{}).
			Where("student_id = ? AND class_id = ?", studentID, classID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if existing > 0 {
			return ErrDuplicateBooking
		}

		var confirmed int64
		if err := tx.Model(&model.BookingModel{}).
			Where("class_id = ? AND status IN ?", classID, model.SeatHolding()).
			Count(&confirmed).Error; err != nil {
			return fmt.Errorf("count confirmed: %w", err)
		}
		if AvailableSlots(class.MaxParticipants, confirmed) == 0 {
			return ErrCapacityExceeded
		}

		b := &model.BookingModel{
			StudentID:   studentID,
			ClassID:     classID,
			BookingDate: s.Now(),
			Status:      model.StatusConfirmed,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			err = ErrDuplicateBooking
		}
		s.reject(err)
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	s.Cache.InvalidateReports(ctx)
	zap.L().Info("✅ booking confirmed",
		zap.String("booking_id", out.ID.String()),
		zap.String("class_id", classID.String()),
		zap.String("student_id", studentID.String()))
	return out, nil
}

func (s *BookingService) reject(err error) {
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		metrics.BookingsRejected.WithLabelValues(metrics.ReasonCapacity).Inc()
	case errors.Is(err, ErrDuplicateBooking):
		metrics.BookingsRejected.WithLabelValues(metrics.ReasonDuplicate).Inc()
	case errors.Is(err, ErrClassNotFound):
		metrics.BookingsRejected.WithLabelValues(metrics.ReasonNotFound).Inc()
	}
}

// Cancel soft-deletes: the row stays with its id and booking_date, only status changes.
// Bookings of other students are reported as not found. Cancelling twice is a no-op.
func (s *BookingService) Cancel(ctx context.Context, bookingID, studentID uuid.UUID) (*model.BookingModel, error) {
	var b model.BookingModel
	changed := false

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND student_id = ?", bookingID, studentID).
			Take(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if b.Status == model.StatusCancelled {
			return nil
		}
		if !b.Status.CanTransitionTo(model.StatusCancelled) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&b).Update("status", model.StatusCancelled).Error; err != nil {
			return err
		}
		b.Status = model.StatusCancelled
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		metrics.BookingsCancelled.Inc()
		s.Cache.InvalidateReports(ctx)
	}
	return &b, nil
}

// ListForStudent returns the student's bookings, newest first, with their class.
func (s *BookingService) ListForStudent(ctx context.Context, studentID uuid.UUID, status string, p helper.Params) ([]model.BookingModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.BookingModel{}).Where("student_id = ?", studentID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.BookingModel
	err := tx.Preload("Class").
		Order("booking_date DESC").Order("id").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error
	return rows, total, err
}

func (s *BookingService) GetForStudent(ctx context.Context, bookingID, studentID uuid.UUID) (*model.BookingModel, error) {
	var b model.BookingModel
	if err := s.DB.WithContext(ctx).Preload("Class").
		Where("id = ? AND student_id = ?", bookingID, studentID).
		Take(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ConfirmedCounts maps class id to its confirmed bookings; classes without any are absent.
func ConfirmedCounts(ctx context.Context, db *gorm.DB, classIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(classIDs))
	if len(classIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		ClassID uuid.UUID
		N       int64
	}
	if err := db.WithContext(ctx).Model(&model.BookingModel{}).
		Select("class_id, COUNT(*) AS n").
		Where("class_id IN ? AND status IN ?", classIDs, model.SeatHolding()).
		Group("class_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ClassID] = r.N
	}
	return out, nil
}

// HasConfirmedBooking reports whether studentID holds a confirmed seat in classID.
func HasConfirmedBooking(ctx context.Context, db *gorm.DB, studentID, classID uuid.UUID) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.BookingModel{}).
		Where("student_id = ? AND class_id = ? AND status IN ?", studentID, classID, model.SeatHolding()).
		Count(&n).Error
	return n > 0, err
}
