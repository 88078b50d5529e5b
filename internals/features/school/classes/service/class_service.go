package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingService "dancebook_backend/internals/features/school/bookings/service"
	"dancebook_backend/internals/features/school/classes/dto"
	"dancebook_backend/internals/features/school/classes/model"
	instructorModel "dancebook_backend/internals/features/school/instructors/model"
	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/helpers/dbtime"
)

var (
	ErrClassNotFound      = errors.New("Class not found.")
	ErrInstructorNotFound = errors.New("Instructor not found.")
)

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// List applies the style (case-insensitive substring), instructor and date filters.
func List(ctx context.Context, db *gorm.DB, q dto.ListClassesQuery, p helper.Params) ([]model.ClassModel, int64, error) {
	tx := db.WithContext(ctx).Model(&model.ClassModel{})
	if q.Style != "" {
		tx = tx.Where("style ILIKE ?", "%"+escapeLike(q.Style)+"%")
	}
	if q.InstructorID != "" {
		tx = tx.Where("instructor_id = ?", q.InstructorID)
	}
	if q.From != "" {
		if d, err := dbtime.ParseDate(q.From); err == nil {
			tx = tx.Where("start_time >= ?", time.Time(d))
		}
	}
	if q.To != "" {
		if d, err := dbtime.ParseDate(q.To); err == nil {
			tx = tx.Where("start_time < ?", time.Time(d).AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderClause(map[string]string{
		"start_time": "start_time",
		"name":       "name",
		"style":      "style",
	}, "start_time")

	var rows []model.ClassModel
	err := tx.Preload("Instructor").
		Order(order).Order("id").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error
	return rows, total, err
}

func Get(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ClassModel, error) {
	var m model.ClassModel
	if err := db.WithContext(ctx).Preload("Instructor").Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &m, nil
}

func ensureInstructor(tx *gorm.DB, id uuid.UUID) error {
	var n int64
	if err := tx.Model(&instructorModel.InstructorModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrInstructorNotFound
	}
	return nil
}

func Create(ctx context.Context, db *gorm.DB, m *model.ClassModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureInstructor(tx, m.InstructorID); err != nil {
			return err
		}
		if err := tx.Omit("Instructor").Create(m).Error; err != nil {
			return err
		}
		return tx.Preload("Instructor").Where("id = ?", m.ID).Take(m).Error
	})
}

// Update locks the row, merges req, re-checks cross-field rules and saves.
// Returned field errors come back as the second value.
func Update(ctx context.Context, db *gorm.DB, id uuid.UUID, req dto.ClassUpdateRequest) (*model.ClassModel, map[string][]string, error) {
	var m model.ClassModel
	var fieldErrs map[string][]string

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}
		req.ApplyUpdate(&m)
		if fieldErrs = dto.CheckClass(&m); fieldErrs != nil {
			return nil
		}
		if req.InstructorID != nil {
			if err := ensureInstructor(tx, m.InstructorID); err != nil {
				return err
			}
		}
		if err := tx.Omit("Instructor").Save(&m).Error; err != nil {
			return err
		}
		return tx.Preload("Instructor").Where("id = ?", m.ID).Take(&m).Error
	})
	if err != nil {
		return nil, nil, err
	}
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	return &m, nil, nil
}

// Delete removes the class; its bookings and attendance go with it (ON DELETE CASCADE).
func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClassModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}

// ToResponses attaches confirmed counts and available slots in one extra query.
func ToResponses(ctx context.Context, db *gorm.DB, rows []model.ClassModel) ([]dto.ClassResponse, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}
	counts, err := bookingService.ConfirmedCounts(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := make([]dto.ClassResponse, 0, len(rows))
	for i := range rows {
		n := counts[rows[i].ID]
		out = append(out, dto.FromModel(&rows[i], n, bookingService.AvailableSlots(rows[i].MaxParticipants, n), now))
	}
	return out, nil
}

func ToResponse(ctx context.Context, db *gorm.DB, m *model.ClassModel) (dto.ClassResponse, error) {
	out, err := ToResponses(ctx, db, []model.ClassModel{*m})
	if err != nil {
		return dto.ClassResponse{}, err
	}
	return out[0], nil
}
