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

	"dancebook_backend/internals/features/school/payments/dto"
	"dancebook_backend/internals/features/school/payments/model"
	studentModel "dancebook_backend/internals/features/users/students/model"
	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/helpers/dbtime"
)

var (
	ErrPaymentNotFound   = errors.New("Payment not found.")
	ErrStudentNotFound   = errors.New("Student not found.")
	ErrNotPending        = errors.New("Only pending payments can be edited.")
	ErrInvalidTransition = errors.New("Payment cannot change to that status.")
)

// Scope narrows reads: a nil StudentID means every student (admin).
type Scope struct {
	StudentID *uuid.UUID
}

func (s Scope) apply(tx *gorm.DB) *gorm.DB {
	if s.StudentID != nil {
		return tx.Where("student_id = ?", *s.StudentID)
	}
	return tx
}

func List(ctx context.Context, db *gorm.DB, scope Scope, q dto.ListPaymentsQuery, p helper.Params) ([]model.PaymentModel, int64, error) {
	tx := scope.apply(db.WithContext(ctx).Model(&model.PaymentModel{}))
	if q.StudentID != "" {
		tx = tx.Where("student_id = ?", q.StudentID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderClause(map[string]string{
		"created_at": "created_at",
		"amount":     "amount",
		"paid_at":    "paid_at",
	}, "created_at")

	var rows []model.PaymentModel
	err := tx.Preload("Student").
		Order(order).Order("id").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error
	return rows, total, err
}

func Get(ctx context.Context, db *gorm.DB, scope Scope, id uuid.UUID) (*model.PaymentModel, error) {
	var m model.PaymentModel
	if err := scope.apply(db.WithContext(ctx).Preload("Student")).
		Where("id = ?", id).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &m, nil
}

func Create(ctx context.Context, db *gorm.DB, m *model.PaymentModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&studentModel.StudentModel{}).Where("id = ?", m.StudentID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrStudentNotFound
		}
		m.Status = model.PaymentPending
		m.PaidAt = nil
		m.ValidUntil = nil
		if err := tx.Omit("Student").Create(m).Error; err != nil {
			return err
		}
		return tx.Preload("Student").Where("id = ?", m.ID).Take(m).Error
	})
}

// withLocked loads the payment FOR UPDATE and runs fn inside the same transaction.
func withLocked(ctx context.Context, db *gorm.DB, id uuid.UUID, fn func(tx *gorm.DB, m *model.PaymentModel) error) (*model.PaymentModel, error) {
	var m model.PaymentModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if err := fn(tx, &m); err != nil {
			return err
		}
		return tx.Preload("Student").Where("id = ?", m.ID).Take(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func Update(ctx context.Context, db *gorm.DB, id uuid.UUID, req dto.PaymentUpdateRequest) (*model.PaymentModel, error) {
	return withLocked(ctx, db, id, func(tx *gorm.DB, m *model.PaymentModel) error {
		if m.Status != model.PaymentPending {
			return ErrNotPending
		}
		req.ApplyUpdate(m)
		return tx.Model(m).Updates(map[string]any{
			"amount":         m.Amount,
			"payment_type":   m.PaymentType,
			"payment_method": m.PaymentMethod,
		}).Error
	})
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.PaymentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// Transition moves a payment through pending→completed|failed and completed→refunded.
// Completing stamps paid_at and derives valid_until from the payment type.
func Transition(ctx context.Context, db *gorm.DB, id uuid.UUID, next model.PaymentStatus, now time.Time) (*model.PaymentModel, error) {
	m, err := withLocked(ctx, db, id, func(tx *gorm.DB, m *model.PaymentModel) error {
		if !m.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, m.Status, next)
		}
		updates := map[string]any{"status": next}
		if next == model.PaymentCompleted {
			paid := now.UTC()
			until := model.ValidUntil(m.PaymentType, paid, dbtime.SchoolLocation())
			updates["paid_at"] = paid
			updates["valid_until"] = until
		}
		return tx.Model(m).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("💳 payment status changed", zap.String("payment_id", id.String()), zap.String("status", string(next)))
	return m, nil
}
