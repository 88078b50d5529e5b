package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dancebook_backend/internals/constants"
	authHelper "dancebook_backend/internals/features/users/auth/helper"
	"dancebook_backend/internals/features/users/students/dto"
	"dancebook_backend/internals/features/users/students/model"
	userModel "dancebook_backend/internals/features/users/user/model"
	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/helpers/dbtime"
)

var (
	ErrEmailTaken             = errors.New("A user with that email already exists.")
	ErrStudentProfileNotFound = errors.New("Student profile not found.")
	ErrStudentNotFound        = errors.New("Student not found.")
)

// NewStudent is a validated sign-up: one users row plus one students row.
type NewStudent struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	DateOfBirth datatypes.Date
}

// CreateWithUser inserts the account and its profile in one transaction; on any failure neither exists.
func CreateWithUser(ctx context.Context, db *gorm.DB, in NewStudent) (*userModel.UserModel, *model.StudentModel, error) {
	email := userModel.NormalizeEmail(in.Email)
	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &userModel.UserModel{
		Email:     email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      constants.RoleStudent,
		IsActive:  true,
	}
	student := &model.StudentModel{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       email,
		PhoneNumber: in.PhoneNumber,
		DateOfBirth: in.DateOfBirth,
		JoinedDate:  dbtime.Today(),
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := emailInUse(tx, email, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		student.UserID = user.ID
		return tx.Create(student).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}
	return user, student, nil
}

// emailInUse checks users and students; exceptUser lets a user keep their own address.
func emailInUse(tx *gorm.DB, email string, exceptUser uuid.UUID) (bool, error) {
	var n int64
	if err := tx.Raw(`
		SELECT
		  (SELECT COUNT(*) FROM users WHERE LOWER(email) = ? AND id <> ?) +
		  (SELECT COUNT(*) FROM students WHERE LOWER(email) = ? AND user_id <> ?)
	`, email, exceptUser, email, exceptUser).Scan(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.StudentModel, error) {
	var s model.StudentModel
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentProfileNotFound
		}
		return nil, err
	}
	return &s, nil
}

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.StudentModel, error) {
	var s model.StudentModel
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

func List(ctx context.Context, db *gorm.DB, q dto.ListStudentsQuery, p helper.Params) ([]model.StudentModel, int64, error) {
	tx := db.WithContext(ctx).Model(&model.StudentModel{})
	if q.Search != "" {
		s := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", s, s, s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := p.OrderClause(map[string]string{
		"last_name":   "last_name",
		"first_name":  "first_name",
		"joined_date": "joined_date",
	}, "last_name")

	var rows []model.StudentModel
	if err := tx.Order(order).Order("id").Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update applies req and mirrors name/email changes onto the linked user.
func Update(ctx context.Context, db *gorm.DB, id uuid.UUID, req dto.StudentUpdateRequest) (*model.StudentModel, error) {
	var out model.StudentModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		if req.Email != nil && *req.Email != out.Email {
			taken, err := emailInUse(tx, *req.Email, out.UserID)
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
		}

		req.ApplyUpdate(&out)
		if err := tx.Save(&out).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.UserModel{}).Where("id = ?", out.UserID).Updates(map[string]any{
			"first_name": out.FirstName,
			"last_name":  out.LastName,
			"email":      out.Email,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &out, nil
}

// Delete removes the owning user; the profile goes with it through ON DELETE CASCADE.
func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s model.StudentModel
		if err := tx.Select("id, user_id").Where("id = ?", id).Take(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}
		return tx.Where("id = ?", s.UserID).Delete(&userModel.UserModel{}).Error
	})
}
