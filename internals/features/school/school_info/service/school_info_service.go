package service

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dancebook_backend/internals/features/school/school_info/dto"
	"dancebook_backend/internals/features/school/school_info/model"
)

const provisionSQL = `INSERT INTO school_info (singleton) VALUES (TRUE) ON CONFLICT (singleton) DO NOTHING`

func load(tx *gorm.DB, lock bool) (*model.SchoolInfoModel, error) {
	if err := tx.Exec(provisionSQL).Error; err != nil {
		return nil, err
	}
	q := tx.Where("singleton = ?", true)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m model.SchoolInfoModel
	if err := q.Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Get returns the school info row, provisioning it with column defaults on first use.
func Get(ctx context.Context, db *gorm.DB) (*model.SchoolInfoModel, error) {
	var out *model.SchoolInfoModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := load(tx, false)
		out = m
		return err
	})
	return out, err
}

func Update(ctx context.Context, db *gorm.DB, req dto.SchoolInfoUpdateRequest) (*model.SchoolInfoModel, error) {
	var out *model.SchoolInfoModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := load(tx, true)
		if err != nil {
			return err
		}
		if !req.Empty() {
			changes := req.Changes()
			changes["updated_at"] = gorm.Expr("NOW()")
			if err := tx.Model(&model.SchoolInfoModel{}).
				Where("singleton = ?", true).
				Updates(changes).Error; err != nil {
				return err
			}
			if m, err = load(tx, false); err != nil {
				return err
			}
		}
		out = m
		return nil
	})
	return out, err
}
