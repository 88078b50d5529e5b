package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/features/school/instructors/dto"
	"dancebook_backend/internals/features/school/instructors/model"
	helper "dancebook_backend/internals/helpers"
)

const msgInstructorEmailTaken = "An instructor with this email already exists."

type InstructorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *cache.RedisCache
}

func NewInstructorController(db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) *InstructorController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &InstructorController{DB: db, Validate: v, Cache: rc}
}

func (ctl *InstructorController) emailTaken(tx *gorm.DB, email string, except uuid.UUID) (bool, error) {
	var n int64
	err := tx.Model(&model.InstructorModel{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(email), except).
		Count(&n).Error
	return n > 0, err
}

func (ctl *InstructorController) findByID(c *fiber.Ctx) (*model.InstructorModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.InstructorModel
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Instructor not found.")
		}
		return nil, err
	}
	return &m, nil
}

func dbFail(c *fiber.Ctx, op string, err error) error {
	return helper.Escalate(c, "instructor "+op, err)
}

/* =========================== LIST =========================== */

// GET /api/instructors?search=&page=&per_page=
func (ctl *InstructorController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "last_name", "asc", helper.DefaultOpts)

	tx := ctl.DB.WithContext(helper.ReqCtx(c)).Model(&model.InstructorModel{})
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(specialization) LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return dbFail(c, "count", err)
	}

	order := p.OrderClause(map[string]string{
		"last_name":      "last_name",
		"first_name":     "first_name",
		"specialization": "specialization",
	}, "last_name")

	var rows []model.InstructorModel
	if err := tx.Order(order).Order("id").Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return dbFail(c, "list", err)
	}
	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &meta)
}

/* =========================== DETAIL =========================== */

func (ctl *InstructorController) Get(c *fiber.Ctx) error {
	m, err := ctl.findByID(c)
	if err != nil {
		return dbFail(c, "get", err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

/* =========================== CREATE =========================== */

func (ctl *InstructorController) Create(c *fiber.Ctx) error {
	var req dto.InstructorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m := req.ToModel()
	err := ctl.DB.WithContext(helper.ReqCtx(c)).Transaction(func(tx *gorm.DB) error {
		taken, err := ctl.emailTaken(tx, m.Email, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return fiber.NewError(fiber.StatusBadRequest, msgInstructorEmailTaken)
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) || isEmailTaken(err) {
			return helper.JsonFieldError(c, "email", msgInstructorEmailTaken)
		}
		return dbFail(c, "create", err)
	}
	return helper.JsonCreated(c, "Instructor created", dto.FromModel(m))
}

func isEmailTaken(err error) bool {
	var fe *fiber.Error
	return errors.As(err, &fe) && fe.Message == msgInstructorEmailTaken
}

/* =========================== PATCH =========================== */

func (ctl *InstructorController) Update(c *fiber.Ctx) error {
	m, err := ctl.findByID(c)
	if err != nil {
		return dbFail(c, "get", err)
	}

	var req dto.InstructorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	req.ApplyUpdate(m)
	err = ctl.DB.WithContext(helper.ReqCtx(c)).Transaction(func(tx *gorm.DB) error {
		if req.Email != nil {
			taken, err := ctl.emailTaken(tx, m.Email, m.ID)
			if err != nil {
				return err
			}
			if taken {
				return fiber.NewError(fiber.StatusBadRequest, msgInstructorEmailTaken)
			}
		}
		return tx.Save(m).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) || isEmailTaken(err) {
			return helper.JsonFieldError(c, "email", msgInstructorEmailTaken)
		}
		return dbFail(c, "update", err)
	}
	ctl.Cache.InvalidateReports(helper.ReqCtx(c))
	return helper.JsonUpdated(c, "Instructor updated", dto.FromModel(m))
}

/* =========================== DELETE =========================== */

// Deleting an instructor cascades to their classes and those classes' bookings.
func (ctl *InstructorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return dbFail(c, "delete", err)
	}
	res := ctl.DB.WithContext(helper.ReqCtx(c)).Where("id = ?", id).Delete(&model.InstructorModel{})
	if res.Error != nil {
		return dbFail(c, "delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Instructor not found.")
	}
	ctl.Cache.InvalidateReports(helper.ReqCtx(c))
	return helper.JsonDeleted(c)
}
