package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/features/school/school_info/dto"
	"dancebook_backend/internals/features/school/school_info/service"
	helper "dancebook_backend/internals/helpers"
)

type SchoolInfoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolInfoController(db *gorm.DB, v *validator.Validate) *SchoolInfoController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &SchoolInfoController{DB: db, Validate: v}
}

// GET /api/school-info
func (ctl *SchoolInfoController) Get(c *fiber.Ctx) error {
	m, err := service.Get(helper.ReqCtx(c), ctl.DB)
	if err != nil {
		return helper.Escalate(c, "load school info", err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// PUT|PATCH /api/school-info
func (ctl *SchoolInfoController) Update(c *fiber.Ctx) error {
	var req dto.SchoolInfoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := service.Update(helper.ReqCtx(c), ctl.DB, req)
	if err != nil {
		return helper.Escalate(c, "update school info", err)
	}
	return helper.JsonUpdated(c, "School info updated", dto.FromModel(m))
}
