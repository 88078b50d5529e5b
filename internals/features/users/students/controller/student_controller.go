package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/features/users/students/dto"
	"dancebook_backend/internals/features/users/students/service"
	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/helpers/dbtime"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *cache.RedisCache
}

func NewStudentController(db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) *StudentController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &StudentController{DB: db, Validate: v, Cache: rc}
}

func (ctl *StudentController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrStudentProfileNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return helper.JsonFieldError(c, "email", err.Error())
	}
	return helper.Escalate(c, "students", err)
}

/* =========================
   SELF PROFILE
   ========================= */

// GET /api/student/profile
func (ctl *StudentController) Profile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	s, err := service.FindByUserID(helper.ReqCtx(c), ctl.DB, userID)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(s))
}

// PATCH /api/student/profile
func (ctl *StudentController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Email = nil
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	ctx := helper.ReqCtx(c)
	s, err := service.FindByUserID(ctx, ctl.DB, userID)
	if err != nil {
		return ctl.fail(c, err)
	}
	updated, err := service.Update(ctx, ctl.DB, s.ID, req)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonUpdated(c, "Profile updated", dto.FromModel(updated))
}

/* =========================
   ADMIN / STAFF
   ========================= */

// GET /api/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	var q dto.ListStudentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	p := helper.ParseFiber(c, "last_name", "asc", helper.AdminOpts)

	rows, total, err := service.List(helper.ReqCtx(c), ctl.DB, q, p)
	if err != nil {
		return ctl.fail(c, err)
	}
	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &meta)
}

// GET /api/students/:id
func (ctl *StudentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return ctl.fail(c, err)
	}
	s, err := service.FindByID(helper.ReqCtx(c), ctl.DB, id)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(s))
}

// POST /api/students creates the login account together with the profile.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	dob, err := dbtime.ParseDate(req.DateOfBirth)
	if err != nil {
		return helper.JsonFieldError(c, "date_of_birth", "Date has wrong format. Use 2006-01-02.")
	}

	_, s, err := service.CreateWithUser(helper.ReqCtx(c), ctl.DB, service.NewStudent{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
	})
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonCreated(c, "Student created", dto.FromModel(s))
}

// PATCH /api/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return ctl.fail(c, err)
	}
	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	s, err := service.Update(helper.ReqCtx(c), ctl.DB, id, req)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonUpdated(c, "Student updated", dto.FromModel(s))
}

// DELETE /api/students/:id
// The student's bookings cascade away, so cached reports are dropped too.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return ctl.fail(c, err)
	}
	ctx := helper.ReqCtx(c)
	if err := service.Delete(ctx, ctl.DB, id); err != nil {
		return ctl.fail(c, err)
	}
	ctl.Cache.InvalidateReports(ctx)
	return helper.JsonDeleted(c)
}
