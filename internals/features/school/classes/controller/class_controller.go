package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/features/school/classes/dto"
	"dancebook_backend/internals/features/school/classes/service"
	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/helpers/dbtime"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    *cache.RedisCache
}

func NewClassController(db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) *ClassController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ClassController{DB: db, Validate: v, Cache: rc}
}

func classFail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInstructorNotFound):
		return helper.JsonFieldError(c, "instructor_id", err.Error())
	case helper.IsCheckViolation(err):
		return helper.JsonError(c, fiber.StatusBadRequest, "Class violates constraint "+helper.ConstraintName(err))
	}
	return helper.Escalate(c, "classes", err)
}

/* =========================== LIST =========================== */

// GET /api/classes?style=&instructor_id=&from=&to=
func (ctl *ClassController) List(c *fiber.Ctx) error {
	var q dto.ListClassesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, q); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	p := helper.ParseFiber(c, "start_time", "asc", helper.DefaultOpts)

	ctx := helper.ReqCtx(c)
	rows, total, err := service.List(ctx, ctl.DB, q, p)
	if err != nil {
		return classFail(c, err)
	}
	data, err := service.ToResponses(ctx, ctl.DB, rows)
	if err != nil {
		return classFail(c, err)
	}
	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "ok", data, &meta)
}

/* =========================== DETAIL =========================== */

func (ctl *ClassController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return classFail(c, err)
	}
	ctx := helper.ReqCtx(c)
	m, err := service.Get(ctx, ctl.DB, id)
	if err != nil {
		return classFail(c, err)
	}
	resp, err := service.ToResponse(ctx, ctl.DB, m)
	if err != nil {
		return classFail(c, err)
	}
	return helper.JsonOK(c, "ok", resp)
}

// parseInstant accepts RFC 3339 or a plain date (midnight at the school).
func parseInstant(raw string, def time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(dbtime.DateLayout, raw, dbtime.SchoolLocation())
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// GET /api/classes/:id/occurrences?from=&to= (default: next 30 days)
func (ctl *ClassController) Occurrences(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return classFail(c, err)
	}
	now := time.Now().UTC()
	from, err := parseInstant(c.Query("from"), now)
	if err != nil {
		return helper.JsonFieldError(c, "from", "Use RFC 3339 or 2006-01-02.")
	}
	to, err := parseInstant(c.Query("to"), from.AddDate(0, 0, 30))
	if err != nil {
		return helper.JsonFieldError(c, "to", "Use RFC 3339 or 2006-01-02.")
	}

	m, err := service.Get(helper.ReqCtx(c), ctl.DB, id)
	if err != nil {
		return classFail(c, err)
	}
	occ, err := service.Occurrences(m, from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			return helper.JsonFieldError(c, "to", err.Error())
		}
		return classFail(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"class_id":    m.ID,
		"from":        from,
		"to":          to,
		"occurrences": occ,
	})
}

/* =========================== CREATE =========================== */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m := req.ToModel()
	if errs := dto.CheckClass(m); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	ctx := helper.ReqCtx(c)
	if err := service.Create(ctx, ctl.DB, m); err != nil {
		return classFail(c, err)
	}
	ctl.Cache.InvalidateReports(ctx)
	zap.L().Info("[CLASSES][CREATE] ✅ class created", zap.String("class_id", m.ID.String()))

	resp, err := service.ToResponse(ctx, ctl.DB, m)
	if err != nil {
		return classFail(c, err)
	}
	return helper.JsonCreated(c, "Class created", resp)
}

/* =========================== PATCH =========================== */

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return classFail(c, err)
	}
	var req dto.ClassUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	ctx := helper.ReqCtx(c)
	m, fieldErrs, err := service.Update(ctx, ctl.DB, id, req)
	if err != nil {
		return classFail(c, err)
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	ctl.Cache.InvalidateReports(ctx)

	resp, err := service.ToResponse(ctx, ctl.DB, m)
	if err != nil {
		return classFail(c, err)
	}
	return helper.JsonUpdated(c, "Class updated", resp)
}

/* =========================== DELETE =========================== */

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return classFail(c, err)
	}
	ctx := helper.ReqCtx(c)
	if err := service.Delete(ctx, ctl.DB, id); err != nil {
		return classFail(c, err)
	}
	ctl.Cache.InvalidateReports(ctx)
	return helper.JsonDeleted(c)
}
