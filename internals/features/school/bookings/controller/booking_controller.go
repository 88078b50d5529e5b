package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/features/school/bookings/dto"
	"dancebook_backend/internals/features/school/bookings/service"
	studentService "dancebook_backend/internals/features/users/students/service"
	helper "dancebook_backend/internals/helpers"
)

type BookingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.BookingService
}

func NewBookingController(db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) *BookingController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &BookingController{DB: db, Validate: v, Service: service.NewBookingService(db, rc)}
}

// callerStudentID resolves the caller's student profile.
func (ctl *BookingController) callerStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	s, err := studentService.FindByUserID(helper.ReqCtx(c), ctl.DB, userID)
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID, nil
}

// writeError maps engine outcomes: capacity and duplicates are field errors on class_id,
// anything not owned by the caller is a plain 404.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrDuplicateBooking),
		errors.Is(err, service.ErrClassNotFound):
		return helper.JsonFieldError(c, "class_id", err.Error())
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, studentService.ErrStudentProfileNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Escalate(c, "booking", err)
}

// GET /api/bookings?status=
func (ctl *BookingController) List(c *fiber.Ctx) error {
	var q dto.ListBookingsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	if errs := helper.ValidateStruct(ctl.Validate, q); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	p := helper.ParseFiber(c, "booking_date", "desc", helper.DefaultOpts)

	studentID, err := ctl.callerStudentID(c)
	if errors.Is(err, studentService.ErrStudentProfileNotFound) {
		meta := helper.BuildMeta(0, p)
		return helper.JsonList(c, "ok", []dto.BookingResponse{}, &meta)
	}
	if err != nil {
		return writeError(c, err)
	}

	rows, total, err := ctl.Service.ListForStudent(helper.ReqCtx(c), studentID, q.Status, p)
	if err != nil {
		return writeError(c, err)
	}
	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &meta)
}

// GET /api/bookings/:id
func (ctl *BookingController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	studentID, err := ctl.callerStudentID(c)
	if err != nil {
		return writeError(c, err)
	}
	b, err := ctl.Service.GetForStudent(helper.ReqCtx(c), id, studentID)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(b))
}

// POST /api/bookings {"class_id": "..."}
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	var req dto.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	classID, _ := uuid.Parse(req.ClassID)

	studentID, err := ctl.callerStudentID(c)
	if err != nil {
		return writeError(c, err)
	}

	b, err := ctl.Service.Create(helper.ReqCtx(c), studentID, classID)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonCreated(c, "Booking confirmed", dto.FromModel(b))
}

// DELETE /api/bookings/:id cancels; the row is kept.
func (ctl *BookingController) Cancel(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	studentID, err := ctl.callerStudentID(c)
	if err != nil {
		return writeError(c, err)
	}
	if _, err := ctl.Service.Cancel(helper.ReqCtx(c), id, studentID); err != nil {
		return writeError(c, err)
	}
	return helper.JsonDeleted(c)
}
