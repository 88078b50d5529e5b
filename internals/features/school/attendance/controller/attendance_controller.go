package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/features/school/attendance/dto"
	"dancebook_backend/internals/features/school/attendance/service"
	helper "dancebook_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AttendanceController{DB: db, Validate: v}
}

func attendanceFail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrClassNotFound), errors.Is(err, service.ErrAttendanceNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrAttendanceExists):
		return helper.JsonFieldError(c, "student_id", err.Error())
	}
	return helper.Escalate(c, "attendance", err)
}

// GET /api/classes/:id/attendance
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return attendanceFail(c, err)
	}
	rows, err := service.ListForClass(helper.ReqCtx(c), ctl.DB, classID)
	if err != nil {
		return attendanceFail(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// POST /api/classes/:id/attendance
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return attendanceFail(c, err)
	}
	var req dto.AttendanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := service.Create(helper.ReqCtx(c), ctl.DB, classID, req)
	if err != nil {
		return attendanceFail(c, err)
	}
	return helper.JsonCreated(c, "Attendance recorded", dto.FromModel(m))
}

// GET /api/classes/:id/attendance/:student_id
func (ctl *AttendanceController) Get(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return attendanceFail(c, err)
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return attendanceFail(c, err)
	}
	m, err := service.Get(helper.ReqCtx(c), ctl.DB, classID, studentID)
	if err != nil {
		return attendanceFail(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// PATCH /api/classes/:id/attendance/:student_id
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return attendanceFail(c, err)
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return attendanceFail(c, err)
	}
	var req dto.AttendanceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(ctl.Validate, req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := service.Update(helper.ReqCtx(c), ctl.DB, classID, studentID, req)
	if err != nil {
		return attendanceFail(c, err)
	}
	return helper.JsonUpdated(c, "Attendance updated", dto.FromModel(m))
}

// DELETE /api/classes/:id/attendance/:student_id
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return attendanceFail(c, err)
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return attendanceFail(c, err)
	}
	if err := service.Delete(helper.ReqCtx(c), ctl.DB, classID, studentID); err != nil {
		return attendanceFail(c, err)
	}
	return helper.JsonDeleted(c)
}
