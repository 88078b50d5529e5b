package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/school/payments/dto"
	"dancebook_backend/internals/features/school/payments/model"
	"dancebook_backend/internals/features/school/payments/service"
	studentService "dancebook_backend/internals/features/users/students/service"
	helper "dancebook_backend/internals/helpers"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Now      func() time.Time
}

func NewPaymentController(db *gorm.DB, v *validator.Validate) *PaymentController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &PaymentController{DB: db, Validate: v, Now: time.Now}
}

func paymentFail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound), errors.Is(err, studentService.ErrStudentProfileNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, service.ErrPaymentNotFound.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		return helper.JsonFieldError(c, "student_id", "Invalid pk - object does not exist.")
	case errors.Is(err, service.ErrNotPending), errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Escalate(c, "payments", err)
}

// scope: admins see every payment, everyone else only their own student's.
func (ctl *PaymentController) scope(c *fiber.Ctx) (service.Scope, error) {
	id := authMiddleware.IdentityFrom(c)
	if id.Role == constants.RoleAdmin {
		return service.Scope{}, nil
	}
	s, err := studentService.FindByUserID(helper.ReqCtx(c), ctl.DB, id.UserID)
	if err != nil {
		return service.Scope{}, err
	}
	return service.Scope{StudentID: &s.ID}, nil
}

// GET /api/payments
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	var q dto.ListPaymentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if errs := helper.ValidateStruct(ctl.Validate, q); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	scope, err := ctl.scope(c)
	if errors.Is(err, studentService.ErrStudentProfileNotFound) {
		meta := helper.BuildMeta(0, p)
		return helper.JsonList(c, "ok", []dto.PaymentResponse{}, &meta)
	}
	if err != nil {
		return paymentFail(c, err)
	}

	rows, total, err := service.List(helper.ReqCtx(c), ctl.DB, scope, q, p)
	if err != nil {
		return paymentFail(c, err)
	}
	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &meta)
}

// GET /api/payments/:id
func (ctl *PaymentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return paymentFail(c, err)
	}
	scope, err := ctl.scope(c)
	if err != nil {
		return paymentFail(c, err)
	}
	m, err := service.Get(helper.ReqCtx(c), ctl.DB, scope, id)
	if err != nil {
		return paymentFail(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST /api/payments
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.MergeFieldErrors(helper.ValidateStruct(ctl.Validate, req), req.Check()); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	m := req.ToModel()
	if err := service.Create(helper.ReqCtx(c), ctl.DB, m); err != nil {
		if helper.IsForeignKeyViolation(err) {
			return paymentFail(c, service.ErrStudentNotFound)
		}
		return paymentFail(c, err)
	}
	return helper.JsonCreated(c, "Payment created", dto.FromModel(m))
}

// PATCH /api/payments/:id
func (ctl *PaymentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return paymentFail(c, err)
	}
	var req dto.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Malformed request body")
	}
	req.Normalize()
	if errs := helper.MergeFieldErrors(helper.ValidateStruct(ctl.Validate, req), req.Check()); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	m, err := service.Update(helper.ReqCtx(c), ctl.DB, id, req)
	if err != nil {
		return paymentFail(c, err)
	}
	return helper.JsonUpdated(c, "Payment updated", dto.FromModel(m))
}

// DELETE /api/payments/:id
func (ctl *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return paymentFail(c, err)
	}
	if err := service.Delete(helper.ReqCtx(c), ctl.DB, id); err != nil {
		return paymentFail(c, err)
	}
	return helper.JsonDeleted(c)
}

func (ctl *PaymentController) transition(next model.PaymentStatus, msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := helper.ParseUUIDParam(c, "id")
		if err != nil {
			return paymentFail(c, err)
		}
		m, err := service.Transition(helper.ReqCtx(c), ctl.DB, id, next, ctl.Now())
		if err != nil {
			return paymentFail(c, err)
		}
		return helper.JsonOK(c, msg, dto.FromModel(m))
	}
}

// POST /api/payments/:id/complete
func (ctl *PaymentController) Complete(c *fiber.Ctx) error {
	return ctl.transition(model.PaymentCompleted, "Payment completed")(c)
}

// POST /api/payments/:id/fail
func (ctl *PaymentController) Fail(c *fiber.Ctx) error {
	return ctl.transition(model.PaymentFailed, "Payment marked as failed")(c)
}

// POST /api/payments/:id/refund
func (ctl *PaymentController) Refund(c *fiber.Ctx) error {
	return ctl.transition(model.PaymentRefunded, "Payment refunded")(c)
}
