package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/school/payments/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

// PaymentRoutes mounts /payments. Students read their own; admins manage all.
func PaymentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewPaymentController(db, v)

	g := r.Group("/payments", authMiddleware.AuthMiddleware(db))

	read := authMiddleware.Allow(helpersAuth.ActPaymentReadOwn)
	g.Get("/", read, ctl.List)
	g.Get("/:id", read, ctl.Get)

	manage := authMiddleware.Allow(helpersAuth.ActPaymentManage, constants.RoleErrorAdmin("payment management"))
	g.Post("/", manage, ctl.Create)
	g.Patch("/:id", manage, ctl.Update)
	g.Put("/:id", manage, ctl.Update)
	g.Delete("/:id", manage, ctl.Delete)
	g.Post("/:id/complete", manage, ctl.Complete)
	g.Post("/:id/fail", manage, ctl.Fail)
	g.Post("/:id/refund", manage, ctl.Refund)
}
