package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/school/school_info/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

func SchoolInfoRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSchoolInfoController(db, v)

	r.Get("/school-info", ctl.Get)

	write := append(authMiddleware.Require(db, helpersAuth.ActSchoolInfoWrite, constants.RoleErrorAdmin("school info")), ctl.Update)
	r.Put("/school-info", write...)
	r.Patch("/school-info", write...)
}
