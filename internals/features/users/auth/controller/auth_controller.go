package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/features/users/auth/service"
	helper "dancebook_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AuthController{DB: db, Validate: v}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, ac.Validate, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, ac.Validate, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	return service.Me(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, ac.Validate, c)
}
