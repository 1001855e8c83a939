package controller

import (
	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/serverutils"
	"customer-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)
	h.Get("/me", authMiddleware, c.Me)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body: " + err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// Login accepts form-encoded credentials with the password-grant field
// names (username carries the email).
func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body: " + err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals(serverutils.CurrentUserKey).(*entity.User)
	if !ok {
		return apperror.Unauthenticated("Not authenticated")
	}
	return ctx.JSON(&dto.UserResponse{
		Id:    user.Id,
		Email: user.Email,
	})
}
