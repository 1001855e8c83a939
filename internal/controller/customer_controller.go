package controller

import (
	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/serverutils"
	"customer-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateEmail(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type customerController struct {
	customerService service.ICustomerService
}

func NewCustomerController(customerService service.ICustomerService) ICustomerController {
	return &customerController{
		customerService: customerService,
	}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customers")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Patch("/:id", c.UpdateEmail)
	h.Delete("/:id", c.Delete)
}

func (c *customerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body: " + err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, created, err := c.customerService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if created {
		return ctx.Status(fiber.StatusCreated).JSON(res)
	}
	return ctx.JSON(res)
}

func (c *customerController) List(ctx *fiber.Ctx) error {
	limit, offset, err := parsePagination(ctx)
	if err != nil {
		return err
	}

	res, err := c.customerService.List(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *customerController) Show(ctx *fiber.Ctx) error {
	id, err := parseCustomerId(ctx)
	if err != nil {
		return err
	}

	res, err := c.customerService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *customerController) UpdateEmail(ctx *fiber.Ctx) error {
	id, err := parseCustomerId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCustomerEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body: " + err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.customerService.UpdateEmail(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *customerController) Delete(ctx *fiber.Ctx) error {
	id, err := parseCustomerId(ctx)
	if err != nil {
		return err
	}

	if err := c.customerService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// Malformed ids can never match a row, so they read as absent.
func parseCustomerId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NotFound("Customer not found")
	}
	return id, nil
}
