package controller

import (
	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/serverutils"
	"customer-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	r.Post("/customers/:id/notes", authMiddleware, c.Create)
	r.Get("/customers/:id/notes", c.List)
	r.Put("/notes/:id", authMiddleware, c.Update)
	r.Delete("/notes/:id", authMiddleware, c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	customerId, err := parseCustomerId(ctx)
	if err != nil {
		return err
	}
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body: " + err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), customerId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	customerId, err := parseCustomerId(ctx)
	if err != nil {
		return err
	}

	limit, offset, err := parsePagination(ctx)
	if err != nil {
		return err
	}
	query := dto.ListNotesQuery{
		Limit:  limit,
		Offset: offset,
		Search: ctx.Query("search"),
	}

	res, err := c.noteService.List(ctx.Context(), customerId, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	noteId, err := parseNoteId(ctx)
	if err != nil {
		return err
	}
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body: " + err.Error())
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), noteId, userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	noteId, err := parseNoteId(ctx)
	if err != nil {
		return err
	}
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), noteId, userId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func parseNoteId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NotFound("Note not found")
	}
	return id, nil
}

// currentUserId reads the identity set by the auth middleware. A route
// reaching here without it is treated as unauthenticated, never a panic.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals(serverutils.UserIdKey).(string)
	if !ok {
		return uuid.Nil, apperror.Unauthenticated("Not authenticated")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Unauthenticated("Not authenticated")
	}
	return userId, nil
}
