package controller

import (
	"errors"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/pkg/serverutils"
	"video-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	CreateNote(ctx *fiber.Ctx) error
	GetNotesBySession(ctx *fiber.Ctx) error
	UpdateNote(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/createNote", c.CreateNote)
	h.Get("/getNotesBySession", c.GetNotesBySession)
	h.Put("/updateNote", c.UpdateNote)
}

func (c *noteController) CreateNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Missing session_id")
	}
	if req.SessionId == uuid.Nil {
		return serverutils.BadRequest("Missing session_id")
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotOwned) {
			return serverutils.Forbidden(err.Error())
		}
		return err
	}

	return ctx.JSON(fiber.Map{"note": res})
}

func (c *noteController) GetNotesBySession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	sessionIdStr := ctx.Query("session_id")
	if sessionIdStr == "" {
		return serverutils.BadRequest("Missing session_id")
	}
	sessionId, err := uuid.Parse(sessionIdStr)
	if err != nil {
		return serverutils.BadRequest("Missing session_id")
	}

	res, err := c.noteService.GetBySession(ctx.Context(), userId, sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotOwned) {
			return serverutils.Forbidden(err.Error())
		}
		return err
	}

	return ctx.JSON(fiber.Map{"notes": res})
}

func (c *noteController) UpdateNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Missing required fields")
	}
	if req.Id == uuid.Nil || req.Content == "" {
		return serverutils.BadRequest("Missing required fields")
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotOwned) {
			return serverutils.Forbidden(err.Error())
		}
		return err
	}

	return ctx.JSON(fiber.Map{"note": res})
}
