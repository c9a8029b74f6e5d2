package controller

import (
	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/pkg/serverutils"
	"video-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSession(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/createSession", c.CreateSession)
	h.Get("/getAllSession", c.GetAllSession)
}

func (c *sessionController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Please enter a name")
	}
	if req.Name == "" {
		return serverutils.BadRequest("Please enter a name")
	}

	res, err := c.sessionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"session": res})
}

func (c *sessionController) GetAllSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.sessionService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"sessions": res})
}
