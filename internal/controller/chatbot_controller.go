package controller

import (
	"errors"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/pkg/serverutils"
	"video-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	GetVideoSummary(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

// RegisterRoutes deliberately skips the JWT middleware: the chat proxy keeps
// no per-user state and its clients call it without a session.
func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/gemini")
	h.Post("/chat", c.Chat)
	h.Post("/getVideoSummary", c.GetVideoSummary)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var raw struct {
		Message      interface{}            `json:"message"`
		History      interface{}            `json:"history"`
		VideoContext []dto.VideoContextItem `json:"videoContext"`
	}
	if err := ctx.BodyParser(&raw); err != nil {
		return serverutils.BadRequest("History must be an array")
	}

	history, ok := raw.History.([]interface{})
	if raw.History == nil || !ok {
		return serverutils.BadRequest("History must be an array")
	}

	message, ok := raw.Message.(string)
	if !ok || message == "" {
		return serverutils.BadRequest("Message must be a string")
	}

	req := dto.ChatRequest{
		Message:      message,
		VideoContext: raw.VideoContext,
	}
	for _, item := range history {
		turn, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		content, _ := turn["content"].(string)
		role, _ := turn["role"].(string)
		req.History = append(req.History, dto.ChatHistoryItem{Content: content, Role: role})
	}

	res, err := c.chatbotService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) GetVideoSummary(ctx *fiber.Ctx) error {
	var req dto.VideoSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Video ID is required")
	}
	if req.VideoId == "" {
		return serverutils.BadRequest("Video ID is required")
	}

	res, err := c.chatbotService.GetVideoSummary(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrVideoUnavailable) {
			return serverutils.BadRequest(err.Error())
		}
		return err
	}

	return ctx.JSON(res)
}
