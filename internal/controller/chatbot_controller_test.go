package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/pkg/serverutils"
	"video-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatbotService struct {
	chatReq    *dto.ChatRequest
	summaryErr error
}

func (s *stubChatbotService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	s.chatReq = req
	return &dto.ChatResponse{Response: "ok"}, nil
}

func (s *stubChatbotService) GetVideoSummary(ctx context.Context, req *dto.VideoSummaryRequest) (*dto.VideoSummaryResponse, error) {
	if s.summaryErr != nil {
		return nil, s.summaryErr
	}
	return &dto.VideoSummaryResponse{Response: "summary", Source: "transcript"}, nil
}

func newChatbotApp(svc service.IChatbotService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatbotController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postJSON(app *fiber.App, path, body string) (int, string) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	raw, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(raw)
}

func TestChatValidation(t *testing.T) {
	svc := &stubChatbotService{}
	app := newChatbotApp(svc)

	t.Run("history missing", func(t *testing.T) {
		status, body := postJSON(app, "/api/gemini/chat", `{"message":"hi"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"History must be an array"}`, body)
	})

	t.Run("history not an array", func(t *testing.T) {
		status, body := postJSON(app, "/api/gemini/chat", `{"message":"hi","history":"nope"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"History must be an array"}`, body)
	})

	t.Run("message not a string", func(t *testing.T) {
		status, body := postJSON(app, "/api/gemini/chat", `{"message":42,"history":[]}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"Message must be a string"}`, body)
	})

	t.Run("valid request", func(t *testing.T) {
		status, body := postJSON(app, "/api/gemini/chat",
			`{"message":"hi","history":[{"content":"a","role":"user"}],"videoContext":[{"id":"1","title":"T","url":"u"}]}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"response":"ok"}`, body)

		require.NotNil(t, svc.chatReq)
		assert.Equal(t, "hi", svc.chatReq.Message)
		require.Len(t, svc.chatReq.History, 1)
		assert.Equal(t, "user", svc.chatReq.History[0].Role)
		require.Len(t, svc.chatReq.VideoContext, 1)
	})
}

func TestGetVideoSummaryValidation(t *testing.T) {
	t.Run("missing video id", func(t *testing.T) {
		app := newChatbotApp(&stubChatbotService{})
		status, body := postJSON(app, "/api/gemini/getVideoSummary", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.JSONEq(t, `{"error":"Video ID is required"}`, body)
	})

	t.Run("unavailable video", func(t *testing.T) {
		app := newChatbotApp(&stubChatbotService{summaryErr: service.ErrVideoUnavailable})
		status, body := postJSON(app, "/api/gemini/getVideoSummary", `{"videoId":"abc"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body, "Unable to fetch video information")
	})

	t.Run("success", func(t *testing.T) {
		app := newChatbotApp(&stubChatbotService{})
		status, body := postJSON(app, "/api/gemini/getVideoSummary", `{"videoId":"abc"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"response":"summary","source":"transcript"}`, body)
	})
}
