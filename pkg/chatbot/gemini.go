package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type GeminiChatParts struct {
	Text string `json:"text"`
}

type GeminiChatContent struct {
	Parts []*GeminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type GeminiChatRequest struct {
	Contents []*GeminiChatContent `json:"contents"`
}

type GeminiChatCandidate struct {
	Content *GeminiChatContent `json:"content"`
}

type GeminiChatResponse struct {
	Candidates []*GeminiChatCandidate `json:"candidates"`
}

// ChatHistory is one prior turn, resent by the client on every call.
type ChatHistory struct {
	Chat string
	Role string
}

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// GeminiClient is a stateless generateContent client. Every call carries the
// full conversation; nothing is remembered between requests.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// NewGeminiClientWithBaseURL is used by tests to point at a stub server.
func NewGeminiClientWithBaseURL(apiKey, model, baseURL string) *GeminiClient {
	c := NewGeminiClient(apiKey, model)
	c.baseURL = baseURL
	return c
}

// SendMessage seeds a chat with the supplied history, appends the message as
// the final user turn and returns the model's text response.
func (c *GeminiClient) SendMessage(ctx context.Context, history []*ChatHistory, message string) (string, error) {
	chatContents := make([]*GeminiChatContent, 0, len(history)+1)
	for _, turn := range history {
		chatContents = append(chatContents, &GeminiChatContent{
			Parts: []*GeminiChatParts{
				{
					Text: turn.Chat,
				},
			},
			Role: turn.Role,
		})
	}
	chatContents = append(chatContents, &GeminiChatContent{
		Parts: []*GeminiChatParts{{Text: message}},
		Role:  ChatMessageRoleUser,
	})

	payload := GeminiChatRequest{
		Contents: chatContents,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model),
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiChatResponse
	err = json.Unmarshal(resBody, &geminiRes)
	if err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}
