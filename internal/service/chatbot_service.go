package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/pkg/chatbot"
	"video-notetaking-be/pkg/youtube"

	gocache "github.com/patrickmn/go-cache"
)

const (
	summarySourceTranscript = "transcript"
	summarySourceMetadata   = "metadata"

	// Transcripts and metadata are immutable for practical purposes;
	// memoize them so repeated summary requests skip the scrape.
	videoInfoCacheTTL = 15 * time.Minute
)

// ChatClient is the generative backend; satisfied by chatbot.GeminiClient.
type ChatClient interface {
	SendMessage(ctx context.Context, history []*chatbot.ChatHistory, message string) (string, error)
}

// VideoInfoSource yields transcript and metadata for a video; satisfied by
// youtube.Scraper.
type VideoInfoSource interface {
	FetchTranscript(ctx context.Context, videoId string) (string, error)
	FetchMetadata(ctx context.Context, videoId string) (*youtube.VideoMetadata, error)
}

type IChatbotService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetVideoSummary(ctx context.Context, req *dto.VideoSummaryRequest) (*dto.VideoSummaryResponse, error)
}

type chatbotService struct {
	chatClient ChatClient
	videoInfo  VideoInfoSource
	cache      *gocache.Cache
}

func NewChatbotService(chatClient ChatClient, videoInfo VideoInfoSource, cache *gocache.Cache) IChatbotService {
	return &chatbotService{
		chatClient: chatClient,
		videoInfo:  videoInfo,
		cache:      cache,
	}
}

func (s *chatbotService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	// Prefix the note's video list so the model can ground answers in them
	contextMessage := ""
	if len(req.VideoContext) > 0 {
		lines := make([]string, 0, len(req.VideoContext))
		for _, video := range req.VideoContext {
			lines = append(lines, fmt.Sprintf("- %s: %s", video.Title, video.Url))
		}
		contextMessage = "\n\nContext from videos in this note:\n" + strings.Join(lines, "\n") + "\n\n"
	}

	history := make([]*chatbot.ChatHistory, 0, len(req.History))
	for _, item := range req.History {
		history = append(history, &chatbot.ChatHistory{
			Chat: item.Content,
			Role: item.Role,
		})
	}

	response, err := s.chatClient.SendMessage(ctx, history, contextMessage+req.Message)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{Response: response}, nil
}

func (s *chatbotService) GetVideoSummary(ctx context.Context, req *dto.VideoSummaryRequest) (*dto.VideoSummaryResponse, error) {
	prompt, source := s.buildSummaryPrompt(ctx, req.VideoId)
	if prompt == "" {
		return nil, ErrVideoUnavailable
	}

	response, err := s.chatClient.SendMessage(ctx, nil, prompt)
	if err != nil {
		return nil, err
	}

	return &dto.VideoSummaryResponse{
		Response: response,
		Source:   source,
	}, nil
}

// buildSummaryPrompt prefers the transcript and falls back to scraped
// title/description. An empty prompt means neither was available.
func (s *chatbotService) buildSummaryPrompt(ctx context.Context, videoId string) (string, string) {
	if transcript := s.fetchTranscript(ctx, videoId); strings.TrimSpace(transcript) != "" {
		prompt := fmt.Sprintf(
			"Here is the transcript of the video:\n%s\n\nPlease provide a concise summary of the video based on this transcript.\nFocus on the key points and main ideas discussed in the video.",
			transcript,
		)
		return prompt, summarySourceTranscript
	}

	metadata := s.fetchMetadata(ctx, videoId)
	if metadata == nil {
		return "", ""
	}

	prompt := fmt.Sprintf(
		"Here is the information about a YouTube video:\n\nTitle: %s\nDescription: %s\n\nPlease provide a concise summary of what this video is about based on the title and description.\nFocus on the main topic and key points that would be covered in this video.\nIf the description is very short or generic, focus on what can be inferred from the title.",
		metadata.Title,
		metadata.Description,
	)
	return prompt, summarySourceMetadata
}

func (s *chatbotService) fetchTranscript(ctx context.Context, videoId string) string {
	cacheKey := "transcript:" + videoId
	if s.cache != nil {
		if cached, found := s.cache.Get(cacheKey); found {
			return cached.(string)
		}
	}

	transcript, err := s.videoInfo.FetchTranscript(ctx, videoId)
	if err != nil {
		// Missing captions are a normal condition, fall through to metadata
		return ""
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, transcript, videoInfoCacheTTL)
	}
	return transcript
}

func (s *chatbotService) fetchMetadata(ctx context.Context, videoId string) *youtube.VideoMetadata {
	cacheKey := "metadata:" + videoId
	if s.cache != nil {
		if cached, found := s.cache.Get(cacheKey); found {
			return cached.(*youtube.VideoMetadata)
		}
	}

	metadata, err := s.videoInfo.FetchMetadata(ctx, videoId)
	if err != nil {
		return nil
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, metadata, videoInfoCacheTTL)
	}
	return metadata
}
