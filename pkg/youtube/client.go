package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const DefaultAPIBaseURL = "https://www.googleapis.com/youtube/v3"

// ExtractVideoID pulls the "v" parameter out of a watch URL.
func ExtractVideoID(youtubeUrl string) (string, error) {
	u, err := url.Parse(youtubeUrl)
	if err != nil {
		return "", fmt.Errorf("invalid YouTube URL: %w", err)
	}
	videoId := u.Query().Get("v")
	if videoId == "" {
		return "", fmt.Errorf("Invalid YouTube URL: Missing 'v' parameter")
	}
	return videoId, nil
}

// ExtractPlaylistID pulls the "list" parameter out of a playlist URL.
func ExtractPlaylistID(playlistUrl string) (string, error) {
	u, err := url.Parse(playlistUrl)
	if err != nil {
		return "", fmt.Errorf("invalid YouTube playlist URL: %w", err)
	}
	playlistId := u.Query().Get("list")
	if playlistId == "" {
		return "", fmt.Errorf("Invalid YouTube playlist URL: Missing 'list' parameter")
	}
	return playlistId, nil
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoId string) string {
	return "https://www.youtube.com/watch?v=" + videoId
}

// Client talks to the YouTube Data API v3.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultAPIBaseURL,
		httpClient: &http.Client{},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type videoListResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			ResourceId struct {
				VideoId string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// GetVideoTitle fetches the snippet title for a single video.
func (c *Client) GetVideoTitle(ctx context.Context, videoId string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("YouTube API key is not configured")
	}

	apiUrl := fmt.Sprintf("%s/videos?part=snippet&id=%s&key=%s", c.baseURL, url.QueryEscape(videoId), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		return "", err
	}

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
		return "", fmt.Errorf("Failed to fetch YouTube video details: %d %s", res.StatusCode, string(resBody))
	}

	var data videoListResponse
	if err := json.Unmarshal(resBody, &data); err != nil {
		return "", err
	}

	if len(data.Items) == 0 || data.Items[0].Snippet.Title == "" {
		return "", fmt.Errorf("Invalid YouTube video data received")
	}

	return data.Items[0].Snippet.Title, nil
}

// FetchPlaylistVideoURLs pages through playlistItems and returns the watch
// URL of every video in the playlist, in playlist order.
func (c *Client) FetchPlaylistVideoURLs(ctx context.Context, playlistId string) ([]string, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is not configured")
	}

	videos := make([]string, 0)
	pageToken := ""

	for {
		apiUrl := fmt.Sprintf("%s/playlistItems?part=snippet&playlistId=%s&maxResults=50&key=%s",
			c.baseURL, url.QueryEscape(playlistId), url.QueryEscape(c.apiKey))
		if pageToken != "" {
			apiUrl += "&pageToken=" + url.QueryEscape(pageToken)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
		if err != nil {
			return nil, err
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		resBody, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("Failed to fetch playlist items: %s", res.Status)
		}

		var data playlistItemsResponse
		if err := json.Unmarshal(resBody, &data); err != nil {
			return nil, err
		}

		for _, item := range data.Items {
			videos = append(videos, WatchURL(item.Snippet.ResourceId.VideoId))
		}

		if data.NextPageToken == "" {
			break
		}
		pageToken = data.NextPageToken
	}

	return videos, nil
}
