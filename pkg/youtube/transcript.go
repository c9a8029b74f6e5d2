package youtube

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
)

const watchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var (
	captionTracksRe = regexp.MustCompile(`"captionTracks":\[\{"baseUrl":"([^"]+)"`)
	transcriptTagRe = regexp.MustCompile(`(?s)<text[^>]*>(.*?)</text>`)
	titleRe         = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	metaDescRe      = regexp.MustCompile(`(?i)<meta[^>]*name="description"[^>]*content="([^"]*)"`)
	ogDescRe        = regexp.MustCompile(`(?i)<meta[^>]*property="og:description"[^>]*content="([^"]*)"`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// VideoMetadata is the scraped fallback when a video has no captions.
type VideoMetadata struct {
	Title       string
	Description string
}

// Scraper pulls transcripts and public metadata off the watch page. YouTube
// exposes neither through the Data API without OAuth, so this mirrors what
// the caption-scraping libraries do: find the captionTracks baseUrl in the
// player config blob and fetch the timedtext document behind it.
type Scraper struct {
	baseURL    string
	httpClient *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		baseURL:    "https://www.youtube.com",
		httpClient: &http.Client{},
	}
}

// NewScraperWithBaseURL is used by tests to point the scraper at a stub server.
func NewScraperWithBaseURL(baseURL string) *Scraper {
	s := NewScraper()
	s.baseURL = baseURL
	return s
}

func (s *Scraper) fetchWatchPage(ctx context.Context, videoId string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/watch?v="+videoId, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", watchUserAgent)

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Failed to fetch video page: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchTranscript returns the caption text of a video joined with spaces, or
// an error when the video has no caption track (private, deleted, no CC).
func (s *Scraper) FetchTranscript(ctx context.Context, videoId string) (string, error) {
	page, err := s.fetchWatchPage(ctx, videoId)
	if err != nil {
		return "", err
	}

	m := captionTracksRe.FindStringSubmatch(page)
	if m == nil {
		return "", fmt.Errorf("no caption track available for video %s", videoId)
	}

	// The baseUrl sits inside a JSON string literal.
	trackUrl := strings.ReplaceAll(m[1], `\u0026`, "&")
	trackUrl = strings.ReplaceAll(trackUrl, `\/`, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackUrl, nil)
	if err != nil {
		return "", err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch caption track: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	lines := transcriptTagRe.FindAllStringSubmatch(string(body), -1)
	if len(lines) == 0 {
		return "", fmt.Errorf("empty caption track for video %s", videoId)
	}

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(html.UnescapeString(line[1]))
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

// FetchMetadata scrapes title and description off the public watch page.
func (s *Scraper) FetchMetadata(ctx context.Context, videoId string) (*VideoMetadata, error) {
	page, err := s.fetchWatchPage(ctx, videoId)
	if err != nil {
		return nil, err
	}

	title := "Unknown Title"
	if m := titleRe.FindStringSubmatch(page); m != nil {
		title = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), " - YouTube"))
	}

	description := "No description available"
	if m := metaDescRe.FindStringSubmatch(page); m != nil {
		description = m[1]
	} else if m := ogDescRe.FindStringSubmatch(page); m != nil {
		description = m[1]
	}

	description = cleanDescription(description)

	return &VideoMetadata{
		Title:       title,
		Description: description,
	}, nil
}

func cleanDescription(description string) string {
	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
	description = replacer.Replace(description)
	description = strings.TrimSpace(whitespaceRe.ReplaceAllString(description, " "))

	if len(description) > 500 {
		description = description[:500] + "..."
	}
	return description
}
