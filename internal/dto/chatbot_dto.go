package dto

// ChatHistoryItem is one prior turn of the client-held conversation. Chat
// state lives only in the browser; the full history is resent per request.
type ChatHistoryItem struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// VideoContextItem tells the assistant which videos are attached to the note
// the user is chatting about.
type VideoContextItem struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Url   string `json:"url"`
}

type ChatRequest struct {
	Message      string             `json:"message"`
	History      []ChatHistoryItem  `json:"history"`
	VideoContext []VideoContextItem `json:"videoContext"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type VideoSummaryRequest struct {
	VideoId string `json:"videoId"`
}

type VideoSummaryResponse struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}
