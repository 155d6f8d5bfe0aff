package dto

// QnaRequest is the /api/qna request body. History entries are treated as
// already-formatted user turns, oldest first.
type QnaRequest struct {
	Prompt  string   `json:"prompt" validate:"required"`
	History []string `json:"history"`
}

type QnaResponse struct {
	Response string `json:"response"`
}
