package dto

import "encoding/json"

// CreateStudySessionRequest is the /api/ai-study request body. Files must
// be present but may be empty; an empty list produces a prompt with only
// the instruction header.
type CreateStudySessionRequest struct {
	ProjectId    string   `json:"projectId" validate:"required"`
	Files        []string `json:"files" validate:"required"`
	Option       string   `json:"option" validate:"required"`
	CustomPrompt string   `json:"customPrompt"`
}

type CreateStudySessionResponse struct {
	SessionId string `json:"sessionId"`
}

// StudySessionResponse is the full stored session returned by the
// retrieval endpoint. Result is either the model output parsed as JSON or
// {"text": "<raw output>"} when the output was not valid JSON.
type StudySessionResponse struct {
	Id     string          `json:"id"`
	Type   string          `json:"type"`
	Title  string          `json:"title"`
	Result json.RawMessage `json:"result"`
}
