package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"studybuddy-be/internal/dto"
	"studybuddy-be/internal/pkg/apperrors"
	"studybuddy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubStudyService struct {
	createRes *dto.CreateStudySessionResponse
	createErr error
	getRes    *dto.StudySessionResponse
	getErr    error

	gotCreate *dto.CreateStudySessionRequest
	gotType   string
	gotId     string
}

func (s *stubStudyService) CreateSession(ctx context.Context, request *dto.CreateStudySessionRequest) (*dto.CreateStudySessionResponse, error) {
	s.gotCreate = request
	return s.createRes, s.createErr
}

func (s *stubStudyService) GetSession(ctx context.Context, sessionType, sessionId string) (*dto.StudySessionResponse, error) {
	s.gotType = sessionType
	s.gotId = sessionId
	return s.getRes, s.getErr
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newStudyApp(svc *stubStudyService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	api := app.Group("/api")
	NewStudyController(svc).RegisterRoutes(api)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return out
}

func TestCreateSessionEndpoint(t *testing.T) {
	svc := &stubStudyService{
		createRes: &dto.CreateStudySessionResponse{SessionId: "abc-123"},
	}
	app := newStudyApp(svc)

	req := httptest.NewRequest("POST", "/api/ai-study",
		strings.NewReader(`{"projectId":"p1","files":["notes.txt"],"option":"quiz"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "abc-123", body["sessionId"])
	assert.Equal(t, "p1", svc.gotCreate.ProjectId)
	assert.Equal(t, []string{"notes.txt"}, svc.gotCreate.Files)
	assert.Equal(t, "quiz", svc.gotCreate.Option)
}

func TestCreateSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing files", body: `{"projectId":"p1","option":"quiz"}`},
		{name: "missing option", body: `{"projectId":"p1","files":[]}`},
		{name: "missing project id", body: `{"files":[],"option":"quiz"}`},
		{name: "malformed json", body: `{"projectId":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubStudyService{}
			app := newStudyApp(svc)

			req := httptest.NewRequest("POST", "/api/ai-study", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Nil(t, svc.gotCreate, "service must not be called on invalid input")

			body := decodeBody(t, resp.Body)
			assert.NotEmpty(t, body["detail"])
		})
	}
}

func TestCreateSessionEmptyFilesAccepted(t *testing.T) {
	svc := &stubStudyService{
		createRes: &dto.CreateStudySessionResponse{SessionId: "abc-123"},
	}
	app := newStudyApp(svc)

	req := httptest.NewRequest("POST", "/api/ai-study",
		strings.NewReader(`{"projectId":"p1","files":[],"option":"summarize"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, svc.gotCreate)
	assert.Empty(t, svc.gotCreate.Files)
}

func TestCreateSessionUpstreamError(t *testing.T) {
	svc := &stubStudyService{
		createErr: apperrors.NewUpstreamCompletion(errors.New("rate limited")),
	}
	app := newStudyApp(svc)

	req := httptest.NewRequest("POST", "/api/ai-study",
		strings.NewReader(`{"projectId":"p1","files":["a.txt"],"option":"quiz"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "OpenAI error: rate limited", body["detail"])
}

func TestGetSessionEndpoint(t *testing.T) {
	svc := &stubStudyService{
		getRes: &dto.StudySessionResponse{
			Id:     "abc-123",
			Type:   "quiz",
			Title:  "Quiz Session",
			Result: json.RawMessage(`{"text":"q1"}`),
		},
	}
	app := newStudyApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/study-session/quiz/abc-123", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "quiz", svc.gotType)
	assert.Equal(t, "abc-123", svc.gotId)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "abc-123", body["id"])
	assert.Equal(t, "Quiz Session", body["title"])
}

func TestGetSessionNotFoundMapsTo404(t *testing.T) {
	svc := &stubStudyService{
		getErr: &apperrors.NotFoundError{Resource: "study session", Id: "missing-id"},
	}
	app := newStudyApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/study-session/quiz/missing-id", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "study session missing-id not found", body["detail"])
}

func TestGetSessionStorageErrorMapsTo500(t *testing.T) {
	svc := &stubStudyService{
		getErr: &apperrors.StorageQueryError{Err: errors.New("connection refused")},
	}
	app := newStudyApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/study-session/quiz/abc-123", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
