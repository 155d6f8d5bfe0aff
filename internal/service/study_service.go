package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"studybuddy-be/internal/constant"
	"studybuddy-be/internal/dto"
	"studybuddy-be/internal/entity"
	"studybuddy-be/internal/pkg/apperrors"
	"studybuddy-be/internal/pkg/logger"
	"studybuddy-be/internal/repository/memory"
	"studybuddy-be/internal/repository/specification"
	"studybuddy-be/internal/repository/unitofwork"
	"studybuddy-be/pkg/events"
	"studybuddy-be/pkg/llm"

	"github.com/google/uuid"
)

const (
	studyMaxTokens   = 1024
	studyTemperature = 0.7
)

// TextFetcher obtains the plain-text content of stored files, one output
// per input path, in order.
type TextFetcher interface {
	FetchTexts(ctx context.Context, bucket string, paths []string) ([]string, error)
}

type IStudyService interface {
	CreateSession(ctx context.Context, request *dto.CreateStudySessionRequest) (*dto.CreateStudySessionResponse, error)
	GetSession(ctx context.Context, sessionType, sessionId string) (*dto.StudySessionResponse, error)
}

type studyService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessionRepo      *memory.SessionRepository
	fetcher          TextFetcher
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger
	bucket           string
}

func NewStudyService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	fetcher TextFetcher,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
	bucket string,
) IStudyService {
	return &studyService{
		uowFactory:       uowFactory,
		sessionRepo:      sessionRepo,
		fetcher:          fetcher,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           sysLogger,
		bucket:           bucket,
	}
}

// instructionFor selects the instruction header for an option. Total over
// the option space: unrecognized options (and "other" without a custom
// prompt) fall back to the generic analyze instruction.
func instructionFor(option, customPrompt string) string {
	switch option {
	case constant.StudyOptionFlashcards:
		return constant.FlashcardsInstruction
	case constant.StudyOptionSummarize:
		return constant.SummarizeInstruction
	case constant.StudyOptionQuiz:
		return constant.QuizInstruction
	case constant.StudyOptionOther:
		if customPrompt != "" {
			return customPrompt
		}
		return constant.AnalyzeInstruction
	default:
		return constant.AnalyzeInstruction
	}
}

// sessionTitle derives "Flashcards Session" style titles from the option.
func sessionTitle(option string) string {
	words := strings.Fields(option)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		for j := 1; j < len(r); j++ {
			r[j] = unicode.ToLower(r[j])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ") + " Session"
}

func (s *studyService) CreateSession(ctx context.Context, request *dto.CreateStudySessionRequest) (*dto.CreateStudySessionResponse, error) {
	texts, err := s.fetcher.FetchTexts(ctx, s.bucket, request.Files)
	if err != nil {
		return nil, err
	}

	header := instructionFor(request.Option, request.CustomPrompt)
	prompt := strings.Join(append([]string{header}, texts...), "\n\n")

	messages := make([]llm.Message, 0, 2)
	if request.Option == constant.StudyOptionQuiz {
		// Redundant with the header on purpose, to raise format compliance.
		messages = append(messages, llm.Message{
			Role:    constant.ChatMessageRoleSystem,
			Content: constant.QuizSystemInstruction,
		})
	}
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: prompt,
	})

	output, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(studyTemperature),
		llm.WithMaxTokens(studyMaxTokens),
	)
	if err != nil {
		return nil, apperrors.NewUpstreamCompletion(err)
	}

	session := &entity.StudySession{
		Id:        uuid.New(),
		Type:      request.Option,
		Title:     sessionTitle(request.Option),
		Result:    wrapResult(output),
		CreatedAt: time.Now(),
	}

	// Volatile copy first: it serves the immediate follow-up read even if
	// the durable write below fails.
	s.sessionRepo.Save(session)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.StudySessionRepository().Create(ctx, session); err != nil {
		// Known consistency gap: the durable copy may lag the volatile one.
		// The id is still returned so the client can read what we have.
		writeErr := &apperrors.StorageWriteError{Err: err}
		s.logger.Error("study", "durable session write failed", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      writeErr.Error(),
		})
	}

	s.publishCreated(ctx, session, request.ProjectId)

	return &dto.CreateStudySessionResponse{
		SessionId: session.Id.String(),
	}, nil
}

func (s *studyService) publishCreated(ctx context.Context, session *entity.StudySession, projectId string) {
	event := events.NewStudySessionCreated(session.Id.String(), session.Type, projectId)
	if err := s.publisherService.Publish(ctx, event); err != nil {
		s.logger.Warn("study", "failed to publish "+events.TypeStudySessionCreated, map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}
}

// wrapResult keeps valid JSON output as-is and wraps everything else as
// {"text": "<raw output>"}. Parse failure is expected here, never an error.
func wrapResult(output string) json.RawMessage {
	trimmed := strings.TrimSpace(output)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	wrapped, err := json.Marshal(map[string]string{"text": output})
	if err != nil {
		// Marshalling a string map cannot fail; keep the compiler happy.
		return json.RawMessage(`{"text":""}`)
	}
	return json.RawMessage(wrapped)
}

func (s *studyService) GetSession(ctx context.Context, sessionType, sessionId string) (*dto.StudySessionResponse, error) {
	// Fast path: the volatile copy, valid only when the type matches.
	if session, ok := s.sessionRepo.Get(sessionId); ok && session.Type == sessionType {
		return sessionToResponse(session), nil
	}

	id, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, &apperrors.NotFoundError{Resource: "study session", Id: sessionId}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.StudySessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ByType{Type: sessionType},
	)
	if err != nil {
		return nil, &apperrors.StorageQueryError{Err: err}
	}
	if session == nil {
		return nil, &apperrors.NotFoundError{Resource: "study session", Id: sessionId}
	}

	return sessionToResponse(session), nil
}

func sessionToResponse(session *entity.StudySession) *dto.StudySessionResponse {
	return &dto.StudySessionResponse{
		Id:     session.Id.String(),
		Type:   session.Type,
		Title:  session.Title,
		Result: session.Result,
	}
}
