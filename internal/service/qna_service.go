package service

import (
	"context"

	"studybuddy-be/internal/constant"
	"studybuddy-be/internal/dto"
	"studybuddy-be/internal/pkg/apperrors"
	"studybuddy-be/pkg/llm"
)

const qnaMaxTokens = 512

type IQnaService interface {
	Ask(ctx context.Context, request *dto.QnaRequest) (*dto.QnaResponse, error)
}

type qnaService struct {
	llmProvider llm.LLMProvider
}

func NewQnaService(llmProvider llm.LLMProvider) IQnaService {
	return &qnaService{
		llmProvider: llmProvider,
	}
}

func (s *qnaService) Ask(ctx context.Context, request *dto.QnaRequest) (*dto.QnaResponse, error) {
	// Every history entry becomes a user turn; no role alternation is
	// reconstructed from the flat history the client keeps.
	messages := make([]llm.Message, 0, len(request.History)+1)
	for _, entry := range request.History {
		messages = append(messages, llm.Message{
			Role:    constant.ChatMessageRoleUser,
			Content: entry,
		})
	}
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: request.Prompt,
	})

	answer, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(studyTemperature),
		llm.WithMaxTokens(qnaMaxTokens),
	)
	if err != nil {
		return nil, apperrors.NewUpstreamCompletion(err)
	}

	return &dto.QnaResponse{Response: answer}, nil
}
