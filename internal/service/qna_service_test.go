package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studybuddy-be/internal/constant"
	"studybuddy-be/internal/dto"
	"studybuddy-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestAskBuildsUserTurns(t *testing.T) {
	fake := &fakeLLM{output: "mitochondria"}
	svc := NewQnaService(fake)

	res, err := svc.Ask(context.Background(), &dto.QnaRequest{
		Prompt:  "what is the powerhouse of the cell?",
		History: []string{"tell me about cells", "they have organelles"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "mitochondria", res.Response)

	messages := fake.lastMessages()
	assert.Len(t, messages, 3)
	for _, m := range messages {
		assert.Equal(t, constant.ChatMessageRoleUser, m.Role)
	}
	assert.Equal(t, "tell me about cells", messages[0].Content)
	assert.Equal(t, "they have organelles", messages[1].Content)
	assert.Equal(t, "what is the powerhouse of the cell?", messages[2].Content)
}

func TestAskWithoutHistory(t *testing.T) {
	fake := &fakeLLM{output: "42"}
	svc := NewQnaService(fake)

	res, err := svc.Ask(context.Background(), &dto.QnaRequest{Prompt: "meaning of life?"})
	assert.NoError(t, err)
	assert.Equal(t, "42", res.Response)
	assert.Len(t, fake.lastMessages(), 1)
}

func TestAskUpstreamFailure(t *testing.T) {
	fake := &fakeLLM{err: errors.New("rate limited")}
	svc := NewQnaService(fake)

	_, err := svc.Ask(context.Background(), &dto.QnaRequest{Prompt: "anything"})

	var upstream *apperrors.UpstreamCompletionError
	assert.True(t, errors.As(err, &upstream), "want UpstreamCompletionError, got %v", err)
	assert.True(t, strings.HasPrefix(err.Error(), "OpenAI error: "), "got %q", err.Error())
	assert.Contains(t, err.Error(), "rate limited")
}
