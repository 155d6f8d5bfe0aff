package memory

import (
	"encoding/json"
	"testing"
	"time"

	"studybuddy-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()

	session := &entity.StudySession{
		Id:        uuid.New(),
		Type:      "quiz",
		Title:     "Quiz Session",
		Result:    json.RawMessage(`{"text":"1. What is ATP?"}`),
		CreatedAt: time.Now(),
	}
	repo.Save(session)

	got, found := repo.Get(session.Id.String())
	assert.True(t, found)
	assert.Equal(t, session, got)

	_, found = repo.Get(uuid.NewString())
	assert.False(t, found)
}
