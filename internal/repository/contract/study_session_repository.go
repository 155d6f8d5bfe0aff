package contract

import (
	"context"

	"studybuddy-be/internal/entity"
	"studybuddy-be/internal/repository/specification"
)

// StudySessionRepository is the durable store for generated sessions.
// Sessions are insert-only; no update or delete is defined.
type StudySessionRepository interface {
	Create(ctx context.Context, session *entity.StudySession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudySession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
