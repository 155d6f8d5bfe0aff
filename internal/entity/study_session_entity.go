package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StudySession is one persisted AI-generation outcome. Sessions are
// immutable after creation; there is no update or delete path.
type StudySession struct {
	Id        uuid.UUID
	Type      string
	Title     string
	Result    json.RawMessage
	CreatedAt time.Time
}
