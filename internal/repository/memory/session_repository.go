package memory

import (
	"studybuddy-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the volatile first-check copy of generated study
// sessions. It is lost on restart and never authoritative: the durable
// store is consulted whenever an id is absent here or its type mismatches.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions are never evicted or updated; ids are unique per creation
	// so keys never collide.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.StudySession) {
	r.cache.Set(session.Id.String(), session, cache.NoExpiration)
}

func (r *SessionRepository) Get(sessionId string) (*entity.StudySession, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.StudySession), true
	}
	return nil, false
}
