package session

import (
	"context"
	"sync"
	"time"
)

type MemoryStore struct {
	sessions sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, sess Session) error {
	s.sessions.Store(sess.RefreshToken, sess)
	return nil
}

// Get treats expired sessions as absent and evicts them on the way out.
func (s *MemoryStore) Get(_ context.Context, refreshToken string) (Session, error) {
	v, ok := s.sessions.Load(refreshToken)
	if !ok {
		return Session{}, ErrNotFound
	}
	sess := v.(Session)
	if time.Now().After(sess.ExpiresAt) {
		s.sessions.Delete(refreshToken)
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, refreshToken string) error {
	if _, ok := s.sessions.Load(refreshToken); !ok {
		return ErrNotFound
	}
	s.sessions.Delete(refreshToken)
	return nil
}
