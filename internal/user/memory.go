package user

import (
	"context"
	"sync"
)

// MemoryStore keeps users in process memory. It backs the scaffold's
// zero-dependency mode and the handler tests.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) Create(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Email]; ok {
		return ErrExists
	}
	s.users[u.Email] = *u
	return nil
}

func (s *MemoryStore) ByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
