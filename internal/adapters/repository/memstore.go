package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory TokenStore for tests and local runs. Safe for
// concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

var _ TokenStore = (*MemStore)(nil)

// NewMemStore creates an empty in-memory token store.
func NewMemStore() *MemStore {
	return &MemStore{tokens: make(map[string]string)}
}

// Get returns the token stored for id, or ErrNotFound.
func (s *MemStore) Get(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return token, nil
}

// Put stores token under id.
func (s *MemStore) Put(_ context.Context, id, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[id] = token
	return nil
}

// Delete removes the association for id. Absent ids succeed.
func (s *MemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, id)
	return nil
}

// Len reports the number of stored associations.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
