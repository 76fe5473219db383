package chat

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	convs map[string][]Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{convs: make(map[string][]Message)}
}

func (s *MemoryStore) Append(_ context.Context, id, role, content string) error {
	s.mu.Lock()
	s.convs[id] = append(s.convs[id], Message{Role: role, Content: content})
	s.mu.Unlock()
	return nil
}

// Get returns a copy so callers cannot mutate stored history.
func (s *MemoryStore) Get(_ context.Context, id string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs, ok := s.convs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]Message(nil), msgs...), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.convs[id]; !ok {
		return ErrNotFound
	}
	delete(s.convs, id)
	return nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	s.convs = make(map[string][]Message)
	s.mu.Unlock()
	return nil
}
