package petstate

import (
	"context"
	"sync"

	"github.com/yungbote/petpal-backend/internal/domain/pet"
)

type scopeState struct {
	profile pet.Profile
	stats   pet.Stats
}

type memoryStore struct {
	mu     sync.Mutex
	scopes map[string]*scopeState
}

func NewMemoryStore() Store {
	return &memoryStore{scopes: make(map[string]*scopeState)}
}

// state must be called with mu held.
func (s *memoryStore) state(scope string) *scopeState {
	st, ok := s.scopes[scope]
	if !ok {
		st = &scopeState{profile: pet.DefaultProfile(), stats: pet.DefaultStats()}
		s.scopes[scope] = st
	}
	return st
}

func (s *memoryStore) GetProfile(_ context.Context, scope string) (pet.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(scope).profile, nil
}

func (s *memoryStore) SetProfile(_ context.Context, scope string, profile pet.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(scope).profile = profile
	return nil
}

func (s *memoryStore) GetStats(_ context.Context, scope string) (pet.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(scope).stats, nil
}

func (s *memoryStore) SetStats(_ context.Context, scope string, stats pet.Stats) (pet.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(scope)
	st.stats = stats.Normalize()
	return st.stats, nil
}

func (s *memoryStore) AddScore(_ context.Context, scope string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(scope)
	st.stats = st.stats.AddScore(delta)
	return st.stats.Score, nil
}

func (s *memoryStore) AddHunger(_ context.Context, scope string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(scope)
	st.stats = st.stats.AddHunger(delta)
	return st.stats.Hunger, nil
}

func (s *memoryStore) ResetStats(_ context.Context, scope string) (pet.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(scope)
	st.stats = pet.DefaultStats()
	return st.stats, nil
}
