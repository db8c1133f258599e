package storage

import (
	"context"
	"sync"

	"melodia-server-go/internal/domain/user"
)

// MemoryUserStore is the default credential store: a mutex-guarded map
// living for the process lifetime. Records are copied on the way in and
// out so callers cannot mutate stored state through shared pointers.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]user.User
	order []string
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]user.User),
	}
}

func (s *MemoryUserStore) FindAll(_ context.Context) ([]*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*user.User, 0, len(s.order))
	for _, id := range s.order {
		if u, ok := s.users[id]; ok {
			cp := u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (s *MemoryUserStore) FindByLogin(_ context.Context, login string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if u, ok := s.users[id]; ok && u.Login == login {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) Insert(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; !exists {
		s.order = append(s.order, u.ID)
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) Update(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; !exists {
		s.order = append(s.order, u.ID)
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
