package memory

import (
	"context"
	"sync"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
	clock   clock.Clock
}

var _ store.UserStore = (*UserStore)(nil)

func NewUserStore(clk clock.Clock) *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
		clock:   clk,
	}
}

func (s *UserStore) Create(_ context.Context, fields store.NewUser) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[fields.Email]; exists {
		return nil, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}

	now := s.clock.Now()
	u := &user.User{
		ID:           uuid.New(),
		FullName:     fields.FullName,
		Email:        fields.Email,
		Role:         fields.Role,
		PasswordHash: fields.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID

	return copyUser(u), nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return copyUser(s.byID[id]), nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return copyUser(u), nil
}

func copyUser(u *user.User) *user.User {
	cp := *u
	return &cp
}
