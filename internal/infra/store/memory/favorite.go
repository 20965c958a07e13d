package memory

import (
	"context"
	"sync"

	"stayhub/internal/domain/favorite"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

type favoriteKey struct {
	userID     uuid.UUID
	propertyID uuid.UUID
}

type FavoriteStore struct {
	mu    sync.RWMutex
	byKey map[favoriteKey]*favorite.Favorite
	clock clock.Clock
}

var _ store.FavoriteStore = (*FavoriteStore)(nil)

func NewFavoriteStore(clk clock.Clock) *FavoriteStore {
	return &FavoriteStore{
		byKey: make(map[favoriteKey]*favorite.Favorite),
		clock: clk,
	}
}

func (s *FavoriteStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*favorite.Favorite, 0)
	for key, f := range s.byKey {
		if key.userID == userID {
			cp := *f
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (s *FavoriteStore) IsFavorite(_ context.Context, userID, propertyID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byKey[favoriteKey{userID, propertyID}]
	return ok, nil
}

func (s *FavoriteStore) Add(_ context.Context, userID, propertyID uuid.UUID) (*favorite.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID, propertyID}
	if existing, ok := s.byKey[key]; ok {
		cp := *existing
		return &cp, nil
	}

	f := &favorite.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  s.clock.Now(),
	}
	s.byKey[key] = f

	cp := *f
	return &cp, nil
}

func (s *FavoriteStore) Remove(_ context.Context, userID, propertyID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID, propertyID}
	if _, ok := s.byKey[key]; !ok {
		return infra.WrapRepoErr("favorite not found", nil, infra.KindNotFound)
	}
	delete(s.byKey, key)
	return nil
}

func (s *FavoriteStore) DeleteByProperty(_ context.Context, propertyID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.byKey {
		if key.propertyID == propertyID {
			delete(s.byKey, key)
			removed++
		}
	}
	return removed, nil
}
