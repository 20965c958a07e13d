package memory

import (
	"context"
	"sort"
	"sync"

	"stayhub/internal/domain/notification"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

type NotificationStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*notification.Notification
	clock clock.Clock
}

var _ store.NotificationStore = (*NotificationStore)(nil)

func NewNotificationStore(clk clock.Clock) *NotificationStore {
	return &NotificationStore{
		byID:  make(map[uuid.UUID]*notification.Notification),
		clock: clk,
	}
}

func (s *NotificationStore) Create(_ context.Context, fields store.NewNotification) (*notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	n := &notification.Notification{
		ID:        uuid.New(),
		UserID:    fields.UserID,
		Type:      fields.Type,
		Title:     fields.Title,
		Message:   fields.Message,
		Link:      fields.Link,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byID[n.ID] = n

	return copyNotification(n), nil
}

func (s *NotificationStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*notification.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*notification.Notification, 0)
	for _, n := range s.byID {
		if n.UserID == userID {
			result = append(result, copyNotification(n))
		}
	}
	// Most recent first.
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *NotificationStore) UnreadCount(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.byID {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, userID, id uuid.UUID) (*notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.byID[id]
	if !ok || n.UserID != userID {
		return nil, infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}

	n.Read = true
	n.UpdatedAt = s.clock.Now()

	return copyNotification(n), nil
}

func (s *NotificationStore) MarkAllRead(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	count := 0
	for _, n := range s.byID {
		if n.UserID == userID && !n.Read {
			n.Read = true
			n.UpdatedAt = now
			count++
		}
	}
	return count, nil
}

func copyNotification(n *notification.Notification) *notification.Notification {
	cp := *n
	return &cp
}
