// Package memory provides the transient in-process store backend. Records
// do not survive a restart; the backend exists for local runs and tests.
//
// Stores are constructed objects with an explicit lifecycle, never package
// globals, so every test gets an isolated instance. All maps are guarded for
// concurrent use.
package memory

import (
	"context"
	"sync"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*booking.Booking
	clock clock.Clock
}

var _ store.BookingStore = (*BookingStore)(nil)

func NewBookingStore(clk clock.Clock) *BookingStore {
	return &BookingStore{
		byID:  make(map[uuid.UUID]*booking.Booking),
		clock: clk,
	}
}

func (s *BookingStore) Create(_ context.Context, fields store.NewBooking) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	b := &booking.Booking{
		ID:         uuid.New(),
		PropertyID: fields.PropertyID,
		UserID:     fields.UserID,
		CheckIn:    fields.CheckIn,
		CheckOut:   fields.CheckOut,
		Guests:     fields.Guests,
		TotalPrice: fields.TotalPrice,
		Status:     fields.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.byID[b.ID] = b

	return copyBooking(b), nil
}

func (s *BookingStore) GetByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return copyBooking(b), nil
}

func (s *BookingStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*booking.Booking, 0)
	for _, b := range s.byID {
		if b.UserID == userID {
			result = append(result, copyBooking(b))
		}
	}
	return result, nil
}

func (s *BookingStore) ListByProperty(_ context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*booking.Booking, 0)
	for _, b := range s.byID {
		if b.PropertyID == propertyID {
			result = append(result, copyBooking(b))
		}
	}
	return result, nil
}

func (s *BookingStore) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	b.Status = status
	b.UpdatedAt = s.clock.Now()

	return copyBooking(b), nil
}

func (s *BookingStore) DeleteByProperty(_ context.Context, propertyID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, b := range s.byID {
		if b.PropertyID == propertyID {
			delete(s.byID, id)
			removed++
		}
	}
	return removed, nil
}

// copyBooking keeps callers from reaching the store-owned record.
func copyBooking(b *booking.Booking) *booking.Booking {
	cp := *b
	return &cp
}
