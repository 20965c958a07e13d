// Package booking holds the central entity of the reservation engine.
//
// A booking is created directly as confirmed (no pending-approval workflow)
// and mutates exactly once, by a one-way transition to cancelled. The user
// visible status is derived on every read: a non-cancelled booking whose
// checkout is strictly in the past reads as completed even though the stored
// status still says confirmed.
package booking

import (
	"time"

	"stayhub/internal/pkg/dates"

	"github.com/google/uuid"
)

type Booking struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	UserID     uuid.UUID
	// Check-in and check-out are calendar-date strings, stored as-is to
	// avoid time-of-day ambiguity. CheckIn < CheckOut strictly.
	CheckIn  string
	CheckOut string
	Guests   int
	// TotalPrice is computed once at creation as nights x pricePerNight and
	// never recomputed, even if the property's price later changes.
	TotalPrice float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveStatus derives the status a reader observes at the given time.
// Cancelled stays cancelled. A booking with an unparseable checkout keeps
// its stored status rather than failing the read.
func (b *Booking) EffectiveStatus(now time.Time) Status {
	if b.Status == StatusCancelled {
		return StatusCancelled
	}
	out, err := dates.Parse(b.CheckOut)
	if err != nil {
		return b.Status
	}
	if now.After(out) {
		return StatusCompleted
	}
	return b.Status
}

// Normalized returns a copy with Status replaced by the effective status.
// The stored record is never mutated; derivation is recomputed on every
// read, never cached.
func (b *Booking) Normalized(now time.Time) *Booking {
	cp := *b
	cp.Status = b.EffectiveStatus(now)
	return &cp
}
