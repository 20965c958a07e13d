//go:build unit

package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/infra/store"
	"stayhub/internal/infra/store/memory"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifyCall struct {
	UserID uuid.UUID
	Kind   string
	Title  string
}

// fakeNotifier records deliveries; it can be told to fail to prove that
// notification failures never fail the booking operation.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, userID uuid.UUID, kind, title, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, notifyCall{UserID: userID, Kind: kind, Title: title})
	return nil
}

func (f *fakeNotifier) Calls() []notifyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notifyCall(nil), f.calls...)
}

type bookingFixture struct {
	uc         BookingUseCase
	bookings   *memory.BookingStore
	properties *memory.PropertyStore
	notifier   *fakeNotifier
	clock      *clock.MockClock
	hostID     uuid.UUID
	guestID    uuid.UUID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	clk := clock.NewMockClock(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	notifier := &fakeNotifier{}
	bookings := memory.NewBookingStore(clk)
	properties := memory.NewPropertyStore(clk)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &bookingFixture{
		uc:         NewBookingUseCase(bookings, properties, notifier, clk, logger),
		bookings:   bookings,
		properties: properties,
		notifier:   notifier,
		clock:      clk,
		hostID:     uuid.New(),
		guestID:    uuid.New(),
	}
}

func (f *bookingFixture) createProperty(t *testing.T, pricePerNight float64, maxGuests int) *property.Property {
	t.Helper()

	prop, err := f.properties.Create(context.Background(), store.NewProperty{
		HostID:        f.hostID,
		Title:         "Seaside Cabin",
		Location:      "Lisbon",
		PricePerNight: pricePerNight,
		PropertyType:  property.TypeCabin,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     maxGuests,
	})
	require.NoError(t, err)
	return prop
}

func TestBookingUseCase_Preview(t *testing.T) {
	t.Run("quotes nights times nightly rate for an open stay", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		preview, err := f.uc.Preview(context.Background(), prop.ID, "2025-06-01", "2025-06-04", 2)

		require.NoError(t, err)
		assert.True(t, preview.Available)
		assert.Equal(t, 100.0, preview.PricePerNight)
		assert.Equal(t, 3, preview.Nights)
		assert.Equal(t, 300.0, preview.TotalPrice)
	})

	t.Run("still quotes the price when dates are taken", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		preview, err := f.uc.Preview(context.Background(), prop.ID, "2025-06-03", "2025-06-05", 2)

		require.NoError(t, err)
		assert.False(t, preview.Available)
		assert.Equal(t, 2, preview.Nights)
		assert.Equal(t, 200.0, preview.TotalPrice)
	})

	t.Run("rejects before touching availability", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		tests := []struct {
			name     string
			checkIn  string
			checkOut string
			guests   int
			wantErr  error
		}{
			{"unknown property", "2025-06-01", "2025-06-04", 2, ErrPropertyNotFound},
			{"malformed check-in", "junk", "2025-06-04", 2, ErrInvalidDates},
			{"check-out before check-in", "2025-06-04", "2025-06-01", 2, ErrInvalidDates},
			{"equal dates", "2025-06-01", "2025-06-01", 2, ErrInvalidDates},
			{"zero guests", "2025-06-01", "2025-06-04", 0, ErrInvalidGuests},
			{"guests over capacity", "2025-06-01", "2025-06-04", 5, ErrGuestsExceedCapacity},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				id := prop.ID
				if tt.wantErr == ErrPropertyNotFound {
					id = uuid.New()
				}
				_, err := f.uc.Preview(context.Background(), id, tt.checkIn, tt.checkOut, tt.guests)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	t.Run("creates a confirmed booking with the price locked in", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, created.Status)
		assert.Equal(t, 300.0, created.TotalPrice)
		assert.Equal(t, "2025-06-01", created.CheckIn)
		assert.Equal(t, "2025-06-04", created.CheckOut)
		assert.Equal(t, f.guestID, created.UserID)
	})

	t.Run("accepts RFC3339 timestamps and stores calendar dates", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID,
			"2025-06-01T00:00:00Z", "2025-06-04T00:00:00Z", 2)

		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", created.CheckIn)
		assert.Equal(t, "2025-06-04", created.CheckOut)
	})

	t.Run("rejects an overlapping stay", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		_, err = f.uc.CreateBooking(context.Background(), uuid.New(), prop.ID, "2025-06-03", "2025-06-06", 2)
		assert.ErrorIs(t, err, ErrNotAvailable)
	})

	t.Run("allows back to back stays sharing a boundary date", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		_, err = f.uc.CreateBooking(context.Background(), uuid.New(), prop.ID, "2025-06-04", "2025-06-07", 2)
		assert.NoError(t, err)
	})

	t.Run("cancelled bookings free their dates", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		first, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)
		_, err = f.uc.CancelBooking(context.Background(), f.guestID, first.ID, false)
		require.NoError(t, err)

		_, err = f.uc.CreateBooking(context.Background(), uuid.New(), prop.ID, "2025-06-02", "2025-06-05", 2)
		assert.NoError(t, err)
	})

	t.Run("capacity check fires before the availability check", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 5)

		assert.ErrorIs(t, err, ErrGuestsExceedCapacity)
		list, lerr := f.bookings.ListByProperty(context.Background(), prop.ID)
		require.NoError(t, lerr)
		assert.Empty(t, list)
	})

	t.Run("zero max guests means no declared capacity", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 0)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 12)
		assert.NoError(t, err)
	})

	t.Run("requires a property id", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, uuid.Nil, "2025-06-01", "2025-06-04", 2)
		assert.ErrorIs(t, err, ErrPropertyRequired)
	})

	t.Run("total price does not change when the property price changes later", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		newPrice := 250.0
		_, err = f.properties.Update(context.Background(), prop.ID, store.PropertyPatch{PricePerNight: &newPrice})
		require.NoError(t, err)

		got, err := f.uc.GetBooking(context.Background(), f.guestID, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 300.0, got.TotalPrice)
	})

	t.Run("notifies the host when someone else books", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		calls := f.notifier.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, f.hostID, calls[0].UserID)
		assert.Equal(t, booking.EventConfirmed, calls[0].Kind)
	})

	t.Run("does not notify when the host books their own property", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.hostID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		assert.Empty(t, f.notifier.Calls())
	})

	t.Run("notification failure does not fail the booking", func(t *testing.T) {
		f := newBookingFixture(t)
		f.notifier.err = assert.AnError
		prop := f.createProperty(t, 100, 4)

		created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, created.Status)
	})

	t.Run("exactly one of many concurrent overlapping creations wins", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		const attempts = 16
		var wg sync.WaitGroup
		errCh := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.uc.CreateBooking(context.Background(), uuid.New(), prop.ID, "2025-06-01", "2025-06-04", 2)
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		var successes, conflicts int
		for err := range errCh {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrNotAvailable):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, attempts-1, conflicts)
	})
}

func TestBookingUseCase_CancelBooking(t *testing.T) {
	t.Run("owner cancels and the transition sticks", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		cancelled, err := f.uc.CancelBooking(context.Background(), f.guestID, created.ID, false)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status)

		// Cancelled wins over completed even once the checkout passes.
		f.clock.Set(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
		got, err := f.uc.GetBooking(context.Background(), f.guestID, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, got.Status)
	})

	t.Run("cancelling twice is a no-op that keeps updatedAt", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		first, err := f.uc.CancelBooking(context.Background(), f.guestID, created.ID, false)
		require.NoError(t, err)
		callsAfterFirst := len(f.notifier.Calls())

		f.clock.Advance(48 * time.Hour)
		second, err := f.uc.CancelBooking(context.Background(), f.guestID, created.ID, false)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, second.Status)
		assert.True(t, second.UpdatedAt.Equal(first.UpdatedAt))
		assert.Len(t, f.notifier.Calls(), callsAfterFirst)
	})

	t.Run("non-owner cannot cancel, admin can", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		stranger := uuid.New()
		_, err = f.uc.CancelBooking(context.Background(), stranger, created.ID, false)
		assert.ErrorIs(t, err, ErrNotBookingOwner)

		cancelled, err := f.uc.CancelBooking(context.Background(), stranger, created.ID, true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.CancelBooking(context.Background(), f.guestID, uuid.New(), false)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestBookingUseCase_StatusDerivation(t *testing.T) {
	f := newBookingFixture(t)
	prop := f.createProperty(t, 100, 4)

	created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
	require.NoError(t, err)

	readStatus := func(t *testing.T) booking.Status {
		t.Helper()
		got, err := f.uc.GetBooking(context.Background(), f.guestID, created.ID, false)
		require.NoError(t, err)
		return got.Status
	}

	// Exactly at the checkout midnight the stay still reads confirmed.
	f.clock.Set(time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, booking.StatusConfirmed, readStatus(t))

	f.clock.Set(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, booking.StatusCompleted, readStatus(t))

	// Derivation never writes back; the stored status is untouched.
	stored, err := f.bookings.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, stored.Status)
}

func TestBookingUseCase_Listing(t *testing.T) {
	t.Run("lists a user's bookings with derived statuses", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-05-10", "2025-05-12", 2)
		require.NoError(t, err)
		_, err = f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		f.clock.Set(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
		list, err := f.uc.ListForUser(context.Background(), f.guestID)

		require.NoError(t, err)
		require.Len(t, list, 2)
		statuses := map[booking.Status]int{}
		for _, b := range list {
			statuses[b.Status]++
		}
		assert.Equal(t, 1, statuses[booking.StatusCompleted])
		assert.Equal(t, 1, statuses[booking.StatusConfirmed])
	})

	t.Run("property bookings are visible to the host and admins only", func(t *testing.T) {
		f := newBookingFixture(t)
		prop := f.createProperty(t, 100, 4)

		_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
		require.NoError(t, err)

		_, err = f.uc.ListForProperty(context.Background(), f.guestID, prop.ID, false)
		assert.ErrorIs(t, err, ErrNotPropertyHost)

		list, err := f.uc.ListForProperty(context.Background(), f.hostID, prop.ID, false)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		list, err = f.uc.ListForProperty(context.Background(), uuid.New(), prop.ID, true)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestBookingUseCase_CheckAvailability_SkipsCorruptDates(t *testing.T) {
	f := newBookingFixture(t)
	prop := f.createProperty(t, 100, 4)

	// A legacy row with unparseable dates must not take the property
	// offline; the scan skips it instead of erroring.
	_, err := f.bookings.Create(context.Background(), store.NewBooking{
		PropertyID: prop.ID,
		UserID:     uuid.New(),
		CheckIn:    "06/01/2025",
		CheckOut:   "not-a-date",
		Guests:     2,
		TotalPrice: 300,
		Status:     booking.StatusConfirmed,
	})
	require.NoError(t, err)

	available, err := f.uc.CheckAvailability(context.Background(), prop.ID, "2025-06-01", "2025-06-04")
	require.NoError(t, err)
	assert.True(t, available)

	created, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-01", "2025-06-04", 2)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, created.Status)

	// Well-formed rows still block their dates.
	available, err = f.uc.CheckAvailability(context.Background(), prop.ID, "2025-06-02", "2025-06-05")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestBookingUseCase_CheckAvailability(t *testing.T) {
	f := newBookingFixture(t)
	prop := f.createProperty(t, 100, 4)

	_, err := f.uc.CreateBooking(context.Background(), f.guestID, prop.ID, "2025-06-10", "2025-06-15", 2)
	require.NoError(t, err)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"fully before", "2025-06-01", "2025-06-05", true},
		{"touching the check-in boundary", "2025-06-05", "2025-06-10", true},
		{"straddling the start", "2025-06-08", "2025-06-12", false},
		{"contained within", "2025-06-11", "2025-06-13", false},
		{"containing the stay", "2025-06-09", "2025-06-16", false},
		{"touching the check-out boundary", "2025-06-15", "2025-06-18", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.uc.CheckAvailability(context.Background(), prop.ID, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
