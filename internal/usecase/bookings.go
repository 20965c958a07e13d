package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/dates"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPropertyRequired     = errors.New("propertyId is required")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidDates         = errors.New("invalid dates")
	ErrInvalidGuests        = errors.New("guests is invalid")
	ErrGuestsExceedCapacity = errors.New("number of guests exceeds property capacity")
	ErrNotAvailable         = errors.New("property is not available for selected dates")
	ErrNotBookingOwner      = errors.New("not allowed to access this booking")
	ErrNotPropertyHost      = errors.New("not allowed to access this property's bookings")
)

// HostNotifier delivers booking-lifecycle events to hosts. Delivery is
// best-effort: the lifecycle manager logs failures and never lets them fail
// a booking operation.
type HostNotifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, title, message, link string) error
}

// BookingPreview is a non-persisting quote for a candidate stay.
type BookingPreview struct {
	Available     bool
	PricePerNight float64
	Nights        int
	TotalPrice    float64
}

type BookingUseCase interface {
	CheckAvailability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut string) (bool, error)
	Preview(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut string, guests int) (*BookingPreview, error)
	CreateBooking(ctx context.Context, userID, propertyID uuid.UUID, checkIn, checkOut string, guests int) (*booking.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, privileged bool) (*booking.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID, privileged bool) (*booking.Booking, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	ListForProperty(ctx context.Context, callerID, propertyID uuid.UUID, privileged bool) ([]*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookings   store.BookingStore
	properties store.PropertyStore
	notifier   HostNotifier
	clock      clock.Clock
	logger     *slog.Logger

	// Per-property serialization of the availability-check-then-persist
	// window. Without it two concurrent creations for overlapping dates can
	// both pass the check before either persists. Entries are never
	// reclaimed; the map is bounded by the number of properties booked in
	// this process's lifetime.
	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
}

func NewBookingUseCase(
	bookings store.BookingStore,
	properties store.PropertyStore,
	notifier HostNotifier,
	clk clock.Clock,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings:   bookings,
		properties: properties,
		notifier:   notifier,
		clock:      clk,
		logger:     logger,
		locks:      make(map[uuid.UUID]*sync.Mutex),
	}
}

func (u *bookingUseCaseImpl) propertyLock(propertyID uuid.UUID) *sync.Mutex {
	u.locksMu.Lock()
	defer u.locksMu.Unlock()

	mu, ok := u.locks[propertyID]
	if !ok {
		mu = &sync.Mutex{}
		u.locks[propertyID] = mu
	}
	return mu
}

func (u *bookingUseCaseImpl) CheckAvailability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut string) (bool, error) {
	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return u.isAvailable(ctx, propertyID, in, out)
}

// isAvailable scans the property's non-cancelled bookings for an overlap.
// Bookings whose own dates fail to parse are skipped: corrupt legacy rows
// must not take the whole property offline.
func (u *bookingUseCaseImpl) isAvailable(ctx context.Context, propertyID uuid.UUID, in, out time.Time) (bool, error) {
	existing, err := u.bookings.ListByProperty(ctx, propertyID)
	if err != nil {
		return false, errs.Wrap(err, "failed to list bookings for availability check")
	}

	for _, b := range existing {
		if b.Status == booking.StatusCancelled {
			continue
		}
		bIn, err := dates.Parse(b.CheckIn)
		if err != nil {
			continue
		}
		bOut, err := dates.Parse(b.CheckOut)
		if err != nil {
			continue
		}
		if dates.Overlaps(in, out, bIn, bOut) {
			return false, nil
		}
	}
	return true, nil
}

func (u *bookingUseCaseImpl) Preview(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut string, guests int) (*BookingPreview, error) {
	prop, err := u.getProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if err := validateGuests(prop, guests); err != nil {
		return nil, err
	}

	available, err := u.isAvailable(ctx, propertyID, in, out)
	if err != nil {
		return nil, err
	}

	// parseStay already rejects non-positive stays; clamp anyway so a
	// preview can never quote a negative total.
	nights := dates.Nights(in, out)
	if nights < 0 {
		nights = 0
	}

	return &BookingPreview{
		Available:     available,
		PricePerNight: prop.PricePerNight,
		Nights:        nights,
		TotalPrice:    float64(nights) * prop.PricePerNight,
	}, nil
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, userID, propertyID uuid.UUID, checkIn, checkOut string, guests int) (*booking.Booking, error) {
	if propertyID == uuid.Nil {
		return nil, ErrPropertyRequired
	}

	prop, err := u.getProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if err := validateGuests(prop, guests); err != nil {
		return nil, err
	}

	nights := dates.Nights(in, out)
	if nights <= 0 {
		return nil, ErrInvalidDates
	}

	mu := u.propertyLock(propertyID)
	mu.Lock()
	defer mu.Unlock()

	available, err := u.isAvailable(ctx, propertyID, in, out)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrNotAvailable
	}

	created, err := u.bookings.Create(ctx, store.NewBooking{
		PropertyID: propertyID,
		UserID:     userID,
		CheckIn:    dates.Format(in),
		CheckOut:   dates.Format(out),
		Guests:     guests,
		TotalPrice: float64(nights) * prop.PricePerNight,
		Status:     booking.StatusConfirmed,
	})
	if err != nil {
		// The durable backend enforces non-overlap at insert time as well;
		// report its conflict the same way as a failed availability check.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrNotAvailable
		}
		return nil, errs.Wrap(err, "failed to persist booking")
	}

	if prop.HostID != uuid.Nil && prop.HostID != userID {
		u.notifyHost(ctx, prop.HostID, booking.EventConfirmed,
			"New booking confirmed",
			fmt.Sprintf("New booking for %q (%s to %s).", prop.Title, created.CheckIn, created.CheckOut),
		)
	}

	return created.Normalized(u.clock.Now()), nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, privileged bool) (*booking.Booking, error) {
	b, err := u.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !privileged && b.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	// One-way transition; cancelling twice is a no-op that must not advance
	// updatedAt.
	if b.Status == booking.StatusCancelled {
		return b.Normalized(u.clock.Now()), nil
	}

	updated, err := u.bookings.UpdateStatus(ctx, bookingID, booking.StatusCancelled)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to cancel booking")
	}

	if prop, err := u.properties.GetByID(ctx, updated.PropertyID); err == nil {
		if prop.HostID != uuid.Nil && prop.HostID != userID {
			u.notifyHost(ctx, prop.HostID, booking.EventCancelled,
				"Booking cancelled",
				fmt.Sprintf("A booking for %q was cancelled.", prop.Title),
			)
		}
	}

	return updated.Normalized(u.clock.Now()), nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, userID, bookingID uuid.UUID, privileged bool) (*booking.Booking, error) {
	b, err := u.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !privileged && b.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return b.Normalized(u.clock.Now()), nil
}

func (u *bookingUseCaseImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	list, err := u.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for user")
	}
	return u.normalizeAll(list), nil
}

func (u *bookingUseCaseImpl) ListForProperty(ctx context.Context, callerID, propertyID uuid.UUID, privileged bool) ([]*booking.Booking, error) {
	prop, err := u.getProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !privileged && prop.HostID != callerID {
		return nil, ErrNotPropertyHost
	}

	list, err := u.bookings.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for property")
	}
	return u.normalizeAll(list), nil
}

func (u *bookingUseCaseImpl) normalizeAll(list []*booking.Booking) []*booking.Booking {
	now := u.clock.Now()
	result := make([]*booking.Booking, len(list))
	for i, b := range list {
		result[i] = b.Normalized(now)
	}
	return result
}

func (u *bookingUseCaseImpl) getProperty(ctx context.Context, propertyID uuid.UUID) (*property.Property, error) {
	prop, err := u.properties.GetByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property")
	}
	return prop, nil
}

func (u *bookingUseCaseImpl) getBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return b, nil
}

func (u *bookingUseCaseImpl) notifyHost(ctx context.Context, hostID uuid.UUID, kind, title, message string) {
	if err := u.notifier.Notify(ctx, hostID, kind, title, message, "/host/dashboard"); err != nil {
		u.logger.Warn("host notification failed",
			"host_id", hostID, "kind", kind, "error", err)
	}
}

// parseStay validates both dates and their ordering.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := dates.Parse(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDates)
	}
	out, err := dates.Parse(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDates)
	}
	if !in.Before(out) {
		return time.Time{}, time.Time{}, errs.Mark(errs.New("checkIn must be before checkOut"), ErrInvalidDates)
	}
	return in, out, nil
}

func validateGuests(prop *property.Property, guests int) error {
	if guests <= 0 {
		return ErrInvalidGuests
	}
	if prop.HasCapacity() && guests > prop.MaxGuests {
		return ErrGuestsExceedCapacity
	}
	return nil
}
