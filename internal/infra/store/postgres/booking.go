package postgres

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, property_id, user_id, check_in, check_out, guests, total_price, status, created_at, updated_at`

type BookingStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

var _ store.BookingStore = (*BookingStore)(nil)

func NewBookingStore(pool *pgxpool.Pool, clk clock.Clock) *BookingStore {
	return &BookingStore{pool: pool, clock: clk}
}

func (s *BookingStore) Create(ctx context.Context, fields store.NewBooking) (*booking.Booking, error) {
	checkIn, err := dates.Parse(fields.CheckIn)
	if err != nil {
		return nil, wrapErr("invalid check-in date", err)
	}
	checkOut, err := dates.Parse(fields.CheckOut)
	if err != nil {
		return nil, wrapErr("invalid check-out date", err)
	}

	now := s.clock.Now()
	id := uuid.New()

	row := s.pool.QueryRow(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+bookingColumns,
		id, fields.PropertyID, fields.UserID, checkIn, checkOut,
		fields.Guests, fields.TotalPrice, fields.Status.String(), now, now,
	)

	b, err := scanBooking(row)
	if err != nil {
		return nil, wrapErr("failed to create booking", err)
	}
	return b, nil
}

func (s *BookingStore) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		return nil, wrapErr("booking not found", err)
	}
	return b, nil
}

func (s *BookingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, wrapErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (s *BookingStore) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE property_id = $1
		ORDER BY created_at DESC`, propertyID)
	if err != nil {
		return nil, wrapErr("failed to list bookings by property", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (s *BookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE bookings SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+bookingColumns,
		id, status.String(), s.clock.Now(),
	)

	b, err := scanBooking(row)
	if err != nil {
		return nil, wrapErr("booking not found", err)
	}
	return b, nil
}

func (s *BookingStore) DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM bookings WHERE property_id = $1`, propertyID)
	if err != nil {
		return 0, wrapErr("failed to delete bookings by property", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		b                 booking.Booking
		status            string
		checkIn, checkOut time.Time
	)
	err := row.Scan(
		&b.ID, &b.PropertyID, &b.UserID, &checkIn, &checkOut,
		&b.Guests, &b.TotalPrice, &status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.CheckIn = dates.Format(checkIn)
	b.CheckOut = dates.Format(checkOut)
	b.Status = booking.Status(status)
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	result := make([]*booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, wrapErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate bookings", err)
	}
	return result, nil
}
