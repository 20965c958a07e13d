// Package store defines the persistence contracts of the marketplace.
//
// Each contract has two interchangeable implementations: a transient
// in-process one (package memory) and a durable one reached over the network
// (package postgres). The backend is selected once at process startup from
// configuration; dependent components treat the chosen implementation as
// opaque and both backends satisfy the contracts identically, reporting
// failures through infra.RepositoryError kinds.
package store

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/favorite"
	"stayhub/internal/domain/notification"
	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"

	"github.com/google/uuid"
)

// NewBooking carries the caller-supplied fields of a booking; the store
// assigns ID and timestamps.
type NewBooking struct {
	PropertyID uuid.UUID
	UserID     uuid.UUID
	CheckIn    string
	CheckOut   string
	Guests     int
	TotalPrice float64
	Status     booking.Status
}

type BookingStore interface {
	Create(ctx context.Context, fields NewBooking) (*booking.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error)
	// UpdateStatus updates status and updatedAt; all other fields are
	// immutable after creation.
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	// DeleteByProperty cascades when the owning property is removed and
	// returns the number of bookings deleted.
	DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int, error)
}

// NewProperty carries the host-supplied fields of a listing.
type NewProperty struct {
	HostID        uuid.UUID
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	Images        []string
	Amenities     []string
	PropertyType  property.Type
	Bedrooms      int
	Bathrooms     int
	MaxGuests     int
}

// PropertyPatch is a partial update; nil fields are left untouched. HostID
// is immutable.
type PropertyPatch struct {
	Title         *string
	Description   *string
	Location      *string
	PricePerNight *float64
	Images        *[]string
	Amenities     *[]string
	PropertyType  *property.Type
	Bedrooms      *int
	Bathrooms     *int
	MaxGuests     *int
}

type PropertyStore interface {
	List(ctx context.Context) ([]*property.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*property.Property, error)
	Create(ctx context.Context, fields NewProperty) (*property.Property, error)
	Update(ctx context.Context, id uuid.UUID, patch PropertyPatch) (*property.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewUser struct {
	FullName     string
	Email        string
	PasswordHash string
	Role         user.Role
}

type UserStore interface {
	Create(ctx context.Context, fields NewUser) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type NewNotification struct {
	UserID  uuid.UUID
	Type    string
	Title   string
	Message string
	Link    string
}

type NotificationStore interface {
	Create(ctx context.Context, fields NewNotification) (*notification.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*notification.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	// MarkRead only succeeds when the notification belongs to the user.
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*notification.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

type FavoriteStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error)
	IsFavorite(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, propertyID uuid.UUID) (*favorite.Favorite, error)
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error
	DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int, error)
}
