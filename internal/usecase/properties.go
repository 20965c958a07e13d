package usecase

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotPropertyOwner = errors.New("not allowed to modify this property")
	ErrInvalidProperty  = errors.New("invalid property fields")
	ErrHostRequired     = errors.New("hostId is required")
)

type PropertyUseCase interface {
	List(ctx context.Context) ([]*property.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*property.Property, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*property.Property, error)
	Create(ctx context.Context, hostID uuid.UUID, fields store.NewProperty) (*property.Property, error)
	Update(ctx context.Context, callerID, id uuid.UUID, patch store.PropertyPatch, privileged bool) (*property.Property, error)
	// Delete removes the property and cascades over its bookings and
	// favorites.
	Delete(ctx context.Context, callerID, id uuid.UUID, privileged bool) error
}

type propertyUseCaseImpl struct {
	properties store.PropertyStore
	bookings   store.BookingStore
	favorites  store.FavoriteStore
	logger     *slog.Logger
}

func NewPropertyUseCase(
	properties store.PropertyStore,
	bookings store.BookingStore,
	favorites store.FavoriteStore,
	logger *slog.Logger,
) PropertyUseCase {
	return &propertyUseCaseImpl{
		properties: properties,
		bookings:   bookings,
		favorites:  favorites,
		logger:     logger,
	}
}

func (u *propertyUseCaseImpl) List(ctx context.Context) ([]*property.Property, error) {
	list, err := u.properties.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list properties")
	}
	return list, nil
}

func (u *propertyUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	prop, err := u.properties.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property")
	}
	return prop, nil
}

func (u *propertyUseCaseImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*property.Property, error) {
	list, err := u.properties.ListByHost(ctx, hostID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list properties by host")
	}
	return list, nil
}

func (u *propertyUseCaseImpl) Create(ctx context.Context, hostID uuid.UUID, fields store.NewProperty) (*property.Property, error) {
	if hostID == uuid.Nil {
		return nil, ErrHostRequired
	}
	fields.HostID = hostID

	candidate := &property.Property{
		Title:         fields.Title,
		Description:   fields.Description,
		Location:      fields.Location,
		PricePerNight: fields.PricePerNight,
		PropertyType:  fields.PropertyType,
	}
	if err := candidate.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidProperty)
	}

	created, err := u.properties.Create(ctx, fields)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create property")
	}
	return created, nil
}

func (u *propertyUseCaseImpl) Update(ctx context.Context, callerID, id uuid.UUID, patch store.PropertyPatch, privileged bool) (*property.Property, error) {
	prop, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !privileged && prop.HostID != callerID {
		return nil, ErrNotPropertyOwner
	}

	updated, err := u.properties.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to update property")
	}

	if err := updated.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidProperty)
	}
	return updated, nil
}

func (u *propertyUseCaseImpl) Delete(ctx context.Context, callerID, id uuid.UUID, privileged bool) error {
	prop, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if !privileged && prop.HostID != callerID {
		return ErrNotPropertyOwner
	}

	if err := u.properties.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPropertyNotFound
		}
		return errs.Wrap(err, "failed to delete property")
	}

	// Cascading deletes; the property itself is already gone, so failures
	// here are logged loudly but do not undo the removal.
	bookingsRemoved, err := u.bookings.DeleteByProperty(ctx, id)
	if err != nil {
		u.logger.Error("failed to cascade booking delete", "property_id", id, "error", err)
	}
	favoritesRemoved, err := u.favorites.DeleteByProperty(ctx, id)
	if err != nil {
		u.logger.Error("failed to cascade favorite delete", "property_id", id, "error", err)
	}

	u.logger.Info("property deleted",
		"property_id", id,
		"bookings_removed", bookingsRemoved,
		"favorites_removed", favoritesRemoved,
	)
	return nil
}
