package usecase

import (
	"context"
	"errors"

	"stayhub/internal/domain/favorite"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteUseCase interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error)
	IsFavorite(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, propertyID uuid.UUID) (*favorite.Favorite, error)
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error
}

type favoriteUseCaseImpl struct {
	favorites  store.FavoriteStore
	properties store.PropertyStore
}

func NewFavoriteUseCase(favorites store.FavoriteStore, properties store.PropertyStore) FavoriteUseCase {
	return &favoriteUseCaseImpl{favorites: favorites, properties: properties}
}

func (u *favoriteUseCaseImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	list, err := u.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list favorites")
	}
	return list, nil
}

func (u *favoriteUseCaseImpl) IsFavorite(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	ok, err := u.favorites.IsFavorite(ctx, userID, propertyID)
	if err != nil {
		return false, errs.Wrap(err, "failed to check favorite")
	}
	return ok, nil
}

func (u *favoriteUseCaseImpl) Add(ctx context.Context, userID, propertyID uuid.UUID) (*favorite.Favorite, error) {
	// Favoriting a property that no longer exists is a 404, not a dangling
	// reference.
	if _, err := u.properties.GetByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property")
	}

	f, err := u.favorites.Add(ctx, userID, propertyID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to add favorite")
	}
	return f, nil
}

func (u *favoriteUseCaseImpl) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	if err := u.favorites.Remove(ctx, userID, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFavoriteNotFound
		}
		return errs.Wrap(err, "failed to remove favorite")
	}
	return nil
}
