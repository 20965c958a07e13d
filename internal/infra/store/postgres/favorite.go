package postgres

import (
	"context"

	"stayhub/internal/domain/favorite"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

var _ store.FavoriteStore = (*FavoriteStore)(nil)

func NewFavoriteStore(pool *pgxpool.Pool, clk clock.Clock) *FavoriteStore {
	return &FavoriteStore{pool: pool, clock: clk}
}

func (s *FavoriteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, property_id, created_at FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, wrapErr("failed to list favorites", err)
	}
	defer rows.Close()

	result := make([]*favorite.Favorite, 0)
	for rows.Next() {
		var f favorite.Favorite
		if err := rows.Scan(&f.UserID, &f.PropertyID, &f.CreatedAt); err != nil {
			return nil, wrapErr("failed to scan favorite", err)
		}
		result = append(result, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate favorites", err)
	}
	return result, nil
}

func (s *FavoriteStore) IsFavorite(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND property_id = $2)`,
		userID, propertyID).Scan(&exists)
	if err != nil {
		return false, wrapErr("failed to check favorite", err)
	}
	return exists, nil
}

func (s *FavoriteStore) Add(ctx context.Context, userID, propertyID uuid.UUID) (*favorite.Favorite, error) {
	// Adding an existing favorite is a no-op returning the current row.
	row := s.pool.QueryRow(ctx, `
		INSERT INTO favorites (user_id, property_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, property_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, property_id, created_at`,
		userID, propertyID, s.clock.Now(),
	)

	var f favorite.Favorite
	if err := row.Scan(&f.UserID, &f.PropertyID, &f.CreatedAt); err != nil {
		return nil, wrapErr("failed to add favorite", err)
	}
	return &f, nil
}

func (s *FavoriteStore) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`, userID, propertyID)
	if err != nil {
		return wrapErr("failed to remove favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("favorite not found", pgx.ErrNoRows)
	}
	return nil
}

func (s *FavoriteStore) DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM favorites WHERE property_id = $1`, propertyID)
	if err != nil {
		return 0, wrapErr("failed to delete favorites by property", err)
	}
	return int(tag.RowsAffected()), nil
}
