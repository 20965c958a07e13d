package postgres

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, full_name, email, avatar_url, role, password_hash, created_at, updated_at`

type UserStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

var _ store.UserStore = (*UserStore)(nil)

func NewUserStore(pool *pgxpool.Pool, clk clock.Clock) *UserStore {
	return &UserStore{pool: pool, clock: clk}
}

func (s *UserStore) Create(ctx context.Context, fields store.NewUser) (*user.User, error) {
	now := s.clock.Now()
	id := uuid.New()

	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (id, full_name, email, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		id, fields.FullName, fields.Email, fields.Role.String(),
		fields.PasswordHash, now, now,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("failed to create user", err)
	}
	return u, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("user not found", err)
	}
	return u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("user not found", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		u         user.User
		avatarURL *string
		role      string
	)
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &avatarURL, &role,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if avatarURL != nil {
		u.AvatarURL = *avatarURL
	}
	u.Role = user.Role(role)
	return &u, nil
}
