package postgres

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, host_id, title, description, location, price_per_night, images, amenities, property_type, bedrooms, bathrooms, max_guests, created_at, updated_at`

type PropertyStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

var _ store.PropertyStore = (*PropertyStore)(nil)

func NewPropertyStore(pool *pgxpool.Pool, clk clock.Clock) *PropertyStore {
	return &PropertyStore{pool: pool, clock: clk}
}

func (s *PropertyStore) List(ctx context.Context) ([]*property.Property, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapErr("failed to list properties", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (s *PropertyStore) GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)

	p, err := scanProperty(row)
	if err != nil {
		return nil, wrapErr("property not found", err)
	}
	return p, nil
}

func (s *PropertyStore) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*property.Property, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+propertyColumns+` FROM properties
		WHERE host_id = $1
		ORDER BY created_at DESC`, hostID)
	if err != nil {
		return nil, wrapErr("failed to list properties by host", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (s *PropertyStore) Create(ctx context.Context, fields store.NewProperty) (*property.Property, error) {
	now := s.clock.Now()
	id := uuid.New()

	row := s.pool.QueryRow(ctx, `
		INSERT INTO properties (`+propertyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+propertyColumns,
		id, fields.HostID, fields.Title, fields.Description, fields.Location,
		fields.PricePerNight, fields.Images, fields.Amenities,
		string(fields.PropertyType), fields.Bedrooms, fields.Bathrooms,
		fields.MaxGuests, now, now,
	)

	p, err := scanProperty(row)
	if err != nil {
		return nil, wrapErr("failed to create property", err)
	}
	return p, nil
}

// Update reads the current row, applies the patch and writes it back in one
// transaction so concurrent patches never interleave field-wise.
func (s *PropertyStore) Update(ctx context.Context, id uuid.UUID, fields store.PropertyPatch) (*property.Property, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	row := tx.QueryRow(ctx, `
		SELECT `+propertyColumns+` FROM properties WHERE id = $1 FOR UPDATE`, id)
	p, err := scanProperty(row)
	if err != nil {
		return nil, wrapErr("property not found", err)
	}

	p.Title = patch.Coalesce(fields.Title, p.Title)
	p.Description = patch.Coalesce(fields.Description, p.Description)
	p.Location = patch.Coalesce(fields.Location, p.Location)
	p.PricePerNight = patch.Coalesce(fields.PricePerNight, p.PricePerNight)
	p.Images = patch.Coalesce(fields.Images, p.Images)
	p.Amenities = patch.Coalesce(fields.Amenities, p.Amenities)
	p.PropertyType = patch.Coalesce(fields.PropertyType, p.PropertyType)
	p.Bedrooms = patch.Coalesce(fields.Bedrooms, p.Bedrooms)
	p.Bathrooms = patch.Coalesce(fields.Bathrooms, p.Bathrooms)
	p.MaxGuests = patch.Coalesce(fields.MaxGuests, p.MaxGuests)
	p.UpdatedAt = s.clock.Now()

	_, err = tx.Exec(ctx, `
		UPDATE properties SET
			title = $2, description = $3, location = $4, price_per_night = $5,
			images = $6, amenities = $7, property_type = $8, bedrooms = $9,
			bathrooms = $10, max_guests = $11, updated_at = $12
		WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Location, p.PricePerNight,
		p.Images, p.Amenities, string(p.PropertyType), p.Bedrooms,
		p.Bathrooms, p.MaxGuests, p.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to update property", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapErr("failed to commit property update", err)
	}
	return p, nil
}

func (s *PropertyStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete property", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("property not found", pgx.ErrNoRows)
	}
	return nil
}

func scanProperty(row pgx.Row) (*property.Property, error) {
	var (
		p            property.Property
		propertyType string
	)
	err := row.Scan(
		&p.ID, &p.HostID, &p.Title, &p.Description, &p.Location,
		&p.PricePerNight, &p.Images, &p.Amenities, &propertyType,
		&p.Bedrooms, &p.Bathrooms, &p.MaxGuests, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PropertyType = property.Type(propertyType)
	return &p, nil
}

func collectProperties(rows pgx.Rows) ([]*property.Property, error) {
	result := make([]*property.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, wrapErr("failed to scan property", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate properties", err)
	}
	return result, nil
}
