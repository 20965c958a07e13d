package memory

import (
	"context"
	"sync"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/store"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/patch"

	"github.com/google/uuid"
)

type PropertyStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*property.Property
	clock clock.Clock
}

var _ store.PropertyStore = (*PropertyStore)(nil)

func NewPropertyStore(clk clock.Clock) *PropertyStore {
	return &PropertyStore{
		byID:  make(map[uuid.UUID]*property.Property),
		clock: clk,
	}
}

func (s *PropertyStore) List(_ context.Context) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*property.Property, 0, len(s.byID))
	for _, p := range s.byID {
		result = append(result, copyProperty(p))
	}
	return result, nil
}

func (s *PropertyStore) GetByID(_ context.Context, id uuid.UUID) (*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return copyProperty(p), nil
}

func (s *PropertyStore) ListByHost(_ context.Context, hostID uuid.UUID) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*property.Property, 0)
	for _, p := range s.byID {
		if p.HostID == hostID {
			result = append(result, copyProperty(p))
		}
	}
	return result, nil
}

func (s *PropertyStore) Create(_ context.Context, fields store.NewProperty) (*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	p := &property.Property{
		ID:            uuid.New(),
		HostID:        fields.HostID,
		Title:         fields.Title,
		Description:   fields.Description,
		Location:      fields.Location,
		PricePerNight: fields.PricePerNight,
		Images:        append([]string(nil), fields.Images...),
		Amenities:     append([]string(nil), fields.Amenities...),
		PropertyType:  fields.PropertyType,
		Bedrooms:      fields.Bedrooms,
		Bathrooms:     fields.Bathrooms,
		MaxGuests:     fields.MaxGuests,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.byID[p.ID] = p

	return copyProperty(p), nil
}

func (s *PropertyStore) Update(_ context.Context, id uuid.UUID, fields store.PropertyPatch) (*property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
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

	return copyProperty(p), nil
}

func (s *PropertyStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	delete(s.byID, id)
	return nil
}

func copyProperty(p *property.Property) *property.Property {
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	cp.Amenities = append([]string(nil), p.Amenities...)
	return &cp
}
