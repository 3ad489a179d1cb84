package store

import (
	"context"
	"encoding/json"
	"fmt"

	"flatfinder/internal/blobstore"
	"flatfinder/internal/domain"
)

// CollectionKey is the fixed blob key holding the whole property collection
// in the local-device persistence variant.
const CollectionKey = "property-evaluator-data"

// LocalStore persists the entire collection as one JSON blob. The collection
// keeps newest-created-first order, so list reads return it as stored. User
// scoping does not apply to this variant; the device is the boundary.
type LocalStore struct {
	blobs blobstore.Store
}

func NewLocalStore(blobs blobstore.Store) *LocalStore {
	return &LocalStore{blobs: blobs}
}

func (s *LocalStore) ListByUser(ctx context.Context, _ string) ([]*domain.Property, error) {
	return s.load(ctx)
}

func (s *LocalStore) Insert(ctx context.Context, _ string, p *domain.Property) error {
	props, err := s.load(ctx)
	if err != nil {
		return err
	}
	props = append([]*domain.Property{p}, props...)
	return s.save(ctx, props)
}

func (s *LocalStore) Update(ctx context.Context, _ string, p *domain.Property) error {
	props, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range props {
		if existing.ID == p.ID {
			props[i] = p
			return s.save(ctx, props)
		}
	}
	return fmt.Errorf("property not found")
}

// Delete removes a property from the collection. A missing ID is a no-op.
func (s *LocalStore) Delete(ctx context.Context, _ string, id string) error {
	props, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := props[:0]
	for _, p := range props {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(props) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *LocalStore) load(ctx context.Context) ([]*domain.Property, error) {
	raw, found, err := s.blobs.Get(ctx, CollectionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load property collection: %w", err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	var props []*domain.Property
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return nil, fmt.Errorf("failed to decode property collection: %w", err)
	}
	return props, nil
}

func (s *LocalStore) save(ctx context.Context, props []*domain.Property) error {
	data, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("failed to encode property collection: %w", err)
	}
	if err := s.blobs.Set(ctx, CollectionKey, string(data)); err != nil {
		return fmt.Errorf("failed to store property collection: %w", err)
	}
	return nil
}
