package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatfinder/internal/domain"
)

// memBlobStore is an in-memory blobstore.Store for tests.
type memBlobStore struct {
	data   map[string]string
	setErr error
	getErr error
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{data: make(map[string]string)}
}

func (m *memBlobStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBlobStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func TestLocalStoreInsertPrepends(t *testing.T) {
	blobs := newMemBlobStore()
	s := NewLocalStore(blobs)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, "", testProperty("first", time.Now().UTC())))
	require.NoError(t, s.Insert(ctx, "", testProperty("second", time.Now().UTC())))

	props, err := s.ListByUser(ctx, "")
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, "second", props[0].ID)
	assert.Equal(t, "first", props[1].ID)

	// The whole collection lives under the fixed key.
	raw, ok := blobs.data[CollectionKey]
	require.True(t, ok)
	var stored []*domain.Property
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Len(t, stored, 2)
}

func TestLocalStoreEmptyCollection(t *testing.T) {
	s := NewLocalStore(newMemBlobStore())

	props, err := s.ListByUser(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestLocalStoreUpdate(t *testing.T) {
	s := NewLocalStore(newMemBlobStore())
	ctx := context.Background()

	p := testProperty("p1", time.Now().UTC())
	require.NoError(t, s.Insert(ctx, "", p))

	p.Rating = 5
	require.NoError(t, s.Update(ctx, "", p))

	props, err := s.ListByUser(ctx, "")
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, 5, props[0].Rating)

	assert.Error(t, s.Update(ctx, "", testProperty("ghost", time.Now().UTC())))
}

func TestLocalStoreDeleteIsIdempotent(t *testing.T) {
	s := NewLocalStore(newMemBlobStore())
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, "", testProperty("p1", time.Now().UTC())))
	require.NoError(t, s.Delete(ctx, "", "p1"))
	require.NoError(t, s.Delete(ctx, "", "p1"))

	props, err := s.ListByUser(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestLocalStoreSurfacesBlobErrors(t *testing.T) {
	blobs := newMemBlobStore()
	blobs.setErr = errors.New("disk full")
	s := NewLocalStore(blobs)

	err := s.Insert(context.Background(), "", testProperty("p1", time.Now().UTC()))
	assert.ErrorContains(t, err, "disk full")
}
