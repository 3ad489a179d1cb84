package blobstore

import "context"

// Store is a string-keyed blob store. The local persistence variant keeps the
// whole property collection serialized under a single key.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
