package repository

import "context"

// ObjectStorage is an append-only object store.
type ObjectStorage interface {
	// PutObject writes data at path. It fails if the path already exists.
	PutObject(ctx context.Context, path, contentType string, data []byte) error
}
