package gcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	storage "google.golang.org/api/storage/v1"

	"whatsapp-bridge/internal/media/repository"
)

// PutObject inserts a new object. ifGenerationMatch=0 makes the write fail
// when the name is taken.
func (r *implRepository) PutObject(ctx context.Context, path, contentType string, data []byte) error {
	obj := &storage.Object{Name: path, ContentType: contentType}

	_, err := r.service.Objects.Insert(r.bucket, obj).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		IfGenerationMatch(0).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
			return fmt.Errorf("%w: %s", repository.ErrObjectExists, path)
		}
		return fmt.Errorf("failed to insert gcs object: %w", err)
	}

	r.l.Debugf(ctx, "internal.media.repository.gcs.PutObject: stored gs://%s/%s (%d bytes)", r.bucket, path, len(data))
	return nil
}
