package gcs

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"

	"whatsapp-bridge/internal/media/repository"
	pkgLog "whatsapp-bridge/pkg/log"
)

type implRepository struct {
	service *storage.Service
	bucket  string
	l       pkgLog.Logger
}

// Config holds the Cloud Storage bucket settings.
type Config struct {
	Bucket          string
	CredentialsPath string
}

// New creates an ObjectStorage backed by Google Cloud Storage. Without a
// credentials file the client falls back to the given options, or to
// application default credentials.
func New(ctx context.Context, cfg Config, l pkgLog.Logger, opts ...option.ClientOption) (repository.ObjectStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: gcs bucket is required", repository.ErrMissingConfig)
	}

	if cfg.CredentialsPath != "" {
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		jwt, err := google.JWTConfigFromJSON(data, storage.DevstorageReadWriteScope)
		if err != nil {
			return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
		}
		opts = append(opts, option.WithTokenSource(jwt.TokenSource(ctx)))
	}

	svc, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	return &implRepository{service: svc, bucket: cfg.Bucket, l: l}, nil
}
