package supabase

import (
	"fmt"
	"net/http"
	"strings"

	"whatsapp-bridge/internal/media/repository"
	pkgLog "whatsapp-bridge/pkg/log"
)

type implRepository struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
	l          pkgLog.Logger
}

// Config holds the Supabase Storage project settings.
type Config struct {
	URL        string
	ServiceKey string
	Bucket     string
}

// New creates an ObjectStorage backed by the Supabase Storage REST API.
func New(cfg Config, l pkgLog.Logger) (repository.ObjectStorage, error) {
	if cfg.URL == "" || cfg.ServiceKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: supabase url, service key and bucket are required", repository.ErrMissingConfig)
	}
	return &implRepository{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{},
		l:          l,
	}, nil
}
