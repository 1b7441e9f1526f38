package usecase

import (
	"context"
	"fmt"

	"whatsapp-bridge/internal/media"
)

// Download makes a single bounded attempt to fetch url from the gateway.
func (uc *implUseCase) Download(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.DownloadTimeout)
	defer cancel()

	data, contentType, err := uc.fetcher.FetchMedia(ctx, url)
	if err != nil {
		return nil, "", fmt.Errorf("%w: download: %w", media.ErrNetwork, err)
	}
	return data, contentType, nil
}
