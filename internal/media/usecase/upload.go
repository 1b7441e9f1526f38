package usecase

import (
	"context"
	"fmt"

	"whatsapp-bridge/internal/media"
)

// Upload makes a single bounded attempt to store data at path.
func (uc *implUseCase) Upload(ctx context.Context, path, contentType string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.UploadTimeout)
	defer cancel()

	if err := uc.storage.PutObject(ctx, path, contentType, data); err != nil {
		return fmt.Errorf("%w: upload %s: %w", media.ErrNetwork, path, err)
	}
	return nil
}
