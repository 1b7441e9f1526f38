package usecase

import (
	"bytes"
	"fmt"
	"image"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"whatsapp-bridge/internal/media"
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Validate checks that data is an allowed image within the size limit. Size is
// checked before the content is sniffed or decoded.
func (uc *implUseCase) Validate(data []byte, declaredType string) (string, error) {
	declared := normalizeType(declaredType)
	if !allowedTypes[declared] {
		return "", fmt.Errorf("%w: unsupported content type %q", media.ErrValidation, declaredType)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", media.ErrValidation)
	}
	if len(data) > uc.cfg.MaxBytes {
		return "", fmt.Errorf("%w: file is %d bytes, limit is %d", media.ErrValidation, len(data), uc.cfg.MaxBytes)
	}

	sniffed := normalizeType(mimetype.Detect(data).String())
	if !allowedTypes[sniffed] {
		return "", fmt.Errorf("%w: content looks like %q, declared %q", media.ErrValidation, sniffed, declaredType)
	}
	// Unreadable headers are left to Compress, which reports them as corrupt.
	if hdr, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil && overBudget(hdr, uc.cfg.MaxPixels) {
		return "", fmt.Errorf("%w: image is %dx%d, limit is %d pixels", media.ErrValidation, hdr.Width, hdr.Height, uc.cfg.MaxPixels)
	}
	return sniffed, nil
}

// checkDimensions reads only the image header and rejects pictures whose
// decoded size would exceed maxPixels.
func checkDimensions(data []byte, maxPixels int) error {
	hdr, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("read header: %v", err)
	}
	if overBudget(hdr, maxPixels) {
		return fmt.Errorf("image is %dx%d, limit is %d pixels", hdr.Width, hdr.Height, maxPixels)
	}
	return nil
}

func overBudget(hdr image.Config, maxPixels int) bool {
	return hdr.Width <= 0 || hdr.Height <= 0 || int64(hdr.Width)*int64(hdr.Height) > int64(maxPixels)
}

func normalizeType(contentType string) string {
	t, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		t = strings.TrimSpace(strings.ToLower(contentType))
	}
	if t == "image/jpg" {
		return "image/jpeg"
	}
	return t
}
