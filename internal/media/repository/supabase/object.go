package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"whatsapp-bridge/internal/media/repository"
)

// PutObject uploads via POST /storage/v1/object/{bucket}/{path} without upsert.
func (r *implRepository) PutObject(ctx context.Context, path, contentType string, data []byte) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", r.baseURL, r.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.serviceKey)
	req.Header.Set("apikey", r.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", strconv.Itoa(len(data)))
	req.Header.Set("x-upsert", "false")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call supabase storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return fmt.Errorf("%w: %s", repository.ErrObjectExists, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		// Supabase reports duplicates as 400 with a 409 statusCode in the body.
		if bytes.Contains(raw, []byte(`"409"`)) || bytes.Contains(raw, []byte("Duplicate")) {
			return fmt.Errorf("%w: %s", repository.ErrObjectExists, path)
		}
		return fmt.Errorf("supabase storage upload error %d: %s", resp.StatusCode, string(raw))
	}

	r.l.Debugf(ctx, "internal.media.repository.supabase.PutObject: stored %s (%d bytes)", path, len(data))
	return nil
}
