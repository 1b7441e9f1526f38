package media

import "context"

// Fetcher downloads media hosted by the messaging gateway.
type Fetcher interface {
	FetchMedia(ctx context.Context, url string) ([]byte, string, error)
}

// UseCase ingests user-submitted images into object storage.
type UseCase interface {
	// Download fetches raw bytes and the declared content type.
	Download(ctx context.Context, url string) ([]byte, string, error)
	// Validate checks the declared type, size and sniffed type. It returns the normalised content type.
	Validate(data []byte, declaredType string) (string, error)
	// Compress re-encodes an image as a bounded JPEG.
	Compress(ctx context.Context, data []byte) (Compressed, error)
	// Upload stores data at path.
	Upload(ctx context.Context, path, contentType string, data []byte) error
	// Process runs download, validate, compress and upload for one image.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// ProcessBatch processes every attachment independently.
	ProcessBatch(ctx context.Context, input BatchInput) BatchOutput
}
