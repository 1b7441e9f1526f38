package media

import "time"

// Defaults for the ingestion pipeline.
const (
	DefaultMaxBytes        = 10 * 1024 * 1024
	DefaultMaxEdge         = 1600
	DefaultMaxPixels       = 40_000_000
	DefaultTargetBytes     = 900 * 1024
	DefaultStartQuality    = 85
	DefaultMinQuality      = 30
	DefaultQualityStep     = 5
	DefaultMaxIterations   = 12
	DefaultDownloadTimeout = 30 * time.Second
	DefaultUploadTimeout   = 30 * time.Second
)

// Attachment is one image reference carried by an inbound message.
type Attachment struct {
	URL         string
	ContentType string
}

// ProcessInput describes a single image to ingest.
type ProcessInput struct {
	Attachment
	OwnerID string
	DraftID string
}

// ProcessOutput is a successfully stored image.
type ProcessOutput struct {
	Index       int // attachment position, set by ProcessBatch
	Path        string
	ContentType string
	Size        int
}

// BatchInput describes all images attached to one inbound message.
type BatchInput struct {
	OwnerID     string
	DraftID     string
	Attachments []Attachment
}

// BatchOutput holds stored images in attachment order, plus per-image failures.
type BatchOutput struct {
	Stored   []ProcessOutput
	Failures []Failure
}

// Paths returns the storage paths of Stored in order.
func (o BatchOutput) Paths() []string {
	paths := make([]string, len(o.Stored))
	for i, s := range o.Stored {
		paths[i] = s.Path
	}
	return paths
}

// MediaType returns the content type of the last stored image, or "".
func (o BatchOutput) MediaType() string {
	if len(o.Stored) == 0 {
		return ""
	}
	return o.Stored[len(o.Stored)-1].ContentType
}

// Failure records why one attachment could not be stored.
type Failure struct {
	Index int
	URL   string
	Err   error
}

func (f Failure) Error() string { return f.Err.Error() }

func (f Failure) Unwrap() error { return f.Err }

// Compressed is the result of Compress.
type Compressed struct {
	Data    []byte
	Quality int
	Width   int
	Height  int
}

// Config tunes the pipeline. Zero fields take the package defaults.
type Config struct {
	MaxBytes        int
	MaxEdge         int
	MaxPixels       int // decoded width*height budget
	TargetBytes     int
	StartQuality    int
	MinQuality      int
	QualityStep     int
	CompressWorkers int
	DownloadTimeout time.Duration
	UploadTimeout   time.Duration
}
