package annotation

import (
	"strings"

	"github.com/google/uuid"
)

// Annotation links a draft to the storage paths uploaded for it so far.
type Annotation struct {
	DraftID    string
	MediaPaths []string
	MediaType  string
}

// Remaining reports how many more images the draft accepts under limit.
func (a *Annotation) Remaining(limit int) int {
	if a == nil {
		return limit
	}
	if n := limit - len(a.MediaPaths); n > 0 {
		return n
	}
	return 0
}

// ParseDraftID returns the canonical form of an externally supplied draft id.
// Only UUIDs are accepted, so the id is safe inside storage paths and notes.
func ParseDraftID(raw string) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return id.String(), true
}
