package conversation

import "whatsapp-bridge/internal/media"

// HandleMessageInput is one inbound message.
type HandleMessageInput struct {
	Body        string
	MessageSID  string
	Attachments []media.Attachment
}

// Source says how a reply was produced.
type Source string

const (
	SourceBackend       Source = "backend"
	SourceSearchCache   Source = "search_cache"
	SourceBackendFailed Source = "backend_failed"
)

// HandleMessageOutput is the outcome of one turn.
type HandleMessageOutput struct {
	Reply      string
	Source     Source
	Intent     string
	DraftID    string
	MediaPaths []string // every image of the active draft
	Failures   []media.Failure
}
