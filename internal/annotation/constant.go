package annotation

const (
	// Sentinel marks a history message as a media annotation.
	Sentinel = "[SYSTEM_MEDIA_NOTE]"

	KeyDraftID    = "DRAFT_LISTING_ID"
	KeyMediaPaths = "MEDIA_PATHS"
	KeyMediaType  = "MEDIA_TYPE"

	fieldSeparator = " | "
	listDelimiter  = ","

	// DefaultMaxImagesPerDraft bounds Annotation.MediaPaths.
	DefaultMaxImagesPerDraft = 3
)
