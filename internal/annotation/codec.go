package annotation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"whatsapp-bridge/internal/model"
)

// Codec encodes, decodes and merges media annotations.
type Codec struct {
	maxImages int
	newID     func() string
}

// NewCodec creates a Codec allowing maxImages paths per draft.
func NewCodec(maxImages int) *Codec {
	if maxImages <= 0 {
		maxImages = DefaultMaxImagesPerDraft
	}
	return &Codec{maxImages: maxImages, newID: uuid.NewString}
}

// MaxImages returns the per-draft image limit.
func (c *Codec) MaxImages() int { return c.maxImages }

// NewDraftID allocates a fresh draft identifier.
func (c *Codec) NewDraftID() string { return c.newID() }

// Encode renders a single-line annotation:
//
//	[SYSTEM_MEDIA_NOTE] DRAFT_LISTING_ID=<id> | MEDIA_PATHS=["a","b"] | MEDIA_TYPE=image/jpeg
func Encode(draftID string, mediaPaths []string, mediaType string) string {
	quoted := make([]string, len(mediaPaths))
	for i, p := range mediaPaths {
		quoted[i] = strconv.Quote(p)
	}

	var b strings.Builder
	b.WriteString(Sentinel)
	b.WriteString(" ")
	b.WriteString(KeyDraftID + "=" + draftID)
	b.WriteString(fieldSeparator)
	b.WriteString(KeyMediaPaths + "=[" + strings.Join(quoted, listDelimiter) + "]")
	b.WriteString(fieldSeparator)
	b.WriteString(KeyMediaType + "=" + mediaType)
	return b.String()
}

// Decode parses an annotation embedded anywhere in text. It returns nil when the
// sentinel is absent or the annotation is malformed.
func Decode(text string) *Annotation {
	a, err := decode(text)
	if err != nil {
		return nil
	}
	return a
}

func decode(text string) (*Annotation, error) {
	idx := strings.Index(text, Sentinel)
	if idx < 0 {
		return nil, errParse
	}
	body := text[idx+len(Sentinel):]
	if nl := strings.IndexAny(body, "\r\n"); nl >= 0 {
		body = body[:nl]
	}

	var (
		a        Annotation
		hasPaths bool
	)
	for _, field := range splitFields(body) {
		key, value, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case KeyDraftID:
			a.DraftID = value
		case KeyMediaPaths:
			paths, err := parseList(value)
			if err != nil {
				return nil, err
			}
			a.MediaPaths = paths
			hasPaths = true
		case KeyMediaType:
			a.MediaType = value
		}
	}

	if a.DraftID == "" || !hasPaths {
		return nil, fmt.Errorf("%w: missing %s or %s", errParse, KeyDraftID, KeyMediaPaths)
	}
	return &a, nil
}

// splitFields splits the note body on '|' outside quoted list items.
func splitFields(body string) []string {
	var (
		fields []string
		quote  rune
		escape bool
		last   int
	)
	for i, r := range body {
		switch {
		case escape:
			escape = false
		case quote == '"' && r == '\\':
			escape = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '|':
			fields = append(fields, body[last:i])
			last = i + 1
		}
	}
	return append(fields, body[last:])
}

// parseList reads ["a","b"] with Go string escapes, or the legacy ['a', 'b'].
func parseList(raw string) ([]string, error) {
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return nil, fmt.Errorf("%w: list not bracketed", errParse)
	}
	rest := strings.TrimSpace(raw[1 : len(raw)-1])
	paths := []string{}
	for rest != "" {
		var item string
		switch rest[0] {
		case '"':
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: bad list item: %v", errParse, err)
			}
			if item, err = strconv.Unquote(quoted); err != nil {
				return nil, fmt.Errorf("%w: bad list item: %v", errParse, err)
			}
			rest = rest[len(quoted):]
		case '\'':
			end := strings.IndexByte(rest[1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated list item %q", errParse, rest)
			}
			item = rest[1 : end+1]
			rest = rest[end+2:]
		default:
			return nil, fmt.Errorf("%w: unquoted list item %q", errParse, rest)
		}
		paths = append(paths, item)

		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		if !strings.HasPrefix(rest, listDelimiter) {
			return nil, fmt.Errorf("%w: expected %q between items", errParse, listDelimiter)
		}
		rest = strings.TrimSpace(rest[len(listDelimiter):])
		if rest == "" {
			return nil, fmt.Errorf("%w: trailing %q", errParse, listDelimiter)
		}
	}
	return paths, nil
}

// FindLatest returns the most recent decodable annotation in messages, or nil.
func FindLatest(messages []model.Message) *Annotation {
	for i := len(messages) - 1; i >= 0; i-- {
		if a := Decode(messages[i].Content); a != nil {
			return a
		}
	}
	return nil
}

// Merge appends newPaths to existing and returns a new Annotation. A nil
// existing starts a fresh draft. Exceeding the image limit returns ErrCapacity
// and no Annotation.
func (c *Codec) Merge(existing *Annotation, newPaths []string, newMediaType string) (Annotation, error) {
	base := Annotation{DraftID: c.NewDraftID()}
	if existing != nil {
		base = *existing
	}

	if total := len(base.MediaPaths) + len(newPaths); total > c.maxImages {
		return Annotation{}, fmt.Errorf("%w: draft %s would hold %d images, limit is %d",
			ErrCapacity, base.DraftID, total, c.maxImages)
	}

	paths := make([]string, 0, len(base.MediaPaths)+len(newPaths))
	paths = append(paths, base.MediaPaths...)
	paths = append(paths, newPaths...)

	return Annotation{
		DraftID:    base.DraftID,
		MediaPaths: paths,
		MediaType:  newMediaType,
	}, nil
}
