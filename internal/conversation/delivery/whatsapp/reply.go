package whatsapp

import (
	"regexp"
	"strings"
)

const (
	maxMessageLength  = 1600
	mediaURLOverhead  = 120
	lengthSafetyGap   = 100
	truncateKeepSlack = 60
	maxReplyMedia     = 3
	truncatedSuffix   = "\n\n...(devamı için daha spesifik arama yapın)"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

var imageSuffixes = []string{".jpg", ".jpeg", ".png", ".webp"}

// outboundMessage picks up to three image URLs from text to attach as media
// and truncates the body so body plus media stays under the WhatsApp limit.
func outboundMessage(text string) (string, []string) {
	mediaURLs := extractImageURLs(text)

	limit := maxMessageLength - len(mediaURLs)*mediaURLOverhead - lengthSafetyGap
	runes := []rune(text)
	if len(runes) <= limit {
		return text, mediaURLs
	}
	return string(runes[:limit-truncateKeepSlack]) + truncatedSuffix, mediaURLs
}

// extractImageURLs returns storage object links or URLs with an image extension.
func extractImageURLs(text string) []string {
	var images []string
	for _, u := range urlPattern.FindAllString(text, -1) {
		u = strings.TrimRight(u, ").,;")
		if isImageURL(strings.ToLower(u)) {
			images = append(images, u)
		}
		if len(images) >= maxReplyMedia {
			break
		}
	}
	return images
}

func isImageURL(lower string) bool {
	if strings.Contains(lower, "/storage/v1/object/") {
		return true
	}
	for _, s := range imageSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
