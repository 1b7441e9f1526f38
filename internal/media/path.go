package media

import (
	"fmt"
	"strings"
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// OwnerID derives the storage owner segment from a phone identity.
func OwnerID(identity string) string {
	return strings.NewReplacer("+", "", " ", "").Replace(identity)
}

// Extension maps an allowed content type to a file extension.
func Extension(contentType string) string {
	if ext, ok := extensions[contentType]; ok {
		return ext
	}
	return "bin"
}

// ObjectPath builds {ownerId}/{draftId}/{objectId}.{ext}.
func ObjectPath(ownerID, draftID, objectID, contentType string) string {
	return fmt.Sprintf("%s/%s/%s.%s", ownerID, draftID, objectID, Extension(contentType))
}
