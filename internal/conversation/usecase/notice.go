package usecase

import (
	"errors"
	"fmt"
	"strings"

	"whatsapp-bridge/internal/annotation"
	"whatsapp-bridge/internal/conversation"
	"whatsapp-bridge/internal/media"
)

// failureNotice explains every failed attachment, numbered from 1.
func failureNotice(failures []media.Failure, maxImages int) string {
	if len(failures) == 0 {
		return ""
	}
	lines := make([]string, len(failures))
	for i, f := range failures {
		lines[i] = fmt.Sprintf(conversation.MsgMediaFailed, f.Index+1, failureReason(f.Err, maxImages))
	}
	return strings.Join(lines, "\n")
}

func failureReason(err error, maxImages int) string {
	switch {
	case errors.Is(err, annotation.ErrCapacity):
		return fmt.Sprintf(conversation.ReasonMediaCapacity, maxImages)
	case errors.Is(err, media.ErrValidation):
		return conversation.ReasonMediaInvalid
	case errors.Is(err, media.ErrCompression):
		return conversation.ReasonMediaCorrupt
	case errors.Is(err, media.ErrNetwork):
		return conversation.ReasonMediaNetwork
	default:
		return conversation.ReasonMediaUnknown
	}
}
