package usecase

import (
	"errors"

	"whatsapp-bridge/internal/annotation"
	"whatsapp-bridge/internal/conversation"
	"whatsapp-bridge/internal/model"
	"whatsapp-bridge/pkg/agentbackend"
)

// buildRunRequest carries the active draft to the backend even on turns
// without new images, so the backend can keep filling the same listing.
func buildRunRequest(sc model.Scope, body string, history []model.Message, draft *annotation.Annotation) agentbackend.RunRequest {
	req := agentbackend.RunRequest{
		UserID:              sc.Identity,
		Message:             body,
		ConversationHistory: toHistory(history),
	}
	if draft != nil {
		req.DraftListingID = agentbackend.StringPtr(draft.DraftID)
		if len(draft.MediaPaths) > 0 {
			req.MediaPaths = draft.MediaPaths
			req.MediaType = agentbackend.StringPtr(draft.MediaType)
		}
	}
	return req
}

// toHistory maps session messages to the backend wire roles. Annotation notes
// travel as assistant messages.
func toHistory(messages []model.Message) []agentbackend.HistoryMessage {
	out := make([]agentbackend.HistoryMessage, len(messages))
	for i, m := range messages {
		role := string(m.Role)
		if m.Role == model.RoleSystemNote {
			role = string(model.RoleAssistant)
		}
		out[i] = agentbackend.HistoryMessage{
			Role:      role,
			Content:   m.Content,
			Timestamp: m.CreatedAt.Format("2006-01-02T15:04:05.000000"),
		}
	}
	return out
}

func backendErrorReply(err error) string {
	switch {
	case errors.Is(err, agentbackend.ErrNotConfigured):
		return conversation.MsgBackendNotConfigured
	case errors.Is(err, agentbackend.ErrTimeout):
		return conversation.MsgBackendTimeout
	case errors.Is(err, agentbackend.ErrStatus):
		return conversation.MsgBackendUnavailable
	case errors.Is(err, agentbackend.ErrUnsuccessful):
		return conversation.MsgBackendUnsuccessful
	case errors.Is(err, agentbackend.ErrEmptyResponse):
		return conversation.MsgBackendEmpty
	default:
		return conversation.MsgBackendUnexpected
	}
}
