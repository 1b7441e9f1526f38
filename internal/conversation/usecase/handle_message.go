package usecase

import (
	"context"
	"fmt"
	"strings"

	"whatsapp-bridge/internal/annotation"
	"whatsapp-bridge/internal/conversation"
	"whatsapp-bridge/internal/model"
	"whatsapp-bridge/internal/router"
)

// HandleMessage runs one turn while holding the sender's turn lock.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input conversation.HandleMessageInput) (conversation.HandleMessageOutput, error) {
	if sc.Identity == "" {
		return conversation.HandleMessageOutput{}, conversation.ErrNoIdentity
	}
	if strings.TrimSpace(input.Body) == "" && len(input.Attachments) == 0 {
		return conversation.HandleMessageOutput{}, conversation.ErrEmptyMessage
	}

	if n := uc.sessions.SweepExpired(uc.sessions.Now()); n > 0 {
		uc.l.Infof(ctx, "internal.conversation.usecase.HandleMessage: swept %d expired sessions", n)
	}

	unlock := uc.sessions.Lock(sc.Identity)
	defer unlock()

	sess := uc.sessions.GetOrCreate(sc.Identity)
	draft := annotation.FindLatest(sess.Messages)

	var out conversation.HandleMessageOutput
	if len(input.Attachments) > 0 {
		var stored []string
		draft, stored, out.Failures = uc.ingestMedia(ctx, sc, draft, input.Attachments)
		uc.l.Infof(ctx, "internal.conversation.usecase.HandleMessage: %d/%d images stored", len(stored), len(input.Attachments))
	}
	if draft != nil {
		out.DraftID = draft.DraftID
		out.MediaPaths = draft.MediaPaths
	}
	notice := failureNotice(out.Failures, uc.codec.MaxImages())

	cache := uc.sessions.SearchCache(sc.Identity)
	if route := uc.router.Classify(ctx, input.Body, len(cache)); route.Intent == router.IntentListingDetail {
		out.Source = conversation.SourceSearchCache
		out.Intent = string(route.Intent)
		reply := detailReply(cache, route.Index)
		uc.recordTurn(sc.Identity, input.Body, reply)
		out.Reply = withNotice(notice, reply)
		return out, nil
	}

	history := uc.sessions.GetOrCreate(sc.Identity).Messages
	resp, err := uc.backend.Run(ctx, buildRunRequest(sc, input.Body, history, draft))
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.HandleMessage: backend.Run: %v", err)
		out.Source = conversation.SourceBackendFailed
		out.Reply = withNotice(notice, backendErrorReply(err))
		return out, nil
	}
	out.Source = conversation.SourceBackend
	out.Intent = resp.Intent

	text, results, found := parseSearchCache(resp.Response)
	if found && len(results) > 0 {
		uc.sessions.SetSearchCache(sc.Identity, results)
		uc.l.Infof(ctx, "internal.conversation.usecase.HandleMessage: cached %d search results", len(results))
	}

	if id, ok := uc.backendDraftID(ctx, resp.DraftListingID); ok && (draft == nil || draft.DraftID != id) {
		uc.sessions.Append(sc.Identity, model.NewMessage(model.RoleSystemNote, annotation.Encode(id, nil, "")))
		uc.l.Infof(ctx, "internal.conversation.usecase.HandleMessage: backend switched draft to %s", id)
		out.DraftID = id
		out.MediaPaths = nil
	}

	uc.recordTurn(sc.Identity, input.Body, text)
	out.Reply = withNotice(notice, text)
	return out, nil
}

// backendDraftID accepts a draft id returned by the backend only when it is a UUID.
func (uc *implUseCase) backendDraftID(ctx context.Context, raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	id, ok := annotation.ParseDraftID(raw)
	if !ok {
		uc.l.Warnf(ctx, "internal.conversation.usecase.HandleMessage: ignoring invalid draft id %q from backend", raw)
	}
	return id, ok
}

func (uc *implUseCase) recordTurn(identity, userText, reply string) {
	uc.sessions.Append(identity, model.NewMessage(model.RoleUser, userText))
	uc.sessions.Append(identity, model.NewMessage(model.RoleAssistant, reply))
}

func withNotice(notice, reply string) string {
	if notice == "" {
		return reply
	}
	if reply == "" {
		return notice
	}
	return fmt.Sprintf("%s\n\n%s", notice, reply)
}
