package usecase

import (
	"context"
	"fmt"

	"whatsapp-bridge/internal/annotation"
	"whatsapp-bridge/internal/media"
	"whatsapp-bridge/internal/model"
)

// ingestMedia stores as many attachments as the active draft has room for and
// appends an annotation note when at least one was stored. It returns the
// draft that is active afterwards.
func (uc *implUseCase) ingestMedia(ctx context.Context, sc model.Scope, latest *annotation.Annotation, attachments []media.Attachment) (*annotation.Annotation, []string, []media.Failure) {
	active := latest
	if active == nil {
		active = &annotation.Annotation{DraftID: uc.codec.NewDraftID()}
	}

	room := active.Remaining(uc.codec.MaxImages())
	accepted := attachments[:min(room, len(attachments))]

	var batch media.BatchOutput
	if len(accepted) > 0 {
		batch = uc.media.ProcessBatch(ctx, media.BatchInput{
			OwnerID:     sc.OwnerID,
			DraftID:     active.DraftID,
			Attachments: accepted,
		})
	}
	failures := batch.Failures
	for i := len(accepted); i < len(attachments); i++ {
		failures = append(failures, media.Failure{
			Index: i,
			URL:   attachments[i].URL,
			Err:   fmt.Errorf("%w: draft %s is full", annotation.ErrCapacity, active.DraftID),
		})
	}

	if len(batch.Stored) == 0 {
		return latest, nil, failures
	}

	merged, err := uc.codec.Merge(active, batch.Paths(), batch.MediaType())
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.ingestMedia: codec.Merge: %v", err)
		for _, s := range batch.Stored {
			failures = append(failures, media.Failure{Index: s.Index, URL: attachments[s.Index].URL, Err: err})
		}
		return latest, nil, failures
	}

	note := annotation.Encode(merged.DraftID, merged.MediaPaths, merged.MediaType)
	uc.sessions.Append(sc.Identity, model.NewMessage(model.RoleSystemNote, note))
	return &merged, batch.Paths(), failures
}
