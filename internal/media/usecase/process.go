package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"whatsapp-bridge/internal/media"
)

const outputType = "image/jpeg"

// Process ingests one image and returns its storage path.
func (uc *implUseCase) Process(ctx context.Context, input media.ProcessInput) (media.ProcessOutput, error) {
	data, headerType, err := uc.Download(ctx, input.URL)
	if err != nil {
		uc.l.Warnf(ctx, "internal.media.usecase.Process: %v", err)
		return media.ProcessOutput{}, err
	}

	declared := input.ContentType
	if declared == "" {
		declared = headerType
	}
	if _, err := uc.Validate(data, declared); err != nil {
		uc.l.Warnf(ctx, "internal.media.usecase.Process: %v", err)
		return media.ProcessOutput{}, err
	}

	out, err := uc.Compress(ctx, data)
	if err != nil {
		uc.l.Warnf(ctx, "internal.media.usecase.Process: %v", err)
		return media.ProcessOutput{}, err
	}
	uc.l.Debugf(ctx, "internal.media.usecase.Process: compressed %d -> %d bytes at q%d (%dx%d)",
		len(data), len(out.Data), out.Quality, out.Width, out.Height)

	path := media.ObjectPath(input.OwnerID, input.DraftID, uc.newID(), outputType)
	if err := uc.Upload(ctx, path, outputType, out.Data); err != nil {
		uc.l.Errorf(ctx, "internal.media.usecase.Process: %v", err)
		return media.ProcessOutput{}, err
	}

	uc.l.Infof(ctx, "internal.media.usecase.Process: stored %s", path)
	return media.ProcessOutput{Path: path, ContentType: outputType, Size: len(out.Data)}, nil
}

// ProcessBatch processes attachments in parallel. One failing image never
// stops the others; results keep attachment order.
func (uc *implUseCase) ProcessBatch(ctx context.Context, input media.BatchInput) media.BatchOutput {
	type result struct {
		out media.ProcessOutput
		err error
	}
	results := make([]result, len(input.Attachments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.CompressWorkers)
	for i, att := range input.Attachments {
		g.Go(func() error {
			out, err := uc.Process(gctx, media.ProcessInput{
				Attachment: att,
				OwnerID:    input.OwnerID,
				DraftID:    input.DraftID,
			})
			results[i] = result{out: out, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var batch media.BatchOutput
	for i, r := range results {
		if r.err != nil {
			batch.Failures = append(batch.Failures, media.Failure{Index: i, URL: input.Attachments[i].URL, Err: r.err})
			continue
		}
		r.out.Index = i
		batch.Stored = append(batch.Stored, r.out)
	}
	return batch
}
