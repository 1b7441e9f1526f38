package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"whatsapp-bridge/internal/media"
)

// Compress waits for a worker slot and re-encodes data as JPEG.
func (uc *implUseCase) Compress(ctx context.Context, data []byte) (media.Compressed, error) {
	if err := uc.sem.Acquire(ctx, 1); err != nil {
		return media.Compressed{}, fmt.Errorf("%w: %w", media.ErrCompression, err)
	}
	defer uc.sem.Release(1)

	return compress(data, uc.cfg)
}

// compress flattens the image onto white, bounds its longest edge and lowers
// JPEG quality step by step until the output fits the target or the floor is
// reached. The floor output is returned even if it is still too large.
func compress(data []byte, cfg media.Config) (media.Compressed, error) {
	if err := checkDimensions(data, cfg.MaxPixels); err != nil {
		return media.Compressed{}, fmt.Errorf("%w: %v", media.ErrCompression, err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return media.Compressed{}, fmt.Errorf("%w: decode: %v", media.ErrCompression, err)
	}

	sb := src.Bounds()
	w, h := fitWithin(sb.Dx(), sb.Dy(), cfg.MaxEdge)
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(canvas, canvas.Bounds(), src, sb.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(canvas, canvas.Bounds(), src, sb, draw.Over, nil)
	}

	var buf bytes.Buffer
	quality := cfg.StartQuality
	for i := 1; ; i++ {
		buf.Reset()
		if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: quality}); err != nil {
			return media.Compressed{}, fmt.Errorf("%w: encode: %v", media.ErrCompression, err)
		}
		if buf.Len() <= cfg.TargetBytes || quality <= cfg.MinQuality || i >= media.DefaultMaxIterations {
			break
		}
		quality = max(quality-cfg.QualityStep, cfg.MinQuality)
	}

	return media.Compressed{
		Data:    bytes.Clone(buf.Bytes()),
		Quality: quality,
		Width:   w,
		Height:  h,
	}, nil
}

// fitWithin scales (w, h) so the longest edge is at most maxEdge. It never upscales.
func fitWithin(w, h, maxEdge int) (int, int) {
	longest := max(w, h)
	if longest <= maxEdge {
		return w, h
	}
	scale := float64(maxEdge) / float64(longest)
	nw := max(int(float64(w)*scale+0.5), 1)
	nh := max(int(float64(h)*scale+0.5), 1)
	return nw, nh
}
