package usecase

import (
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"whatsapp-bridge/internal/media"
	"whatsapp-bridge/internal/media/repository"
	pkgLog "whatsapp-bridge/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	fetcher media.Fetcher
	storage repository.ObjectStorage
	cfg     media.Config
	sem     *semaphore.Weighted
	newID   func() string
}

// New creates a media UseCase. Zero config fields take package defaults.
func New(l pkgLog.Logger, fetcher media.Fetcher, storage repository.ObjectStorage, cfg media.Config) media.UseCase {
	cfg = withDefaults(cfg)
	return &implUseCase{
		l:       l,
		fetcher: fetcher,
		storage: storage,
		cfg:     cfg,
		sem:     semaphore.NewWeighted(int64(cfg.CompressWorkers)),
		newID:   uuid.NewString,
	}
}

func withDefaults(cfg media.Config) media.Config {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = media.DefaultMaxBytes
	}
	if cfg.MaxEdge <= 0 {
		cfg.MaxEdge = media.DefaultMaxEdge
	}
	if cfg.MaxPixels <= 0 {
		cfg.MaxPixels = media.DefaultMaxPixels
	}
	if cfg.TargetBytes <= 0 {
		cfg.TargetBytes = media.DefaultTargetBytes
	}
	if cfg.StartQuality <= 0 || cfg.StartQuality > 100 {
		cfg.StartQuality = media.DefaultStartQuality
	}
	if cfg.MinQuality <= 0 || cfg.MinQuality > cfg.StartQuality {
		cfg.MinQuality = media.DefaultMinQuality
	}
	if cfg.QualityStep <= 0 {
		cfg.QualityStep = media.DefaultQualityStep
	}
	if cfg.CompressWorkers <= 0 {
		cfg.CompressWorkers = runtime.NumCPU()
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = media.DefaultDownloadTimeout
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = media.DefaultUploadTimeout
	}
	return cfg
}
