package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"whatsapp-bridge/config"
	_ "whatsapp-bridge/docs" // Swagger docs
	"whatsapp-bridge/internal/annotation"
	convUC "whatsapp-bridge/internal/conversation/usecase"
	"whatsapp-bridge/internal/conversation/delivery/whatsapp"
	"whatsapp-bridge/internal/httpserver"
	"whatsapp-bridge/internal/media"
	mediaRepo "whatsapp-bridge/internal/media/repository"
	"whatsapp-bridge/internal/media/repository/gcs"
	"whatsapp-bridge/internal/media/repository/supabase"
	mediaUC "whatsapp-bridge/internal/media/usecase"
	"whatsapp-bridge/internal/middleware"
	"whatsapp-bridge/internal/router"
	"whatsapp-bridge/internal/session"
	"whatsapp-bridge/pkg/agentbackend"
	"whatsapp-bridge/pkg/log"
	"whatsapp-bridge/pkg/twilio"

	"github.com/joho/godotenv"
)

// @title       WhatsApp Listing Bridge API
// @description Bridges Twilio WhatsApp messages to the listing agent backend, with per-user sessions and image ingestion.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional)
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded, using system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting WhatsApp bridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Agent backend URL: %s", cfg.AgentBackend.URL)

	// 3. Collaborators
	twilioClient := twilio.NewClient(twilio.Config{
		AccountSID:     cfg.Twilio.AccountSID,
		AuthToken:      cfg.Twilio.AuthToken,
		WhatsAppNumber: cfg.Twilio.WhatsAppNumber,
		MaxMediaBytes:  int64(cfg.Media.MaxBytes),
	})
	if !twilioClient.Configured() {
		logger.Warn(ctx, "Twilio credentials missing: media downloads are unauthenticated and replies are not sent")
	}

	backend := agentbackend.NewClient(cfg.AgentBackend.URL, cfg.AgentBackend.Timeout)

	storage, err := newObjectStorage(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize object storage: %v", err)
		return
	}
	logger.Infof(ctx, "Object storage provider: %s", cfg.Storage.Provider)

	// 4. Core
	sessions := session.New(session.Config{
		TTL:        cfg.Session.TTL,
		MaxHistory: cfg.Session.MaxHistory,
	})
	if cfg.Session.SweepInterval > 0 {
		go session.NewSweeper(sessions, cfg.Session.SweepInterval, logger).Run(ctx)
	}

	pipeline := mediaUC.New(logger, twilioClient, storage, media.Config{
		MaxBytes:        cfg.Media.MaxBytes,
		MaxEdge:         cfg.Media.MaxEdge,
		TargetBytes:     cfg.Media.TargetBytes,
		CompressWorkers: cfg.Media.CompressWorkers,
		DownloadTimeout: cfg.Media.DownloadTimeout,
		UploadTimeout:   cfg.Media.UploadTimeout,
	})

	conversationUC := convUC.New(
		logger,
		sessions,
		pipeline,
		annotation.NewCodec(cfg.Media.MaxImagesPerDraft),
		router.New(logger),
		backend,
	)

	// 5. Delivery
	whatsappHandler := whatsapp.New(logger, conversationUC, twilioClient, whatsapp.Config{
		DedupTTL:       cfg.Webhook.DedupTTL,
		ProcessTimeout: cfg.Webhook.ProcessTimeout,
	})

	mw := middleware.New(logger, middleware.Config{
		AuthToken:         cfg.Twilio.AuthToken,
		PublicURL:         cfg.Webhook.PublicURL,
		ValidateSignature: cfg.Webhook.ValidateSignature,
		RateLimitPerMin:   cfg.Webhook.RateLimitPerMin,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ConversationUC:   conversationUC,
		WhatsAppHandler:  whatsappHandler,
		Middleware:       mw,
		TwilioConfigured: twilioClient.Configured(),
		AgentBackendURL:  backend.BaseURL(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

func newObjectStorage(ctx context.Context, cfg config.StorageConfig, l log.Logger) (mediaRepo.ObjectStorage, error) {
	switch cfg.Provider {
	case config.StorageGCS:
		return gcs.New(ctx, gcs.Config{
			Bucket:          cfg.GCS.Bucket,
			CredentialsPath: cfg.GCS.CredentialsPath,
		}, l)
	default:
		return supabase.New(supabase.Config{
			URL:        cfg.Supabase.URL,
			ServiceKey: cfg.Supabase.ServiceKey,
			Bucket:     cfg.Supabase.Bucket,
		}, l)
	}
}
