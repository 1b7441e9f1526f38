package whatsapp

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"whatsapp-bridge/internal/conversation"
	pkgLog "whatsapp-bridge/pkg/log"
)

const (
	defaultMaxMedia       = 10
	defaultDedupTTL       = 10 * time.Minute
	defaultDedupSize      = 10000
	defaultProcessTimeout = 3 * time.Minute
)

// Handler is the interface for the WhatsApp delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every background turn has finished.
	Wait()
}

// Sender delivers outbound WhatsApp messages.
type Sender interface {
	SendMessage(ctx context.Context, to, body string, mediaURLs []string) (string, error)
}

// Config tunes webhook handling. Zero fields take defaults.
type Config struct {
	MaxMedia       int
	DedupTTL       time.Duration
	ProcessTimeout time.Duration
}

type handler struct {
	l              pkgLog.Logger
	uc             conversation.UseCase
	sender         Sender
	maxMedia       int
	processTimeout time.Duration

	seenMu sync.Mutex
	seen   *expirable.LRU[string, struct{}]
	wg     sync.WaitGroup
}

// New creates a new WhatsApp delivery handler.
func New(l pkgLog.Logger, uc conversation.UseCase, sender Sender, cfg Config) Handler {
	if cfg.MaxMedia <= 0 {
		cfg.MaxMedia = defaultMaxMedia
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = defaultDedupTTL
	}
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = defaultProcessTimeout
	}
	return &handler{
		l:              l,
		uc:             uc,
		sender:         sender,
		maxMedia:       cfg.MaxMedia,
		processTimeout: cfg.ProcessTimeout,
		seen:           expirable.NewLRU[string, struct{}](defaultDedupSize, nil, cfg.DedupTTL),
	}
}
