package middleware

import (
	"time"

	"whatsapp-bridge/pkg/log"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Config controls the webhook guards.
type Config struct {
	// AuthToken is the Twilio auth token used to verify X-Twilio-Signature.
	AuthToken string
	// PublicURL is the externally visible base URL Twilio posts to, e.g. https://bot.example.com.
	PublicURL string
	// ValidateSignature turns signature verification on.
	ValidateSignature bool
	// RateLimitPerMin is the per-sender budget. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	cfg      Config
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg Config) Middleware {
	burst := cfg.RateLimitPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:        l,
		cfg:      cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(cfg.RateLimitPerMin) / 60.0),
		burst:    burst,
	}
}
