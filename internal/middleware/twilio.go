package middleware

import (
	"strings"

	"whatsapp-bridge/pkg/response"
	"whatsapp-bridge/pkg/twilio"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const signatureHeader = "X-Twilio-Signature"

// TwilioSignature rejects webhook posts whose signature does not match.
// It is a no-op when verification is disabled.
func (m Middleware) TwilioSignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.cfg.ValidateSignature {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if err := c.Request.ParseForm(); err != nil {
			m.l.Warnf(ctx, "internal.middleware.TwilioSignature: parse form: %v", err)
			response.Unauthorized(c)
			return
		}

		fullURL := strings.TrimRight(m.cfg.PublicURL, "/") + c.Request.URL.RequestURI()
		sig := c.GetHeader(signatureHeader)
		if sig == "" || !twilio.ValidateSignature(m.cfg.AuthToken, fullURL, c.Request.PostForm, sig) {
			m.l.Warnf(ctx, "internal.middleware.TwilioSignature: invalid signature for %s", fullURL)
			response.Unauthorized(c)
			return
		}

		c.Next()
	}
}

// SenderRateLimit throttles webhook posts per From address.
func (m Middleware) SenderRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.RateLimitPerMin <= 0 {
			c.Next()
			return
		}

		key := c.PostForm("From")
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiter(key).Allow() {
			m.l.Warnf(c.Request.Context(), "internal.middleware.SenderRateLimit: rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}

func (m Middleware) limiter(key string) *rate.Limiter {
	lim, ok := m.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(m.rate, m.burst)
		m.limiters.Add(key, lim)
	}
	return lim
}
