package twilio

import "errors"

const (
	defaultAPIURL        = "https://api.twilio.com"
	whatsappPrefix       = "whatsapp:"
	defaultMaxMediaBytes = 10 * 1024 * 1024
)

// EmptyTwiML acknowledges a webhook without sending a reply.
const EmptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// ErrNotConfigured is returned when account credentials are missing.
var ErrNotConfigured = errors.New("twilio not configured")

// Config holds the Twilio account settings.
type Config struct {
	AccountSID     string
	AuthToken      string
	WhatsAppNumber string
	// MaxMediaBytes caps how much of a media download is read. Reading stops
	// one byte past the cap so callers can still detect oversize files.
	MaxMediaBytes int64
}

// SendMessageResponse is the subset of the Messages resource we use.
type SendMessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// APIError is the Twilio REST error body.
type APIError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}
