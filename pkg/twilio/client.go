package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the Twilio REST API client for WhatsApp messaging.
type Client struct {
	accountSID    string
	authToken     string
	fromNumber    string
	apiURL        string
	maxMediaBytes int64
	httpClient    *http.Client
}

// NewClient creates a new Twilio client.
func NewClient(cfg Config) *Client {
	maxMedia := cfg.MaxMediaBytes
	if maxMedia <= 0 {
		maxMedia = defaultMaxMediaBytes
	}
	return &Client{
		accountSID:    cfg.AccountSID,
		authToken:     cfg.AuthToken,
		fromNumber:    cfg.WhatsAppNumber,
		apiURL:        defaultAPIURL,
		maxMediaBytes: maxMedia,
		httpClient:    &http.Client{},
	}
}

// SetAPIURL overrides the default Twilio API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = strings.TrimRight(url, "/")
}

// Configured reports whether account credentials are present.
func (c *Client) Configured() bool {
	return c.accountSID != "" && c.authToken != ""
}

// SendMessage sends a WhatsApp message to a phone number, with optional media URLs.
func (c *Client) SendMessage(ctx context.Context, to, body string, mediaURLs []string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.apiURL, c.accountSID)
	form := url.Values{}
	form.Set("From", WhatsAppAddress(c.fromNumber))
	form.Set("To", WhatsAppAddress(to))
	form.Set("Body", body)
	for _, m := range mediaURLs {
		form.Add("MediaUrl", m)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build send message request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr APIError
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("twilio messages API error %d (code %d): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("twilio messages API error %d: %s", resp.StatusCode, string(raw))
	}

	var out SendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode send message response: %w", err)
	}
	return out.SID, nil
}

// FetchMedia downloads a media resource using the account credentials. It
// returns the body and the Content-Type header.
func (c *Client) FetchMedia(ctx context.Context, mediaURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build media request: %w", err)
	}
	if c.Configured() {
		req.SetBasicAuth(c.accountSID, c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, "", fmt.Errorf("twilio media fetch error %d: %s", resp.StatusCode, string(raw))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxMediaBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read media body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// WhatsAppAddress prefixes a phone number with the whatsapp: channel.
func WhatsAppAddress(phone string) string {
	if strings.HasPrefix(phone, whatsappPrefix) {
		return phone
	}
	return whatsappPrefix + phone
}

// PhoneFromAddress strips the whatsapp: channel prefix.
func PhoneFromAddress(address string) string {
	return strings.TrimPrefix(address, whatsappPrefix)
}
