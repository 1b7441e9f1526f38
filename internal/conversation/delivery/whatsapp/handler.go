package whatsapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsapp-bridge/internal/conversation"
	pkgLog "whatsapp-bridge/pkg/log"
	"whatsapp-bridge/pkg/twilio"
)

// HandleWebhook godoc
// @Summary     Twilio WhatsApp webhook
// @Description Acknowledges with empty TwiML and answers asynchronously through the Twilio REST API.
// @Tags        WhatsApp
// @Accept      x-www-form-urlencoded
// @Produce     xml
// @Param       From       formData string true  "Sender, e.g. whatsapp:+905551112233"
// @Param       Body       formData string false "Message text"
// @Param       MessageSid formData string false "Twilio message SID"
// @Param       NumMedia   formData int    false "Number of attachments"
// @Success     200 {string} string "Empty TwiML"
// @Router      /webhook/whatsapp [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	req := h.processInboundReq(c)

	switch {
	case req.From == "":
		h.l.Warnf(ctx, "whatsapp handler: webhook without sender ignored")
	case req.empty():
		h.l.Infof(ctx, "whatsapp handler: empty message from %s ignored", req.From)
	case h.duplicate(req.MessageSID):
		h.l.Infof(ctx, "whatsapp handler: duplicate delivery %s ignored", req.MessageSID)
	default:
		h.l.Infof(ctx, "whatsapp handler: message %s from %s with %d/%d media",
			req.MessageSID, req.From, len(req.Attachments), req.NumMedia)

		// Twilio retries slow webhooks, so the turn runs detached from the request.
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			bgCtx, cancel := context.WithTimeout(pkgLog.WithTraceID(context.Background(), req.MessageSID), h.processTimeout)
			defer cancel()
			h.processMessage(bgCtx, req)
		}()
	}

	c.Data(http.StatusOK, "application/xml", []byte(twilio.EmptyTwiML))
}

func (h *handler) Wait() {
	h.wg.Wait()
}

// duplicate records sid and reports whether it was already seen.
func (h *handler) duplicate(sid string) bool {
	if sid == "" {
		return false
	}
	h.seenMu.Lock()
	defer h.seenMu.Unlock()
	if h.seen.Contains(sid) {
		return true
	}
	h.seen.Add(sid, struct{}{})
	return false
}

func (h *handler) processMessage(ctx context.Context, req inboundReq) {
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "whatsapp handler: panic while processing %s: %v", req.MessageSID, r)
			h.send(ctx, req.From, conversation.MsgGenericError)
		}
	}()

	out, err := h.uc.HandleMessage(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "whatsapp handler: uc.HandleMessage: %v", err)
		h.send(ctx, req.From, conversation.MsgGenericError)
		return
	}
	h.l.Infof(ctx, "whatsapp handler: replied via %s (intent=%s, draft=%s, images=%d, failures=%d)",
		out.Source, out.Intent, out.DraftID, len(out.MediaPaths), len(out.Failures))
	h.send(ctx, req.From, out.Reply)
}

func (h *handler) send(ctx context.Context, to, text string) {
	body, mediaURLs := outboundMessage(text)
	if len(body) != len(text) {
		h.l.Warnf(ctx, "whatsapp handler: reply truncated from %d to %d bytes (%d media)", len(text), len(body), len(mediaURLs))
	}

	sid, err := h.sender.SendMessage(ctx, to, body, mediaURLs)
	if errors.Is(err, twilio.ErrNotConfigured) {
		h.l.Warnf(ctx, "whatsapp handler: twilio not configured, reply to %s not sent", to)
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "whatsapp handler: SendMessage to %s: %v", to, err)
		return
	}
	h.l.Infof(ctx, "whatsapp handler: reply %s sent to %s", sid, to)
}
