package whatsapp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"whatsapp-bridge/internal/conversation"
	"whatsapp-bridge/internal/media"
	"whatsapp-bridge/internal/model"
	"whatsapp-bridge/pkg/twilio"
)

// inboundReq is the subset of the Twilio messaging webhook form we use.
type inboundReq struct {
	From        string
	Body        string
	MessageSID  string
	NumMedia    int
	Attachments []media.Attachment
}

// processInboundReq reads the webhook form, keeping at most maxMedia attachments.
func (h *handler) processInboundReq(c *gin.Context) inboundReq {
	req := inboundReq{
		From:       twilio.PhoneFromAddress(strings.TrimSpace(c.PostForm("From"))),
		Body:       c.PostForm("Body"),
		MessageSID: c.PostForm("MessageSid"),
	}
	req.NumMedia, _ = strconv.Atoi(c.PostForm("NumMedia"))

	for i := 0; i < min(req.NumMedia, h.maxMedia); i++ {
		url := c.PostForm(fmt.Sprintf("MediaUrl%d", i))
		if url == "" {
			continue
		}
		req.Attachments = append(req.Attachments, media.Attachment{
			URL:         url,
			ContentType: c.PostForm(fmt.Sprintf("MediaContentType%d", i)),
		})
	}
	return req
}

func (r inboundReq) empty() bool {
	return strings.TrimSpace(r.Body) == "" && len(r.Attachments) == 0
}

func (r inboundReq) toScope() model.Scope {
	return model.Scope{Identity: r.From, OwnerID: media.OwnerID(r.From)}
}

func (r inboundReq) toInput() conversation.HandleMessageInput {
	return conversation.HandleMessageInput{
		Body:        r.Body,
		MessageSID:  r.MessageSID,
		Attachments: r.Attachments,
	}
}
