package http

import (
	"time"

	"whatsapp-bridge/internal/model"
	"whatsapp-bridge/internal/session"
)

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type detailResp struct {
	PhoneNumber  string        `json:"phone_number"`
	MessageCount int           `json:"message_count"`
	Messages     []messageResp `json:"messages"`
	SearchCache  int           `json:"search_cache_results"`
	LastActivity *time.Time    `json:"last_activity,omitempty"`
}

type clearResp struct {
	Status      string `json:"status"`
	PhoneNumber string `json:"phone_number"`
	Existed     bool   `json:"existed"`
}

func (h *handler) newDetailResp(phone string, sess session.Session, ok bool) detailResp {
	resp := detailResp{
		PhoneNumber: phone,
		Messages:    make([]messageResp, 0, len(sess.Messages)),
	}
	if !ok {
		return resp
	}
	for _, m := range sess.Messages {
		resp.Messages = append(resp.Messages, newMessageResp(m))
	}
	resp.MessageCount = len(resp.Messages)
	resp.SearchCache = len(sess.SearchCache)
	last := sess.LastActivity
	resp.LastActivity = &last
	return resp
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{Role: string(m.Role), Content: m.Content, Timestamp: m.CreatedAt}
}
