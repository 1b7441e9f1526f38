package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"whatsapp-bridge/pkg/response"
	"whatsapp-bridge/pkg/twilio"
)

var errPhoneRequired = errors.New("phone number is required")

// Detail godoc
// @Summary     Get conversation history
// @Description Returns the in-memory history of a phone number without refreshing its expiry.
// @Tags        Conversation
// @Produce     json
// @Param       phone path string true "Phone number, e.g. +905551112233"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /conversation/{phone} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	phone, err := processPhone(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, ok := h.uc.History(ctx, phone)
	response.OK(c, h.newDetailResp(phone, sess, ok))
}

// Clear godoc
// @Summary     Clear conversation history
// @Description Drops the in-memory session of a phone number.
// @Tags        Conversation
// @Produce     json
// @Param       phone path string true "Phone number, e.g. +905551112233"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /conversation/clear/{phone} [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	phone, err := processPhone(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	existed := h.uc.Clear(ctx, phone)
	response.OK(c, clearResp{Status: "cleared", PhoneNumber: phone, Existed: existed})
}

// processPhone accepts "+90...", "90..." with a leading space from URL
// decoding of '+', or a whatsapp: address.
func processPhone(c *gin.Context) (string, error) {
	phone := twilio.PhoneFromAddress(c.Param("phone"))
	if strings.HasPrefix(phone, " ") {
		phone = "+" + strings.TrimSpace(phone)
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", errPhoneRequired
	}
	return phone, nil
}
