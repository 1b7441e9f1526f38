package usecase

import (
	"fmt"
	"strings"

	"whatsapp-bridge/internal/conversation"
	"whatsapp-bridge/internal/model"
)

const (
	detailDescriptionLimit = 160
	detailImageLimit       = 3
	notSpecified           = "Belirtilmedi"
)

func detailReply(cache []model.Listing, index int) string {
	if index < 0 || index >= len(cache) {
		return fmt.Sprintf(conversation.MsgDetailOutOfRange, len(cache), len(cache))
	}
	return formatListingDetail(cache[index])
}

// formatListingDetail renders a compact WhatsApp view of one cached listing.
func formatListingDetail(l model.Listing) string {
	lines := []string{orDefault(l.Title, "İlan")}
	if l.Price != "" {
		lines = append(lines, fmt.Sprintf("Fiyat: %s TL", l.Price))
	}
	lines = append(lines,
		"Konum: "+orDefault(l.Location, notSpecified),
		"Durum: "+orDefault(l.Condition, notSpecified),
		"Kategori: "+orDefault(l.Category, notSpecified),
	)
	if l.ID != "" {
		lines = append(lines, fmt.Sprintf("İlan ID: %s", l.ID))
	}

	var owner []string
	if name := orDefault(l.UserName, l.OwnerName); name != "" {
		owner = append(owner, name)
	}
	if phone := orDefault(l.UserPhone, l.OwnerPhone); phone != "" {
		owner = append(owner, phone)
	}
	if len(owner) > 0 {
		lines = append(lines, "İlan sahibi: "+strings.Join(owner, " | "))
	}

	if desc := truncateRunes(l.Description, detailDescriptionLimit); desc != "" {
		lines = append(lines, "Açıklama: "+desc)
	}

	if imgs := l.SignedImages[:min(len(l.SignedImages), detailImageLimit)]; len(imgs) > 0 {
		lines = append(lines, "Fotoğraflar:")
		lines = append(lines, imgs...)
	} else {
		lines = append(lines, "Fotoğraf yok")
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
