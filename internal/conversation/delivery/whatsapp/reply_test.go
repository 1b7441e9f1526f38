package whatsapp

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractImageURLs(t *testing.T) {
	text := "Bakabilirsin: https://x.supabase.co/storage/v1/object/sign/p/1?token=abc, " +
		"(https://cdn.example.com/a.JPG) https://example.com/page https://e.com/b.webp. " +
		"https://e.com/c.png https://e.com/d.jpeg"

	got := extractImageURLs(text)
	want := []string{
		"https://x.supabase.co/storage/v1/object/sign/p/1?token=abc",
		"https://cdn.example.com/a.JPG",
		"https://e.com/b.webp",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("\nwant %v\ngot  %v", want, got)
	}

	if got := extractImageURLs("no links here"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestOutboundMessage(t *testing.T) {
	t.Run("Short reply untouched", func(t *testing.T) {
		body, media := outboundMessage("merhaba")
		if body != "merhaba" || media != nil {
			t.Errorf("unexpected %q %v", body, media)
		}
	})

	t.Run("Long reply without media", func(t *testing.T) {
		text := strings.Repeat("ş", 2000)
		body, _ := outboundMessage(text)
		// 1600 - 100 safety, keep 60 fewer before the suffix.
		if !strings.HasSuffix(body, truncatedSuffix) {
			t.Fatal("missing truncation suffix")
		}
		if got := utf8.RuneCountInString(strings.TrimSuffix(body, truncatedSuffix)); got != 1440 {
			t.Errorf("expected 1440 kept runes, got %d", got)
		}
	})

	t.Run("Media shrinks the budget", func(t *testing.T) {
		text := "https://e.com/a.jpg https://e.com/b.jpg " + strings.Repeat("a", 1400)
		body, media := outboundMessage(text)
		if len(media) != 2 {
			t.Fatalf("expected 2 media, got %v", media)
		}
		limit := 1600 - 2*120 - 100
		if got := utf8.RuneCountInString(strings.TrimSuffix(body, truncatedSuffix)); got != limit-60 {
			t.Errorf("expected %d kept runes, got %d", limit-60, got)
		}
	})

	t.Run("Exactly at the limit", func(t *testing.T) {
		text := strings.Repeat("a", 1500)
		if body, _ := outboundMessage(text); body != text {
			t.Error("text at the limit must not be truncated")
		}
	})
}
