package agentbackend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"whatsapp-bridge/pkg/agentbackend"
)

func TestRun(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent/run" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		got = nil
		json.NewDecoder(r.Body).Decode(&got)
		switch got["message"] {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"boom"}`))
		case "cause_fail":
			w.Write([]byte(`{"response":"x","intent":"create","success":false}`))
		case "cause_empty":
			w.Write([]byte(`{"response":"  ","success":true}`))
		case "cause_slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"response":"late","success":true}`))
		default:
			w.Write([]byte(`{"response":"Merhaba!","intent":"small_talk","success":true,"draft_listing_id":"d2"}`))
		}
	}))
	defer ts.Close()

	client := agentbackend.NewClient(ts.URL+"/", time.Second)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		out, err := client.Run(ctx, agentbackend.RunRequest{
			UserID:         "+905551112233",
			Message:        "selam",
			MediaPaths:     []string{"905/d1/a.jpg"},
			MediaType:      agentbackend.StringPtr("image/jpeg"),
			DraftListingID: agentbackend.StringPtr("d1"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Merhaba!" || out.Intent != "small_talk" || out.DraftListingID != "d2" {
			t.Errorf("unexpected response %+v", out)
		}
		if got["user_id"] != "+905551112233" || got["draft_listing_id"] != "d1" || got["media_type"] != "image/jpeg" {
			t.Errorf("unexpected payload %v", got)
		}
		if hist, ok := got["conversation_history"].([]any); !ok || len(hist) != 0 {
			t.Errorf("history must be an empty array, got %v", got["conversation_history"])
		}
	})

	t.Run("Null optionals", func(t *testing.T) {
		if _, err := client.Run(ctx, agentbackend.RunRequest{UserID: "u", Message: "selam"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, k := range []string{"media_paths", "media_type", "draft_listing_id"} {
			if v, ok := got[k]; !ok || v != nil {
				t.Errorf("expected %s to be null, got %v", k, v)
			}
		}
	})

	tests := map[string]error{
		"cause_500":   agentbackend.ErrStatus,
		"cause_fail":  agentbackend.ErrUnsuccessful,
		"cause_empty": agentbackend.ErrEmptyResponse,
	}
	for msg, want := range tests {
		t.Run(msg, func(t *testing.T) {
			_, err := client.Run(ctx, agentbackend.RunRequest{UserID: "u", Message: msg})
			if !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
		})
	}

	t.Run("Timeout", func(t *testing.T) {
		slow := agentbackend.NewClient(ts.URL, 50*time.Millisecond)
		_, err := slow.Run(ctx, agentbackend.RunRequest{UserID: "u", Message: "cause_slow"})
		if !errors.Is(err, agentbackend.ErrTimeout) {
			t.Fatalf("expected ErrTimeout, got %v", err)
		}
	})

	t.Run("Not configured", func(t *testing.T) {
		_, err := agentbackend.NewClient("", 0).Run(ctx, agentbackend.RunRequest{})
		if !errors.Is(err, agentbackend.ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})
}
