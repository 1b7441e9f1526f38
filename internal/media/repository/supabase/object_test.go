package supabase_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"whatsapp-bridge/internal/media/repository"
	"whatsapp-bridge/internal/media/repository/supabase"
	pkgLog "whatsapp-bridge/pkg/log"
)

func TestNew(t *testing.T) {
	_, err := supabase.New(supabase.Config{URL: "http://x"}, pkgLog.NewNop())
	if !errors.Is(err, repository.ErrMissingConfig) {
		t.Fatalf("expected ErrMissingConfig, got %v", err)
	}
}

func TestPutObject(t *testing.T) {
	var (
		gotPath   string
		gotHeader http.Header
		gotBody   []byte
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeader = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)

		switch r.URL.Path {
		case "/storage/v1/object/listings/905/d1/dup.jpg":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`))
		case "/storage/v1/object/listings/905/d1/fail.jpg":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`boom`))
		default:
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"Key":"listings/905/d1/a.jpg"}`))
		}
	}))
	defer ts.Close()

	store, err := supabase.New(supabase.Config{URL: ts.URL + "/", ServiceKey: "svc", Bucket: "listings"}, pkgLog.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		if err := store.PutObject(ctx, "905/d1/a.jpg", "image/jpeg", []byte("jpeg")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/storage/v1/object/listings/905/d1/a.jpg" {
			t.Errorf("unexpected path %s", gotPath)
		}
		if gotHeader.Get("Authorization") != "Bearer svc" || gotHeader.Get("apikey") != "svc" {
			t.Errorf("missing auth headers: %v", gotHeader)
		}
		if gotHeader.Get("x-upsert") != "false" {
			t.Errorf("upsert must be disabled, got %q", gotHeader.Get("x-upsert"))
		}
		if gotHeader.Get("Content-Type") != "image/jpeg" {
			t.Errorf("unexpected content type %q", gotHeader.Get("Content-Type"))
		}
		if string(gotBody) != "jpeg" {
			t.Errorf("unexpected body %q", gotBody)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := store.PutObject(ctx, "905/d1/dup.jpg", "image/jpeg", []byte("x"))
		if !errors.Is(err, repository.ErrObjectExists) {
			t.Fatalf("expected ErrObjectExists, got %v", err)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		err := store.PutObject(ctx, "905/d1/fail.jpg", "image/jpeg", []byte("x"))
		if err == nil || errors.Is(err, repository.ErrObjectExists) {
			t.Fatalf("expected upload error, got %v", err)
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		bad, _ := supabase.New(supabase.Config{URL: "http://127.0.0.1:1", ServiceKey: "k", Bucket: "b"}, pkgLog.NewNop())
		if err := bad.PutObject(ctx, "p", "image/jpeg", nil); err == nil {
			t.Fatal("expected network failure")
		}
	})
}
