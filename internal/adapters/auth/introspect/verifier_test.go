package introspect

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wolfpack/internal/ports/auth"
)

func newIDP(t *testing.T, key string, tokens map[string]Result) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != key {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var body struct {
			Token string `json:"token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(tokens[body.Token])
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifier(t *testing.T) {
	idp := newIDP(t, "k1", map[string]Result{
		"good":    {Active: true, Subject: "ranger", Scope: "wolves:read wolves:write"},
		"readers": {Active: true, Subject: "guest", Scope: "wolves:read"},
	})
	v := NewVerifier(NewClient(Config{URL: idp.URL, APIKey: "k1"}), "wolves:write")
	ctx := context.Background()

	if err := v.Verify(ctx, "good"); err != nil {
		t.Fatalf("expected good token to pass, got %v", err)
	}
	if err := v.Verify(ctx, "readers"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected missing scope to fail, got %v", err)
	}
	if err := v.Verify(ctx, "unknown"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected inactive token to fail, got %v", err)
	}
	if err := v.Verify(ctx, "  "); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected empty token to fail, got %v", err)
	}
}

func TestVerifier_BadAPIKey(t *testing.T) {
	idp := newIDP(t, "k1", nil)
	v := NewVerifier(NewClient(Config{URL: idp.URL, APIKey: "other"}), "")

	if err := v.Verify(context.Background(), "good"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	v := NewVerifier(NewClient(Config{}), "")
	if err := v.Verify(context.Background(), "good"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
