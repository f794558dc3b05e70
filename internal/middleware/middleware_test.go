package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"

	"wolfpack/internal/platform/logger"
	"wolfpack/internal/ports/auth"
)

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"Bearer abc":       "abc",
		"bearer  abc ":     "abc",
		"Basic dXNlcjpwdw": "",
		"Bearer":           "",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestRequireBearer(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// sin verifier no se exige nada
	rr := httptest.NewRecorder()
	RequireBearer(nil)(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/wolves", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 in dev mode, got %d", rr.Code)
	}

	h := RequireBearer(auth.NewStaticVerifier("s3cret"))(ok)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/wolves", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if rr.Header().Get("WWW-Authenticate") == "" {
		t.Fatalf("expected WWW-Authenticate header")
	}

	req := httptest.NewRequest(http.MethodGet, "/wolves", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with token, got %d", rr.Code)
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewStd(logger.Options{Level: logger.Info, Out: &buf})

	h := chimw.RequestID(AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/packs/1", nil))

	line := buf.String()
	for _, want := range []string{"level=error", "method=DELETE", "path=/packs/1", "status=500", "request_id="} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %q", want, line)
		}
	}
}
