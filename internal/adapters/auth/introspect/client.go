// Package introspect verifica bearer tokens contra un servicio de identidad externo
// (endpoint de introspección con API key). Lo usa wolfapi cuando no alcanza un token fijo.
package introspect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("introspection not configured")
	ErrUnauthorized  = errors.New("token rejected")
	ErrUpstream      = errors.New("introspection upstream error")
)

const (
	defaultKeyHeader = "X-Api-Key"
	defaultTimeout   = 5 * time.Second
)

type Config struct {
	URL    string
	APIKey string

	// KeyHeader es el header de la API key; vacío = "X-Api-Key".
	KeyHeader string
	Timeout   time.Duration

	// Transport es opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	url       string
	apiKey    string
	keyHeader string
	http      *http.Client
}

func NewClient(cfg Config) *Client {
	h := strings.TrimSpace(cfg.KeyHeader)
	if h == "" {
		h = defaultKeyHeader
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := &http.Client{Timeout: timeout}
	if cfg.Transport != nil {
		hc.Transport = cfg.Transport
	}
	return &Client{
		url:       strings.TrimSpace(cfg.URL),
		apiKey:    strings.TrimSpace(cfg.APIKey),
		keyHeader: h,
		http:      hc,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.url != "" && c.apiKey != ""
}

// Result es la respuesta de introspección (subset RFC 7662).
type Result struct {
	Active  bool   `json:"active"`
	Subject string `json:"sub"`
	Scope   string `json:"scope"`
}

// Introspect envía el token y devuelve el resultado. 401/403 del servicio equivalen a ErrUnauthorized.
func (c *Client) Introspect(ctx context.Context, token string) (Result, error) {
	if !c.Configured() {
		return Result{}, ErrNotConfigured
	}

	b, _ := json.Marshal(map[string]string{"token": token})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.keyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return Result{}, ErrUnauthorized
	default:
		return Result{}, fmt.Errorf("%w: status=%d", ErrUpstream, resp.StatusCode)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("%w: invalid json: %v", ErrUpstream, err)
	}
	return out, nil
}
