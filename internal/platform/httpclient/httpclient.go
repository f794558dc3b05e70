// Package httpclient es el adaptador de transporte contra la API de lobos/manadas:
// un solo intento por llamada, bearer token en cada request y errores uniformes.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wolfpack/internal/platform/logger"
	"wolfpack/internal/platform/metrics"
	"wolfpack/internal/ports/auth"

	"github.com/google/uuid"
)

const (
	DefaultTimeout = 10 * time.Second

	HeaderRequestID = "X-Request-ID"
)

// Config del adaptador. Credentials puede ser nil (servidor abierto en modo dev).
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	Credentials auth.CredentialProvider

	// Opcionales.
	Transport http.RoundTripper
	Log       logger.Logger
	Metrics   *metrics.Transport
}

// Client envuelve *http.Client con los helpers JSON que usan los repositorios.
type Client struct {
	HTTP    *http.Client
	BaseURL string

	creds     auth.CredentialProvider
	log       logger.Logger
	metrics   *metrics.Transport
	requestID func() string
}

func New(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("httpclient: base url required")
	}
	u, err := url.ParseRequestURI(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("httpclient: invalid base url %q", base)
	}

	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	hc := &http.Client{Timeout: timeout}
	if cfg.Transport != nil {
		hc.Transport = cfg.Transport
	}

	return &Client{
		HTTP:      hc,
		BaseURL:   strings.TrimRight(base, "/"),
		creds:     cfg.Credentials,
		log:       log.With(map[string]any{"component": "httpclient"}),
		metrics:   cfg.Metrics,
		requestID: uuid.NewString,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.DoJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in any) error {
	return c.DoJSON(ctx, http.MethodPut, path, in, nil)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}

// DoJSON hace un request JSON.
// - path: relativo a BaseURL
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
// Cualquier fallo (red, credencial, status no-2xx) vuelve como *TransportError.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fail := func(status int, body string, err error) *TransportError {
		return &TransportError{Method: method, Path: path, StatusCode: status, Body: body, Err: err}
	}

	fullURL, err := c.resolveURL(path)
	if err != nil {
		return fail(0, "", err)
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fail(0, "", fmt.Errorf("new request: %w", err))
	}

	reqID := c.requestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return fail(0, "", fmt.Errorf("credentials: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.metrics.Observe(method, path, 0, time.Since(start))
		c.log.Warn("request failed", map[string]any{
			"method":     method,
			"path":       path,
			"request_id": reqID,
			"error":      err.Error(),
		})
		return fail(0, "", err)
	}
	defer resp.Body.Close()

	// Leer body (limitado) para errores / decode
	raw, readErr := readAtMost(resp.Body, 1<<20) // 1MB max
	elapsed := time.Since(start)
	c.metrics.Observe(method, path, resp.StatusCode, elapsed)

	fields := map[string]any{
		"method":      method,
		"path":        path,
		"status":      resp.StatusCode,
		"duration_ms": elapsed.Milliseconds(),
		"request_id":  reqID,
	}
	if readErr != nil {
		fields["error"] = readErr.Error()
		c.log.Warn("response body read failed", fields)
		return fail(resp.StatusCode, strings.TrimSpace(string(raw)), fmt.Errorf("read body: %w", readErr))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("request rejected", fields)
		return fail(resp.StatusCode, strings.TrimSpace(string(raw)), nil)
	}
	c.log.Debug("request done", fields)

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty path")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return "", errors.New("absolute urls are not allowed; use a path relative to the base url")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path, nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
