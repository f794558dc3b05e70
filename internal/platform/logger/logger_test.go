package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStdLogger_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(Options{Level: Warn, Format: FormatText, App: "wolfpack", Out: &buf})

	l.Info("skipped", nil)
	l.With(map[string]any{"component": "httpclient"}).Warn("request rejected", map[string]any{"status": 409})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "skipped") {
		t.Fatalf("info must be filtered at warn level: %q", out)
	}
	for _, want := range []string{"app=wolfpack", "component=httpclient", "level=warn", "msg=request rejected", "status=409"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestStdLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(Options{Level: Debug, Format: FormatJSON, Out: &buf})
	l.Debug("request done", map[string]any{"path": "/wolves", "": "ignored"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "request done" || entry["path"] != "/wolves" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty keys must be dropped: %v", entry)
	}
}

func TestStdLogger_RedactsSecretsAndFormatsErrors(t *testing.T) {
	var buf bytes.Buffer
	l := NewStd(Options{Level: Info, Format: FormatJSON, Out: &buf}).
		With(map[string]any{"Token": "s3cret"})
	l.Warn("request failed", map[string]any{"authorization": "Bearer s3cret", "err": errors.New("dial tcp: refused")})

	out := buf.String()
	if strings.Contains(out, "s3cret") {
		t.Fatalf("secret leaked: %q", out)
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", out, err)
	}
	if entry["Token"] != redacted || entry["authorization"] != redacted {
		t.Fatalf("expected redacted credentials, got %v", entry)
	}
	if entry["err"] != "dial tcp: refused" {
		t.Fatalf("expected error text, got %v", entry["err"])
	}
}

func TestNew_ZapBackendWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, Backend: BackendZap, App: "wolfapi", Out: &buf})
	if _, ok := l.(*ZapLogger); !ok {
		t.Fatalf("expected *ZapLogger, got %T", l)
	}

	l.Info("listening", map[string]any{"addr": ":8080", "api_key": "k"})
	_ = l.(*ZapLogger).Sync()

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["app"] != "wolfapi" || entry["addr"] != ":8080" || entry["api_key"] != redacted {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestParsers(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
	if ParseBackend(" zap ") != BackendZap || ParseBackend("") != BackendStd {
		t.Fatalf("unexpected backend parsing")
	}
}
