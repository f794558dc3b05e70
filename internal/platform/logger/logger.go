// Package logger define la interfaz de logging común del cliente y del servidor de desarrollo,
// con dos backends: StdLogger (text/json sin deps) y ZapLogger.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Backend string

const (
	BackendStd Backend = "std"
	BackendZap Backend = "zap"
)

func ParseBackend(s string) Backend {
	if strings.EqualFold(strings.TrimSpace(s), "zap") {
		return BackendZap
	}
	return BackendStd
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level   Level
	Format  Format
	Backend Backend
	App     string

	// Out es opcional; por defecto os.Stdout (la CLI usa os.Stderr).
	Out io.Writer
}

// New elige el backend. Si zap no se puede construir, cae al StdLogger.
func New(opts Options) Logger {
	if opts.Backend == BackendZap {
		if zl, err := NewZap(opts); err == nil {
			return zl
		}
	}
	return NewStd(opts)
}

// Campos cuyo valor nunca se escribe (credenciales del adaptador y del servidor).
var secretKeys = map[string]bool{
	"token":         true,
	"authorization": true,
	"api_key":       true,
	"password":      true,
}

const redacted = "[redacted]"

// clean descarta claves vacías y enmascara secretos. Devuelve un mapa nuevo.
func clean(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		if secretKeys[strings.ToLower(key)] {
			v = redacted
		}
		out[k] = v
	}
	return out
}

// StdLogger escribe una línea por entrada (text o json) a un io.Writer.
type StdLogger struct {
	out    *lockedWriter
	level  Level
	format Format
	base   map[string]any
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) writeLine(s string) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, _ = io.WriteString(lw.w, s+"\n")
}

func NewStd(opts Options) *StdLogger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &StdLogger{
		out:    &lockedWriter{w: out},
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

type nopLogger struct{}

// Nop descarta todo (tests).
func Nop() Logger { return nopLogger{} }

func (n nopLogger) With(map[string]any) Logger { return n }

func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}

// With comparte el writer; los campos base se copian.
func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	merged := maps.Clone(l.base)
	maps.Copy(merged, clean(fields))
	return &StdLogger{out: l.out, level: l.level, format: l.format, base: merged}
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	entry := maps.Clone(l.base)
	maps.Copy(entry, clean(fields))
	entry["ts"] = time.Now().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	if l.format == FormatJSON {
		l.out.writeLine(formatJSON(entry))
		return
	}
	l.out.writeLine(formatText(entry))
}

func formatJSON(m map[string]any) string {
	// json.Marshal de un error da "{}": se escribe su texto.
	for k, v := range m {
		if err, ok := v.(error); ok {
			m[k] = err.Error()
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf(`{"level":"error","msg":"log encode failed","err":%q}`, err.Error())
	}
	return string(b)
}

func formatText(m map[string]any) string {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	return strings.Join(parts, " ")
}
