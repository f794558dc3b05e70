package logger

import (
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapta *zap.Logger a la interfaz Logger.
type ZapLogger struct {
	z *zap.Logger
}

// NewZap construye un zap.Logger: production config para json, development para text.
func NewZap(opts Options) (*ZapLogger, error) {
	var cfg zap.Config
	if opts.Format == FormatJSON {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(opts.Level))
	if opts.Out != nil {
		// zap escribe a paths; para un writer arbitrario armamos el core a mano.
		enc := zapcore.NewConsoleEncoder(cfg.EncoderConfig)
		if opts.Format == FormatJSON {
			enc = zapcore.NewJSONEncoder(cfg.EncoderConfig)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(opts.Out), cfg.Level)
		return wrapZap(zap.New(core), opts.App), nil
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return wrapZap(z, opts.App), nil
}

func wrapZap(z *zap.Logger, app string) *ZapLogger {
	if app = strings.TrimSpace(app); app != "" {
		z = z.With(zap.String("app", app))
	}
	return &ZapLogger{z: z}
}

func (l *ZapLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZapLogger{z: l.z.With(zapFields(fields)...)}
}

func (l *ZapLogger) Debug(msg string, fields map[string]any) { l.z.Debug(msg, zapFields(fields)...) }
func (l *ZapLogger) Info(msg string, fields map[string]any)  { l.z.Info(msg, zapFields(fields)...) }
func (l *ZapLogger) Warn(msg string, fields map[string]any)  { l.z.Warn(msg, zapFields(fields)...) }
func (l *ZapLogger) Error(msg string, fields map[string]any) { l.z.Error(msg, zapFields(fields)...) }

// Sync vacía buffers; la CLI lo llama al terminar.
func (l *ZapLogger) Sync() error {
	return l.z.Sync()
}

func zapFields(raw map[string]any) []zap.Field {
	fields := clean(raw)
	keys := slices.Sorted(maps.Keys(fields))

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := fields[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

func zapLevel(l Level) zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
