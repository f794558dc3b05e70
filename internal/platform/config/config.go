// Package config carga la configuración del cliente (wolfpack) y del servidor de desarrollo (wolfapi).
//
// Orden del cliente: defaults -> archivo YAML opcional -> .env (best-effort) -> variables de entorno.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"wolfpack/internal/platform/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultTimeout        = 10 * time.Second
	DefaultRecentCount    = 5
	DefaultNotifyDuration = 1500 * time.Millisecond
)

type Location struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type Log struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Backend string `yaml:"backend"`
}

// Options traduce la sección de logging a opciones del logger.
func (l Log) Options(app string) logger.Options {
	return logger.Options{
		Level:   logger.ParseLevel(l.Level),
		Format:  logger.ParseFormat(l.Format),
		Backend: logger.ParseBackend(l.Backend),
		App:     app,
	}
}

// Client es la configuración de la CLI.
type Client struct {
	BaseURL        string        `yaml:"base_url"`
	Token          string        `yaml:"token"`
	Timeout        time.Duration `yaml:"timeout"`
	RecentCount    int           `yaml:"recent_count"`
	NotifyDuration time.Duration `yaml:"notify_duration"`
	Home           Location      `yaml:"home"`
	Log            Log           `yaml:"log"`
}

func DefaultClient() Client {
	return Client{
		BaseURL:        DefaultBaseURL,
		Timeout:        DefaultTimeout,
		RecentCount:    DefaultRecentCount,
		NotifyDuration: DefaultNotifyDuration,
		Log:            Log{Level: "warn", Format: "text", Backend: "std"},
	}
}

// LoadClient aplica defaults, el YAML (path o WOLFPACK_CONFIG), .env y env vars.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	// .env nunca pisa variables ya definidas en el entorno real.
	_ = godotenv.Load(".env")

	if strings.TrimSpace(path) == "" {
		path = os.Getenv("WOLFPACK_CONFIG")
	}
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Client{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Client{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyClientEnv(&cfg); err != nil {
		return Client{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

func applyClientEnv(cfg *Client) error {
	if v := strings.TrimSpace(os.Getenv("WOLFPACK_API_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("WOLFPACK_TOKEN")); v != "" {
		cfg.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("WOLFPACK_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: WOLFPACK_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv("WOLFPACK_RECENT_COUNT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: WOLFPACK_RECENT_COUNT: %w", err)
		}
		cfg.RecentCount = n
	}
	if v := strings.TrimSpace(os.Getenv("WOLFPACK_HOME_LAT")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: WOLFPACK_HOME_LAT: %w", err)
		}
		cfg.Home.Latitude = f
	}
	if v := strings.TrimSpace(os.Getenv("WOLFPACK_HOME_LNG")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: WOLFPACK_HOME_LNG: %w", err)
		}
		cfg.Home.Longitude = f
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_BACKEND")); v != "" {
		cfg.Log.Backend = v
	}
	return nil
}

func (c Client) Validate() error {
	u, err := url.ParseRequestURI(strings.TrimSpace(c.BaseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: base_url must be an absolute http(s) url, got %q", c.BaseURL)
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must not be negative")
	}
	if c.RecentCount <= 0 {
		return errors.New("config: recent_count must be positive")
	}
	if c.Home.Latitude < -90 || c.Home.Latitude > 90 || c.Home.Longitude < -180 || c.Home.Longitude > 180 {
		return errors.New("config: home coordinates out of range")
	}
	return nil
}

// Server es la configuración del servidor de desarrollo (solo env, como el resto de servicios).
type Server struct {
	Addr       string
	DSN        string // postgres
	SQLitePath string
	APIToken   string // vacío = modo dev sin auth
	Log        logger.Options

	// Introspección remota; si URL está definida tiene prioridad sobre APIToken.
	IntrospectURL   string
	IntrospectKey   string
	IntrospectScope string
}

func LoadServer() Server {
	_ = godotenv.Load(".env")

	addr := ":8080"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		addr = ":" + v
	}
	app := os.Getenv("APP_NAME")
	if strings.TrimSpace(app) == "" {
		app = "wolfapi"
	}
	return Server{
		Addr:       addr,
		DSN:        strings.TrimSpace(os.Getenv("DB_DSN")),
		SQLitePath: strings.TrimSpace(os.Getenv("SQLITE_PATH")),
		APIToken:   strings.TrimSpace(os.Getenv("API_TOKEN")),
		Log: logger.Options{
			Level:   logger.ParseLevel(os.Getenv("LOG_LEVEL")),
			Format:  logger.ParseFormat(os.Getenv("LOG_FORMAT")),
			Backend: logger.ParseBackend(os.Getenv("LOG_BACKEND")),
			App:     app,
		},
		IntrospectURL:   strings.TrimSpace(os.Getenv("AUTH_INTROSPECT_URL")),
		IntrospectKey:   strings.TrimSpace(os.Getenv("AUTH_INTROSPECT_KEY")),
		IntrospectScope: strings.TrimSpace(os.Getenv("AUTH_REQUIRED_SCOPE")),
	}
}
