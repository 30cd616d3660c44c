// Package config carga la configuración del servicio: YAML sobre Default() y luego variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inpatient-chart/internal/domain/pagination"
	"inpatient-chart/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Server   ServerConfig        `yaml:"server"`
	Log      LogConfig           `yaml:"log"`
	Capacity pagination.Capacity `yaml:"capacity"`
	Sessions SessionsConfig      `yaml:"sessions"`
	Capture  CaptureConfig       `yaml:"capture"`
	CORS     CORSConfig          `yaml:"cors"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"` // tiene que cubrir capture.timeout
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

// SessionsConfig: las planillas solo viven en memoria.
type SessionsConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	MaxStayDays   int           `yaml:"max_stay_days"` // 0 = sin límite
}

// CaptureConfig es el helper de impresión con navegador headless (POST /print-pdf).
type CaptureConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Timeout         time.Duration `yaml:"timeout"`
	BrowserBin      string        `yaml:"browser_bin"` // vacío = el que descargue/encuentre rod
	DefaultURL      string        `yaml:"default_url"`
	DefaultFormat   string        `yaml:"default_format"`
	DefaultFilename string        `yaml:"default_filename"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "inpatient-chart",
		},
		Capacity: pagination.DefaultCapacity(),
		Sessions: SessionsConfig{
			TTL:           12 * time.Hour,
			SweepInterval: 10 * time.Minute,
			MaxStayDays:   90,
		},
		Capture: CaptureConfig{
			Enabled:         false,
			Timeout:         30 * time.Second,
			DefaultURL:      "http://localhost:5173",
			DefaultFormat:   "A4",
			DefaultFilename: "chart.pdf",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load lee path sobre Default(); los campos ausentes conservan su default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault: sin path o sin archivo = defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// FromEnv resuelve el path (flag o CHART_CONFIG), carga, aplica el entorno y valida.
func FromEnv(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CHART_CONFIG")
	}
	cfg, err := LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv pisa la configuración con:
// PORT, LOG_LEVEL, LOG_FORMAT, APP_NAME, CAPTURE_ENABLED, CAPTURE_BROWSER_BIN, CAPTURE_DEFAULT_URL.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		c.Log.App = v
	}
	if v := strings.TrimSpace(getenv("CAPTURE_ENABLED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: CAPTURE_ENABLED=%q", ErrInvalid, v)
		}
		c.Capture.Enabled = b
	}
	if v := strings.TrimSpace(getenv("CAPTURE_BROWSER_BIN")); v != "" {
		c.Capture.BrowserBin = v
	}
	if v := strings.TrimSpace(getenv("CAPTURE_DEFAULT_URL")); v != "" {
		c.Capture.DefaultURL = v
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Capacity.Validate(); err != nil {
		return fmt.Errorf("%w: capacity: %w", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalid)
	}
	if c.Sessions.MaxStayDays < 0 {
		return fmt.Errorf("%w: sessions.max_stay_days must be >= 0", ErrInvalid)
	}
	if c.Sessions.TTL > 0 && c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("%w: sessions.sweep_interval is required when ttl is set", ErrInvalid)
	}
	if c.Capture.Enabled {
		if c.Capture.Timeout <= 0 {
			return fmt.Errorf("%w: capture.timeout must be > 0", ErrInvalid)
		}
		if c.Server.WriteTimeout > 0 && c.Capture.Timeout >= c.Server.WriteTimeout {
			return fmt.Errorf("%w: capture.timeout must be shorter than server.write_timeout", ErrInvalid)
		}
	}
	return nil
}

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	}
}

// Save escribe la configuración como YAML (chartctl config init).
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
