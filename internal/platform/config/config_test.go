package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inpatient-chart/internal/domain/pagination"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
server:
  addr: ":9090"
capacity:
  days_per_page: 14
  soft_limit: false
sessions:
  ttl: 30m
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.WriteTimeout != 60*time.Second {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Capacity.DaysPerPage != 14 || cfg.Capacity.SoftLimit || cfg.Capacity.TotalRows != 11 {
		t.Fatalf("unexpected capacity %+v", cfg.Capacity)
	}
	if cfg.Sessions.TTL != 30*time.Minute || cfg.Sessions.SweepInterval != 10*time.Minute {
		t.Fatalf("unexpected sessions %+v", cfg.Sessions)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Capacity != pagination.DefaultCapacity() {
		t.Fatalf("expected default capacity, got %+v", cfg.Capacity)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(path, []byte("server: [oops"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":                "7000",
		"LOG_FORMAT":          "json",
		"CAPTURE_ENABLED":     "true",
		"CAPTURE_BROWSER_BIN": "/usr/bin/chromium",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Server.Addr != ":7000" || cfg.Log.Format != "json" || !cfg.Capture.Enabled || cfg.Capture.BrowserBin != "/usr/bin/chromium" {
		t.Fatalf("env not applied: %+v", cfg)
	}

	bad := Default()
	err := bad.ApplyEnv(func(k string) string {
		if k == "CAPTURE_ENABLED" {
			return "maybe"
		}
		return ""
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"overflow ceiling": func(c *Config) { c.Capacity.TreatmentRowsPerPage = 9 },
		"empty addr":       func(c *Config) { c.Server.Addr = "" },
		"negative stay":    func(c *Config) { c.Sessions.MaxStayDays = -1 },
		"ttl without sweep": func(c *Config) {
			c.Sessions.SweepInterval = 0
		},
		"capture slower than write timeout": func(c *Config) {
			c.Capture.Enabled = true
			c.Capture.Timeout = 2 * time.Minute
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Capacity.DaysPerPage = 14

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Capacity.DaysPerPage != 14 || loaded.Sessions.TTL != cfg.Sessions.TTL {
		t.Fatalf("unexpected round trip %+v", loaded)
	}
}
