package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/letterbox/tui-go/internal/model"
)

// chdirTemp moves into a fresh directory with HOME pointing at another one
func chdirTemp(t *testing.T) (project, home string) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "letterbox-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	project = filepath.Join(tmpDir, "project")
	home = filepath.Join(tmpDir, "home")
	for _, dir := range []string{project, home} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	originalWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(originalWd) })
	if err := os.Chdir(project); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}
	t.Setenv("HOME", home)
	return project, home
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Duration != 180 || cfg.GridSize != 4 || cfg.LowTime.Threshold != 5 || !cfg.StopEnabled {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	_, home := chdirTemp(t)

	t.Run("nothing on disk returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Duration != DefaultConfig().Duration {
			t.Errorf("duration = %d, want default", cfg.Duration)
		}
	})

	writeConfig(t, filepath.Join(home, ".letterbox", "config.yaml"), "duration: 60\n")

	t.Run("global config is used", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Duration != 60 {
			t.Errorf("duration = %d, want 60", cfg.Duration)
		}
	})

	writeConfig(t, filepath.Join(".letterbox", "config.yaml"), "duration: 90\ngrid_size: 5\n")

	t.Run("project config wins", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Duration != 90 || cfg.GridSize != 5 {
			t.Errorf("got duration %d grid %d, want 90 and 5", cfg.Duration, cfg.GridSize)
		}
		// Keys the file omits keep their defaults
		if !cfg.StopEnabled || cfg.TickInterval != time.Second {
			t.Errorf("omitted keys lost defaults: %+v", cfg)
		}
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		if _, err := Load("missing.yaml"); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected ErrNotExist, got %v", err)
		}
	})
}

func TestLoadFullFile(t *testing.T) {
	chdirTemp(t)
	writeConfig(t, "custom.yaml", `
duration: 120
tick_interval: 500ms
grid_size: 5
alphabet: qu
terminal_policy: single
stop_enabled: false
low_time:
  threshold: 10
  sound: off
log:
  level: debug
  file: game.log
seed: 99
`)

	cfg, err := Load("custom.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	want := Config{
		Duration:     120,
		TickInterval: 500 * time.Millisecond,
		GridSize:     5,
		Alphabet:     "qu",
		Policy:       model.PolicySingle,
		StopEnabled:  false,
		LowTime:      LowTimeConfig{Threshold: 10, Sound: "off"},
		Log:          LogConfig{Level: "debug", File: "game.log"},
		Seed:         99,
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	chdirTemp(t)
	writeConfig(t, "bad.yaml", "duration: [1, 2\n")
	if _, err := Load("bad.yaml"); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"zero interval", func(c *Config) { c.TickInterval = 0 }},
		{"grid too small", func(c *Config) { c.GridSize = 0 }},
		{"grid too large", func(c *Config) { c.GridSize = 11 }},
		{"unknown alphabet", func(c *Config) { c.Alphabet = "runes" }},
		{"unknown policy", func(c *Config) { c.Policy = "triple" }},
		{"negative threshold", func(c *Config) { c.LowTime.Threshold = -1 }},
		{"unknown sound", func(c *Config) { c.LowTime.Sound = "gong" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LETTERBOX_DURATION":      "45",
		"LETTERBOX_TICK_INTERVAL": "250ms",
		"LETTERBOX_GRID_SIZE":     "6",
		"LETTERBOX_ALPHABET":      "no-q",
		"LETTERBOX_POLICY":        "single",
		"LETTERBOX_STOP_ENABLED":  "false",
		"LETTERBOX_LOW_TIME":      "3",
		"LETTERBOX_SOUND":         "tone",
		"LETTERBOX_SEED":          "7",
		"LOG_LEVEL":               "warn",
		"LETTERBOX_LOG_FILE":      "/tmp/lb.log",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Duration != 45 || cfg.TickInterval != 250*time.Millisecond || cfg.GridSize != 6 {
		t.Errorf("numeric overrides not applied: %+v", cfg)
	}
	if cfg.Alphabet != "no-q" || cfg.Policy != model.PolicySingle || cfg.StopEnabled {
		t.Errorf("rule overrides not applied: %+v", cfg)
	}
	if cfg.LowTime.Threshold != 3 || cfg.LowTime.Sound != "tone" || cfg.Seed != 7 {
		t.Errorf("low time/seed overrides not applied: %+v", cfg)
	}
	if cfg.Log.Level != "warn" || cfg.Log.File != "/tmp/lb.log" {
		t.Errorf("log overrides not applied: %+v", cfg.Log)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	for _, key := range []string{"LETTERBOX_DURATION", "LETTERBOX_TICK_INTERVAL", "LETTERBOX_STOP_ENABLED", "LETTERBOX_SEED"} {
		t.Run(key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == key {
					return "not-a-value", true
				}
				return "", false
			}
			if err := DefaultConfig().applyEnv(lookup); err == nil {
				t.Errorf("expected error for bad %s", key)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	chdirTemp(t)

	cfg := DefaultConfig()
	cfg.Duration = 75
	cfg.Alphabet = "qu"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(".letterbox", "config.yaml")); err != nil {
		t.Errorf("project config not written: %v", err)
	}
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() after Save = %+v, want %+v", *loaded, *cfg)
	}
}
