package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/letterbox/tui-go/internal/model"
)

// LoadDotEnv loads .env from the working directory if there is one
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides config values from LETTERBOX_* variables (and LOG_LEVEL)
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("LETTERBOX_DURATION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LETTERBOX_DURATION: %w", err)
		}
		c.Duration = n
	}
	if v, ok := get("LETTERBOX_TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LETTERBOX_TICK_INTERVAL: %w", err)
		}
		c.TickInterval = d
	}
	if v, ok := get("LETTERBOX_GRID_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LETTERBOX_GRID_SIZE: %w", err)
		}
		c.GridSize = n
	}
	if v, ok := get("LETTERBOX_ALPHABET"); ok {
		c.Alphabet = v
	}
	if v, ok := get("LETTERBOX_POLICY"); ok {
		c.Policy = model.TerminalPolicy(v)
	}
	if v, ok := get("LETTERBOX_STOP_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LETTERBOX_STOP_ENABLED: %w", err)
		}
		c.StopEnabled = b
	}
	if v, ok := get("LETTERBOX_LOW_TIME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LETTERBOX_LOW_TIME: %w", err)
		}
		c.LowTime.Threshold = n
	}
	if v, ok := get("LETTERBOX_SOUND"); ok {
		c.LowTime.Sound = v
	}
	if v, ok := get("LETTERBOX_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LETTERBOX_SEED: %w", err)
		}
		c.Seed = n
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LETTERBOX_LOG_FILE"); ok {
		c.Log.File = v
	}
	return nil
}
