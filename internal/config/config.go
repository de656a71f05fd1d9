package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/letterbox/tui-go/internal/audio"
	"github.com/letterbox/tui-go/internal/board"
	"github.com/letterbox/tui-go/internal/model"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

const (
	dirName  = ".letterbox"
	fileName = "config.yaml"
)

// Config represents the game configuration
type Config struct {
	Duration     int                  `yaml:"duration"`      // Round length in seconds
	TickInterval time.Duration        `yaml:"tick_interval"` // e.g. "1s"
	GridSize     int                  `yaml:"grid_size"`
	Alphabet     string               `yaml:"alphabet"`
	Policy       model.TerminalPolicy `yaml:"terminal_policy"`
	StopEnabled  bool                 `yaml:"stop_enabled"`
	LowTime      LowTimeConfig        `yaml:"low_time"`
	Log          LogConfig            `yaml:"log"`
	Seed         uint64               `yaml:"seed,omitempty"` // 0 deals from a random seed
}

// LowTimeConfig controls the low-time warning
type LowTimeConfig struct {
	Threshold int    `yaml:"threshold"` // Seconds left at which the cue starts
	Sound     string `yaml:"sound"`     // off, bell or tone
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"` // Empty disables logging
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Duration:     180,
		TickInterval: time.Second,
		GridSize:     4,
		Alphabet:     board.AlphabetLatin,
		Policy:       model.PolicyDual,
		StopEnabled:  true,
		LowTime: LowTimeConfig{
			Threshold: 5,
			Sound:     audio.ModeBell,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the global config directory path (~/.letterbox)
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

// globalConfigPath returns the global config file path (~/.letterbox/config.yaml)
func globalConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// projectConfigPath returns the project-level config path (.letterbox/config.yaml in cwd)
func projectConfigPath() string {
	return filepath.Join(dirName, fileName)
}

// Load reads the config from disk. An explicit path must exist; otherwise the
// project config is tried first, then the global one, then the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	if _, err := os.Stat(projectConfigPath()); err == nil {
		return loadFile(projectConfigPath())
	}

	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := loadFile(globalPath)
	if errors.Is(err, os.ErrNotExist) {
		// No config exists, return default (don't auto-create)
		return DefaultConfig(), nil
	}
	return cfg, err
}

// loadFile decodes a yaml file over the defaults, so omitted keys keep their default values
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the game cannot run with
func (c *Config) Validate() error {
	if c.Duration < 1 {
		return fmt.Errorf("%w: duration must be at least 1 second, got %d", ErrInvalid, c.Duration)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalid, c.TickInterval)
	}
	if c.GridSize < 1 || c.GridSize > 10 {
		return fmt.Errorf("%w: grid_size must be between 1 and 10, got %d", ErrInvalid, c.GridSize)
	}
	if !alphabetKnown(c.Alphabet) {
		return fmt.Errorf("%w: unknown alphabet %q", ErrInvalid, c.Alphabet)
	}
	if _, err := model.ParsePolicy(string(c.Policy)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.LowTime.Threshold < 0 {
		return fmt.Errorf("%w: low_time.threshold must not be negative, got %d", ErrInvalid, c.LowTime.Threshold)
	}
	switch c.LowTime.Sound {
	case audio.ModeOff, audio.ModeBell, audio.ModeTone:
	default:
		return fmt.Errorf("%w: low_time.sound must be off, bell or tone, got %q", ErrInvalid, c.LowTime.Sound)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// Save writes the config to both project and global locations
func Save(cfg *Config) error {
	// Save to project config (.letterbox/config.yaml)
	if err := SaveToProject(cfg); err != nil {
		// If project save fails (e.g., no write permission), continue to global
		_ = err
	}

	return SaveToGlobal(cfg)
}

// SaveToProject writes the config to the project-level location
func SaveToProject(cfg *Config) error {
	return writeFile(projectConfigPath(), cfg)
}

// SaveToGlobal writes the config to the global location
func SaveToGlobal(cfg *Config) error {
	path, err := globalConfigPath()
	if err != nil {
		return err
	}
	return writeFile(path, cfg)
}

func writeFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
