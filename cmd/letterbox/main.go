package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/letterbox/tui-go/internal/audio"
	"github.com/letterbox/tui-go/internal/cliparse"
	"github.com/letterbox/tui-go/internal/config"
	"github.com/letterbox/tui-go/internal/logging"
	"github.com/letterbox/tui-go/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := cliparse.ParseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	config.LoadDotEnv()
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	opts.Apply(cfg)

	if opts.Debug && cfg.Log.File == "" {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		cfg.Log.File = filepath.Join(dir, "letterbox.log")
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.Init {
		if err := config.SaveToProject(cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Println("Wrote .letterbox/config.yaml")
		return nil
	}

	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	cue, err := audio.New(cfg.LowTime.Sound, os.Stdout)
	if err != nil {
		logger.Warn().Err(err).Str("sound", cfg.LowTime.Sound).Msg("audio unavailable, using terminal bell")
	}

	m, err := tui.NewRootModel(cfg, tui.Deps{
		Logger: logger,
		Cue:    cue,
		Debug:  opts.Debug,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int("duration", cfg.Duration).
		Int("grid", cfg.GridSize).
		Str("alphabet", cfg.Alphabet).
		Str("policy", string(cfg.Policy)).
		Msg("starting letterbox")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
