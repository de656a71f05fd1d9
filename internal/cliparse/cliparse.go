package cliparse

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/letterbox/tui-go/internal/config"
	"github.com/letterbox/tui-go/internal/model"
)

// Options holds the parsed command line
type Options struct {
	ConfigPath string
	Init       bool // Write the effective config to .letterbox/config.yaml and exit
	Debug      bool // Enable the debug panel and file logging

	overrides []func(*config.Config)
}

// ParseFlags parses args (without the program name). Only flags that were
// given override the loaded config.
func ParseFlags(args []string, output io.Writer) (Options, error) {
	var (
		opts     Options
		duration int
		interval time.Duration
		grid     int
		alphabet string
		policy   string
		noStop   bool
		sound    string
		lowTime  int
		seed     uint64
		logFile  string
		logLevel string
	)

	fs := flag.NewFlagSet("letterbox", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.StringVar(&opts.ConfigPath, "config", "", "Config file (default .letterbox/config.yaml, then ~/.letterbox/config.yaml)")
	fs.BoolVar(&opts.Init, "init", false, "Write the effective config to .letterbox/config.yaml and exit")
	fs.BoolVar(&opts.Debug, "debug", false, "Show the debug panel and log to ~/.letterbox/letterbox.log")

	// Game rules
	fs.IntVar(&duration, "duration", 0, "Round length in seconds")
	fs.DurationVar(&interval, "interval", 0, "Time between ticks")
	fs.IntVar(&grid, "grid", 0, "Tiles per side")
	fs.StringVar(&alphabet, "alphabet", "", alphabetUsage())
	fs.StringVar(&policy, "policy", "", "Terminal policy: dual (stop and game over differ) or single")
	fs.BoolVar(&noStop, "no-stop", false, "Remove the stop command; rounds end only when time runs out")
	fs.StringVar(&sound, "sound", "", "Low-time cue: off, bell or tone")
	fs.IntVar(&lowTime, "low-time", 0, "Seconds left at which the cue starts")
	fs.Uint64Var(&seed, "seed", 0, "Seed for dealing tiles")

	// Logging
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		var fn func(*config.Config)
		switch f.Name {
		case "duration":
			fn = func(c *config.Config) { c.Duration = duration }
		case "interval":
			fn = func(c *config.Config) { c.TickInterval = interval }
		case "grid":
			fn = func(c *config.Config) { c.GridSize = grid }
		case "alphabet":
			fn = func(c *config.Config) { c.Alphabet = alphabet }
		case "policy":
			fn = func(c *config.Config) { c.Policy = model.TerminalPolicy(policy) }
		case "no-stop":
			fn = func(c *config.Config) { c.StopEnabled = !noStop }
		case "sound":
			fn = func(c *config.Config) { c.LowTime.Sound = sound }
		case "low-time":
			fn = func(c *config.Config) { c.LowTime.Threshold = lowTime }
		case "seed":
			fn = func(c *config.Config) { c.Seed = seed }
		case "log-file":
			fn = func(c *config.Config) { c.Log.File = logFile }
		case "log-level":
			fn = func(c *config.Config) { c.Log.Level = logLevel }
		}
		if fn != nil {
			opts.overrides = append(opts.overrides, fn)
		}
	})

	return opts, nil
}

// Apply writes the given flags over cfg
func (o Options) Apply(cfg *config.Config) {
	for _, fn := range o.overrides {
		fn(cfg)
	}
}

func alphabetUsage() string {
	usage := "Alphabet:"
	for i, a := range config.AvailableAlphabets() {
		if i > 0 {
			usage += ","
		}
		usage += fmt.Sprintf(" %s (%s)", a.ID, a.Description)
	}
	return usage
}
