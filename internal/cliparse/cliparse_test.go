package cliparse

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/letterbox/tui-go/internal/config"
	"github.com/letterbox/tui-go/internal/model"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, o Options, c *config.Config)
		wantErr bool
	}{
		{
			name: "no flags keeps config",
			args: nil,
			check: func(t *testing.T, o Options, c *config.Config) {
				if *c != *config.DefaultConfig() {
					t.Errorf("config changed without flags: %+v", c)
				}
				if o.Init || o.Debug || o.ConfigPath != "" {
					t.Errorf("unexpected options %+v", o)
				}
			},
		},
		{
			name: "rules",
			args: []string{"-duration", "30", "-interval", "500ms", "-grid", "5", "-alphabet", "qu", "-policy", "single"},
			check: func(t *testing.T, _ Options, c *config.Config) {
				if c.Duration != 30 || c.TickInterval != 500*time.Millisecond || c.GridSize != 5 {
					t.Errorf("numeric flags not applied: %+v", c)
				}
				if c.Alphabet != "qu" || c.Policy != model.PolicySingle {
					t.Errorf("alphabet/policy not applied: %+v", c)
				}
			},
		},
		{
			name: "no-stop and cue",
			args: []string{"-no-stop", "-sound", "off", "-low-time", "10", "-seed", "4"},
			check: func(t *testing.T, _ Options, c *config.Config) {
				if c.StopEnabled {
					t.Error("-no-stop should disable stop")
				}
				if c.LowTime.Sound != "off" || c.LowTime.Threshold != 10 || c.Seed != 4 {
					t.Errorf("cue/seed flags not applied: %+v", c)
				}
			},
		},
		{
			name: "zero values still override when given",
			args: []string{"-low-time", "0", "-seed", "0"},
			check: func(t *testing.T, _ Options, c *config.Config) {
				if c.LowTime.Threshold != 0 {
					t.Errorf("threshold = %d, want 0", c.LowTime.Threshold)
				}
			},
		},
		{
			name: "meta flags",
			args: []string{"-config", "x.yaml", "-init", "-debug", "-log-file", "a.log", "-log-level", "debug"},
			check: func(t *testing.T, o Options, c *config.Config) {
				if o.ConfigPath != "x.yaml" || !o.Init || !o.Debug {
					t.Errorf("meta flags not parsed: %+v", o)
				}
				if c.Log.File != "a.log" || c.Log.Level != "debug" {
					t.Errorf("log flags not applied: %+v", c.Log)
				}
			},
		},
		{name: "unknown flag", args: []string{"-volume", "11"}, wantErr: true},
		{name: "bad duration", args: []string{"-duration", "soon"}, wantErr: true},
		{name: "stray argument", args: []string{"play"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseFlags(tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			cfg := config.DefaultConfig()
			opts.Apply(cfg)
			tt.check(t, opts, cfg)
		})
	}
}

func TestAlphabetUsageListsVariants(t *testing.T) {
	usage := alphabetUsage()
	for _, a := range config.AvailableAlphabets() {
		if !strings.Contains(usage, a.ID) {
			t.Errorf("usage %q missing %s", usage, a.ID)
		}
	}
}
