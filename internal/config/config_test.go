package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xvierd/zenspace/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if time.Duration(cfg.Timer.FocusDuration) != 25*time.Minute {
		t.Errorf("expected focus duration 25m, got %v", cfg.Timer.FocusDuration)
	}
	if time.Duration(cfg.Breathing.Interval) != 50*time.Millisecond {
		t.Errorf("expected breathing interval 50ms, got %v", cfg.Breathing.Interval)
	}
	if len(cfg.Mixer) != domain.TrackCount {
		t.Fatalf("expected %d mixer entries, got %d", domain.TrackCount, len(cfg.Mixer))
	}
	if cfg.Mixer["rain"] != 0.3 {
		t.Errorf("expected rain 0.3, got %v", cfg.Mixer["rain"])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
	if time.Duration(cfg.Timer.FocusDuration) != 25*time.Minute {
		t.Errorf("expected focus duration 25m, got %v", cfg.Timer.FocusDuration)
	}
	if cfg.Theme.IconApp != DefaultThemeConfig().IconApp {
		t.Errorf("expected default icon, got %q", cfg.Theme.IconApp)
	}
	if !cfg.Notifications.Enabled {
		t.Error("expected notifications enabled by default")
	}
}

func TestLoadFrom_ReadsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[timer]
focus_duration = "50m"

[breathing]
interval = "100ms"

[mixer]
cafe = 0.6

[notifications]
enabled = false

[theme]
icon_app = "*"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if time.Duration(cfg.Timer.FocusDuration) != 50*time.Minute {
		t.Errorf("expected focus duration 50m, got %v", cfg.Timer.FocusDuration)
	}
	if time.Duration(cfg.Breathing.Interval) != 100*time.Millisecond {
		t.Errorf("expected interval 100ms, got %v", cfg.Breathing.Interval)
	}
	if cfg.Mixer["cafe"] != 0.6 {
		t.Errorf("expected cafe 0.6, got %v", cfg.Mixer["cafe"])
	}
	if cfg.Mixer["rain"] != 0.3 {
		t.Errorf("expected rain default 0.3, got %v", cfg.Mixer["rain"])
	}
	if cfg.Notifications.Enabled {
		t.Error("expected notifications disabled")
	}
	if cfg.Theme.IconApp != "*" {
		t.Errorf("expected icon override, got %q", cfg.Theme.IconApp)
	}
	if cfg.Theme.ColorHelp != DefaultThemeConfig().ColorHelp {
		t.Errorf("expected default help color, got %q", cfg.Theme.ColorHelp)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown track", "[mixer]\nthunder = 0.5\n", domain.ErrUnknownTrack},
		{"volume out of range", "[mixer]\nrain = 1.5\n", domain.ErrInvalidVolume},
		{"zero focus", "[timer]\nfocus_duration = \"0s\"\n", domain.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFrom(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadFrom() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo_RoundTripsFocus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Timer.FocusDuration = Duration(40 * time.Minute)
	cfg.Mixer["waves"] = 0.9

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if time.Duration(loaded.Timer.FocusDuration) != 40*time.Minute {
		t.Errorf("expected 40m, got %v", loaded.Timer.FocusDuration)
	}
	if loaded.Mixer["waves"] != 0.9 {
		t.Errorf("expected waves 0.9, got %v", loaded.Mixer["waves"])
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mixer["forest"] = 0.4
	sc := cfg.SessionConfig()
	if sc.FocusDuration != 25*time.Minute {
		t.Errorf("expected 25m, got %v", sc.FocusDuration)
	}
	if sc.Volumes["forest"] != 0.4 {
		t.Errorf("expected forest 0.4, got %v", sc.Volumes["forest"])
	}
	sc.Volumes["forest"] = 1
	if cfg.Mixer["forest"] != 0.4 {
		t.Error("SessionConfig should copy the mixer map")
	}
}

func TestThemeConfig_TrackIcon(t *testing.T) {
	theme := DefaultThemeConfig()
	for _, tr := range domain.DefaultTracks() {
		if theme.TrackIcon(tr.ID) == "?" {
			t.Errorf("missing icon for track %q", tr.ID)
		}
	}
	if theme.TrackIcon("thunder") != "?" {
		t.Error("unknown track should get the placeholder icon")
	}
}
