// Package config provides configuration management for zenspace.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xvierd/zenspace/internal/domain"
)

// Config holds all configuration for zenspace.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Breathing     BreathingConfig    `mapstructure:"breathing"`
	Mixer         map[string]float64 `mapstructure:"mixer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds countdown settings.
type TimerConfig struct {
	FocusDuration Duration `mapstructure:"focus_duration"`
}

// BreathingConfig holds breathing animation settings.
type BreathingConfig struct {
	Interval Duration `mapstructure:"interval"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LogConfig holds debug log settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorTitle          string `mapstructure:"color_title"`
	ColorClock          string `mapstructure:"color_clock"`
	ColorPaused         string `mapstructure:"color_paused"`
	ColorHelp           string `mapstructure:"color_help"`
	ColorFocus          string `mapstructure:"color_focus"`
	ColorHalo           string `mapstructure:"color_halo"`
	VolumeGradientStart string `mapstructure:"volume_gradient_start"`
	VolumeGradientEnd   string `mapstructure:"volume_gradient_end"`
	IconApp             string `mapstructure:"icon_app"`
	IconRain            string `mapstructure:"icon_rain"`
	IconForest          string `mapstructure:"icon_forest"`
	IconCafe            string `mapstructure:"icon_cafe"`
	IconWaves           string `mapstructure:"icon_waves"`
	IconWhite           string `mapstructure:"icon_white"`
	IconTask            string `mapstructure:"icon_task"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:          "#6B7280",
		ColorClock:          "#374151",
		ColorPaused:         "#9CA3AF",
		ColorHelp:           "#95A5A6",
		ColorFocus:          "#3B82F6",
		ColorHalo:           "#C4B5FD",
		VolumeGradientStart: "#60A5FA",
		VolumeGradientEnd:   "#2563EB",
		IconApp:             "🌿",
		IconRain:            "☁",
		IconForest:          "🍃",
		IconCafe:            "☕",
		IconWaves:           "🌊",
		IconWhite:           "♪",
		IconTask:            "•",
	}
}

// TrackIcon returns the glyph for a track id.
func (t ThemeConfig) TrackIcon(id string) string {
	switch id {
	case "rain":
		return t.IconRain
	case "forest":
		return t.IconForest
	case "cafe":
		return t.IconCafe
	case "waves":
		return t.IconWaves
	case "white":
		return t.IconWhite
	default:
		return "?"
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Duration returns d as a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultBreathingInterval is the breathing tick period.
const DefaultBreathingInterval = 50 * time.Millisecond

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	mixer := make(map[string]float64, domain.TrackCount)
	for _, t := range domain.DefaultTracks() {
		mixer[t.ID] = t.Volume
	}
	return &Config{
		Timer: TimerConfig{
			FocusDuration: Duration(domain.DefaultFocusSeconds * time.Second),
		},
		Breathing: BreathingConfig{
			Interval: Duration(DefaultBreathingInterval),
		},
		Mixer: mixer,
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the default path, creating it with
// defaults when missing.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from path, creating it with defaults
// when missing.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &cfg, nil
}

// Save saves the configuration to the default path.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes the configuration to path.
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)
	v.Set("timer.focus_duration", cfg.Timer.FocusDuration.String())
	v.Set("breathing.interval", cfg.Breathing.Interval.String())
	for id, vol := range cfg.Mixer {
		v.Set("mixer."+id, vol)
	}
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)
	v.Set("theme", themeMap(cfg.Theme))

	return v.WriteConfigAs(configPath)
}

// Validate checks the values the session depends on.
func (c *Config) Validate() error {
	if time.Duration(c.Timer.FocusDuration) < time.Second {
		return fmt.Errorf("timer.focus_duration %s: %w", c.Timer.FocusDuration, domain.ErrInvalidDuration)
	}
	if time.Duration(c.Breathing.Interval) <= 0 {
		return fmt.Errorf("breathing.interval %s: %w", c.Breathing.Interval, domain.ErrInvalidDuration)
	}
	for _, id := range c.TrackIDs() {
		if !domain.IsTrackID(id) {
			return fmt.Errorf("mixer.%s: %w", id, domain.ErrUnknownTrack)
		}
		if v := c.Mixer[id]; v < 0 || v > 1 {
			return fmt.Errorf("mixer.%s = %v: %w", id, v, domain.ErrInvalidVolume)
		}
	}
	return nil
}

// TrackIDs returns the configured mixer ids in sorted order.
func (c *Config) TrackIDs() []string {
	ids := make([]string, 0, len(c.Mixer))
	for id := range c.Mixer {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SessionConfig converts the config to the values a session starts from.
func (c *Config) SessionConfig() domain.SessionConfig {
	volumes := make(map[string]float64, len(c.Mixer))
	for id, v := range c.Mixer {
		volumes[id] = v
	}
	return domain.SessionConfig{
		FocusDuration: time.Duration(c.Timer.FocusDuration),
		Volumes:       volumes,
	}
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".zenspace", "config.toml"), nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("timer.focus_duration", defaults.Timer.FocusDuration.String())
	v.SetDefault("breathing.interval", defaults.Breathing.Interval.String())
	for id, vol := range defaults.Mixer {
		v.SetDefault("mixer."+id, vol)
	}
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("notifications.sound", defaults.Notifications.Sound)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	for k, val := range themeMap(defaults.Theme) {
		v.SetDefault("theme."+k, val)
	}
}

func themeMap(t ThemeConfig) map[string]any {
	return map[string]any{
		"color_title":           t.ColorTitle,
		"color_clock":           t.ColorClock,
		"color_paused":          t.ColorPaused,
		"color_help":            t.ColorHelp,
		"color_focus":           t.ColorFocus,
		"color_halo":            t.ColorHalo,
		"volume_gradient_start": t.VolumeGradientStart,
		"volume_gradient_end":   t.VolumeGradientEnd,
		"icon_app":              t.IconApp,
		"icon_rain":             t.IconRain,
		"icon_forest":           t.IconForest,
		"icon_cafe":             t.IconCafe,
		"icon_waves":            t.IconWaves,
		"icon_white":            t.IconWhite,
		"icon_task":             t.IconTask,
	}
}
