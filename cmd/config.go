package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/zenspace/internal/config"
	"github.com/xvierd/zenspace/internal/domain"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration zenspace would start with, after flag overrides,
and the file it was read from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printConfig(cmd.OutOrStdout(), app.configPath, app.config)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	// Skips loading so a broken file can still be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return resolveConfigPath()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stat(app.configPath)
		switch {
		case err == nil && !forceInit:
			return fmt.Errorf("%s already exists (use --force to overwrite)", app.configPath)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("failed to stat config: %w", err)
		}

		if err := config.SaveTo(app.configPath, config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", app.configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing configuration")
	configCmd.AddCommand(configInitCmd)
}

func printConfig(w io.Writer, path string, cfg *config.Config) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Config file:     %s\n", path)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Focus block:     %s\n", formatMinutes(cfg.Timer.FocusDuration.Duration()))
	fmt.Fprintf(w, "  Breathing step:  %s\n", cfg.Breathing.Interval)

	notifStatus := "off"
	if cfg.Notifications.Enabled {
		notifStatus = "on"
		if cfg.Notifications.Sound {
			notifStatus = "on (with sound)"
		}
	}
	fmt.Fprintf(w, "  Notifications:   %s\n", notifStatus)

	logStatus := "off"
	if cfg.Log.File != "" {
		logStatus = fmt.Sprintf("%s (%s)", cfg.Log.File, cfg.Log.Level)
	}
	fmt.Fprintf(w, "  Debug log:       %s\n", logStatus)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Starting mix:")
	session := domain.NewSession(cfg.SessionConfig())
	for _, t := range session.Mixer.Tracks() {
		fmt.Fprintf(w, "    %s %-12s %3.0f%%\n", cfg.Theme.TrackIcon(t.ID), t.Name, t.Volume*100)
	}
	fmt.Fprintln(w)
}
