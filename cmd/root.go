// Package cmd provides the CLI commands for the zenspace application.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/xvierd/zenspace/internal/adapters/tui"
	"github.com/xvierd/zenspace/internal/domain"
	"github.com/xvierd/zenspace/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	focusFlag  string
	logPath    string
	inlineMode bool

	// isInteractive is swapped in tests.
	isInteractive = tui.IsInteractive
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zenspace",
	Short: "ZenSpace - a calm focus screen for the terminal",
	Long: `ZenSpace is a full-screen focus companion: a countdown timer, an ambient
mixer whose average volume tints the background, a breathing guide and a
scratch list of tasks for the current sitting.

Run "zenspace" with no arguments to open the screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runScreen,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.zenspace/config.toml)")
	rootCmd.PersistentFlags().StringVar(&focusFlag, "focus", "", "Focus block length, e.g. 25m or 50m")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().BoolVarP(&inlineMode, "inline", "i", false, "Render in the current screen instead of the alternate screen")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("ZenSpace\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tracksCmd)
}

// runScreen opens the focus screen for a fresh session.
func runScreen(cmd *cobra.Command, args []string) error {
	if !isInteractive() {
		return domain.ErrNotATerminal
	}

	svc := services.NewSessionService(app.config.SessionConfig(), app.notifier, app.logger)
	app.logger.Info("session started",
		"focus", app.config.Timer.FocusDuration.String(),
		"width", tui.TerminalWidth())

	model := tui.NewModel(svc, tui.Options{
		Theme:             &app.config.Theme,
		BreathingInterval: app.config.Breathing.Interval.Duration(),
	})

	var opts []tea.ProgramOption
	if !inlineMode {
		opts = append(opts, tea.WithAltScreen())
	}

	ctx := setupSignalHandler()
	if err := tui.Run(ctx, model, opts...); err != nil {
		return err
	}
	app.logger.Info("session ended")
	return nil
}
