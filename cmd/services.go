package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/zenspace/internal/adapters/notification"
	"github.com/xvierd/zenspace/internal/config"
	"github.com/xvierd/zenspace/internal/domain"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	notifier   *notification.Notifier
	logger     *slog.Logger
	logFile    io.Closer
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads configuration, applies flag overrides and sets up
// the notifier and logger.
func initializeServices() error {
	if err := resolveConfigPath(); err != nil {
		return err
	}

	var err error
	app.config, err = config.LoadFrom(app.configPath)
	if err != nil {
		return err
	}

	if focusFlag != "" {
		d, err := time.ParseDuration(focusFlag)
		if err != nil || d < time.Second {
			return fmt.Errorf("--focus %q: %w", focusFlag, domain.ErrInvalidDuration)
		}
		app.config.Timer.FocusDuration = config.Duration(d)
	}
	if logPath != "" {
		app.config.Log.File = logPath
	}

	app.notifier = notification.New(&app.config.Notifications)

	app.logger, app.logFile, err = newLogger(app.config.Log)
	if err != nil {
		return err
	}
	return nil
}

// resolveConfigPath picks the --config path or the default one.
func resolveConfigPath() error {
	if configPath != "" {
		app.configPath = configPath
		return nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	app.configPath = path
	return nil
}

// newLogger opens the debug log. With no file configured it returns a
// logger that discards everything.
func newLogger(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	level := slog.LevelInfo
	if name := strings.TrimSpace(cfg.Level); name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	f, err := tea.LogToFile(cfg.File, "zenspace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
