// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/zenspace/internal/config"
	"github.com/xvierd/zenspace/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg   *config.NotificationConfig
	send  func(title, message string, icon any) error
	alert func(title, message string, icon any) error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, send: beeep.Notify, alert: beeep.Alert}
}

// Notify displays a desktop notification if enabled. With sound enabled
// the notification is raised as an alert.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	if n.cfg.Sound {
		return n.alert(title, message, "")
	}
	return n.send(title, message, "")
}

// NotifyFocusComplete displays a notification when the countdown finishes.
func (n *Notifier) NotifyFocusComplete(length time.Duration) error {
	title := "🌿 Focus block complete"
	message := fmt.Sprintf("You stayed with it for %s. Take a breath.", length.Round(time.Second))
	if err := n.Notify(title, message); err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}
	return nil
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
