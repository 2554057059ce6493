package ports

import "time"

// Notifier tells the user a focus block has finished.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyFocusComplete is called once when the countdown reaches zero.
	NotifyFocusComplete(length time.Duration) error
}
