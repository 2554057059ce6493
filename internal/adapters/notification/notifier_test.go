package notification

import (
	"errors"
	"testing"
	"time"

	"github.com/xvierd/zenspace/internal/config"
)

type recorder struct {
	notified int
	alerted  int
	title    string
	message  string
	err      error
}

func (r *recorder) notifier(cfg *config.NotificationConfig) *Notifier {
	n := New(cfg)
	n.send = func(title, message string, _ any) error {
		r.notified++
		r.title, r.message = title, message
		return r.err
	}
	n.alert = func(title, message string, _ any) error {
		r.alerted++
		r.title, r.message = title, message
		return r.err
	}
	return n
}

func TestNotifier_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.NotificationConfig
	}{
		{"nil config", nil},
		{"disabled", &config.NotificationConfig{Enabled: false, Sound: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			n := r.notifier(tt.cfg)
			if err := n.NotifyFocusComplete(25 * time.Minute); err != nil {
				t.Fatalf("NotifyFocusComplete() error = %v", err)
			}
			if r.notified+r.alerted != 0 {
				t.Error("disabled notifier should not send anything")
			}
			if n.IsEnabled() {
				t.Error("IsEnabled() = true, want false")
			}
		})
	}
}

func TestNotifier_SoundSelectsAlert(t *testing.T) {
	r := &recorder{}
	n := r.notifier(&config.NotificationConfig{Enabled: true, Sound: true})
	if err := n.NotifyFocusComplete(25 * time.Minute); err != nil {
		t.Fatalf("NotifyFocusComplete() error = %v", err)
	}
	if r.alerted != 1 || r.notified != 0 {
		t.Errorf("alerted=%d notified=%d, want 1/0", r.alerted, r.notified)
	}
}

func TestNotifier_Message(t *testing.T) {
	r := &recorder{}
	n := r.notifier(&config.NotificationConfig{Enabled: true})
	if err := n.NotifyFocusComplete(25 * time.Minute); err != nil {
		t.Fatalf("NotifyFocusComplete() error = %v", err)
	}
	if r.notified != 1 {
		t.Fatalf("notified = %d, want 1", r.notified)
	}
	if r.message != "You stayed with it for 25m0s. Take a breath." {
		t.Errorf("message = %q", r.message)
	}
}

func TestNotifier_WrapsError(t *testing.T) {
	sendErr := errors.New("no notification daemon")
	r := &recorder{err: sendErr}
	n := r.notifier(&config.NotificationConfig{Enabled: true})
	err := n.NotifyFocusComplete(time.Minute)
	if !errors.Is(err, sendErr) {
		t.Errorf("NotifyFocusComplete() error = %v, want wrapped %v", err, sendErr)
	}
}
