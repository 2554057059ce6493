// Package domain contains the state machines behind the zenspace screen:
// the focus countdown, the breathing animator, the ambient mixer and the
// task list. None of them does I/O and none of them can fail.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common domain errors.
var (
	ErrUnknownTrack    = errors.New("unknown track")
	ErrNotATerminal    = errors.New("zenspace needs an interactive terminal")
	ErrInvalidVolume   = errors.New("volume must be between 0 and 1")
	ErrInvalidDuration = errors.New("invalid duration")
)

// SessionConfig holds the values a fresh session starts from.
type SessionConfig struct {
	FocusDuration time.Duration
	Volumes       map[string]float64
}

// DefaultSessionConfig returns the stock 25 minute session with the default
// track mix.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{FocusDuration: DefaultFocusSeconds * time.Second}
}

// Session owns the four pieces of screen state. It lives as long as the
// screen does and is never shared.
type Session struct {
	ID        string
	StartedAt time.Time

	Countdown Countdown
	Breathing Breathing
	Mixer     Mixer
	Tasks     TaskList
}

// NewSession creates a session from cfg. Volume overrides for ids outside
// the fixed track set are ignored.
func NewSession(cfg SessionConfig) *Session {
	tracks := DefaultTracks()
	for i := range tracks {
		if v, ok := cfg.Volumes[tracks[i].ID]; ok {
			tracks[i].Volume = v
		}
	}
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Countdown: NewCountdown(cfg.FocusDuration),
		Breathing: NewBreathing(),
		Mixer:     NewMixer(tracks),
	}
}

// Snapshot returns a read-only copy of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Remaining:       s.Countdown.Remaining(),
		Running:         s.Countdown.IsRunning(),
		Progress:        s.Countdown.Progress(),
		BreathingActive: s.Breathing.IsActive(),
		BreathingScale:  s.Breathing.Scale(),
		Tracks:          s.Mixer.Tracks(),
		AverageVolume:   s.Mixer.Average(),
		Background:      s.Mixer.Background(),
		Tasks:           s.Tasks.Items(),
	}
}
