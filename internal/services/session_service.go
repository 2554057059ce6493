// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xvierd/zenspace/internal/domain"
	"github.com/xvierd/zenspace/internal/ports"
)

// ErrUnknownCommand is returned by Execute for commands it does not know.
var ErrUnknownCommand = errors.New("unknown command")

// SessionService applies user actions and ticks to a single session.
// It is driven from one goroutine (the program's update loop) and does no
// locking.
type SessionService struct {
	session  *domain.Session
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewSessionService creates a service around a fresh session built from cfg.
func NewSessionService(cfg domain.SessionConfig, notifier ports.Notifier, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := domain.NewSession(cfg)
	return &SessionService{
		session:  s,
		notifier: notifier,
		logger:   logger.With("session", s.ID),
	}
}

// Session exposes the underlying session for read access.
func (s *SessionService) Session() *domain.Session {
	return s.session
}

// Snapshot returns the current state for rendering.
func (s *SessionService) Snapshot() domain.Snapshot {
	return s.session.Snapshot()
}

// Execute applies a parameterless command.
func (s *SessionService) Execute(cmd ports.TimerCommand) error {
	c := &s.session.Countdown
	switch cmd {
	case ports.CmdToggle:
		c.Toggle()
	case ports.CmdStart:
		c.Start()
	case ports.CmdPause:
		c.Pause()
	case ports.CmdReset:
		c.Reset()
	case ports.CmdBreathe:
		s.session.Breathing.Toggle()
		s.logger.Debug("breathing toggled", "active", s.session.Breathing.IsActive())
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	s.logger.Debug("countdown command",
		"command", string(cmd),
		"running", c.IsRunning(),
		"remaining", c.Remaining())
	return nil
}

// TimerRunning reports whether the countdown tick should be scheduled.
func (s *SessionService) TimerRunning() bool {
	return s.session.Countdown.IsRunning()
}

// BreathingActive reports whether the breathing tick should be scheduled.
func (s *SessionService) BreathingActive() bool {
	return s.session.Breathing.IsActive()
}

// TickTimer advances the countdown by one second. On the tick that finishes
// the block the notifier is called; its failure is logged, never returned.
func (s *SessionService) TickTimer() bool {
	finished := s.session.Countdown.Tick()
	if !finished {
		return false
	}
	length := time.Duration(s.session.Countdown.Initial()) * time.Second
	s.logger.Info("focus block complete", "length", length)
	if s.notifier != nil {
		if err := s.notifier.NotifyFocusComplete(length); err != nil {
			s.logger.Warn("failed to send notification", "error", err)
		}
	}
	return true
}

// TickBreathing advances the breathing animation by one step.
func (s *SessionService) TickBreathing() {
	s.session.Breathing.Tick()
}

// SetVolume sets a track's volume. Unknown ids are ignored.
func (s *SessionService) SetVolume(id string, v float64) bool {
	ok := s.session.Mixer.SetVolume(id, v)
	s.logVolume(id, ok)
	return ok
}

// NudgeVolume moves a track's volume by one slider step per unit of dir.
func (s *SessionService) NudgeVolume(id string, dir int) bool {
	ok := s.session.Mixer.Nudge(id, float64(dir)*domain.VolumeStep)
	s.logVolume(id, ok)
	return ok
}

func (s *SessionService) logVolume(id string, ok bool) {
	if !ok {
		s.logger.Debug("volume edit ignored", "track", id)
		return
	}
	t, _ := s.session.Mixer.Track(id)
	bg := s.session.Mixer.Background()
	s.logger.Debug("volume set",
		"track", id,
		"volume", t.Volume,
		"average", s.session.Mixer.Average(),
		"hue_from", int(bg.From),
		"hue_to", int(bg.To))
}

// AddTask appends a task. Blank text is rejected without error.
func (s *SessionService) AddTask(text string) bool {
	ok := s.session.Tasks.Add(text)
	s.logger.Debug("add task", "accepted", ok, "count", s.session.Tasks.Len())
	return ok
}

// RemoveTask removes the task at index i. Out-of-range indices are ignored.
func (s *SessionService) RemoveTask(i int) bool {
	ok := s.session.Tasks.Remove(i)
	s.logger.Debug("remove task", "index", i, "removed", ok, "count", s.session.Tasks.Len())
	return ok
}

// MatchTasks returns the positions of tasks matching query.
func (s *SessionService) MatchTasks(query string) []int {
	return s.session.Tasks.Match(query)
}
