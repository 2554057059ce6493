package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(DefaultSessionConfig())

	require.NotEmpty(t, s.ID)
	assert.False(t, s.StartedAt.IsZero())
	assert.Equal(t, 1500, s.Countdown.Remaining())
	assert.False(t, s.Countdown.IsRunning())
	assert.False(t, s.Breathing.IsActive())
	assert.Equal(t, 1.0, s.Breathing.Scale())
	assert.Equal(t, 0, s.Tasks.Len())

	rain, ok := s.Mixer.Track("rain")
	require.True(t, ok)
	assert.Equal(t, 0.3, rain.Volume)
}

func TestNewSession_Overrides(t *testing.T) {
	s := NewSession(SessionConfig{
		FocusDuration: 50 * time.Minute,
		Volumes:       map[string]float64{"cafe": 0.6, "rain": 2, "thunder": 1},
	})

	assert.Equal(t, 3000, s.Countdown.Remaining())

	cafe, _ := s.Mixer.Track("cafe")
	assert.Equal(t, 0.6, cafe.Volume)

	rain, _ := s.Mixer.Track("rain")
	assert.Equal(t, 1.0, rain.Volume, "overrides are clamped")

	_, ok := s.Mixer.Track("thunder")
	assert.False(t, ok, "unknown ids never become tracks")
}

func TestNewSession_UniqueIDs(t *testing.T) {
	a := NewSession(DefaultSessionConfig())
	b := NewSession(DefaultSessionConfig())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_Snapshot(t *testing.T) {
	s := NewSession(DefaultSessionConfig())
	s.Countdown.Start()
	s.Countdown.Tick()
	s.Tasks.Add("a")

	snap := s.Snapshot()
	assert.Equal(t, "24:59", snap.Clock())
	assert.True(t, snap.Running)
	assert.Equal(t, "Pause", snap.TimerLabel())
	assert.Equal(t, "Breathe", snap.BreathingLabel())
	assert.Equal(t, []string{"a"}, snap.Tasks)
	assert.InDelta(t, 0.06, snap.AverageVolume, 1e-12)

	snap.Tasks[0] = "mutated"
	item, _ := s.Tasks.At(0)
	assert.Equal(t, "a", item, "snapshots must not alias session state")
}

// The end-to-end scenario: rain alone at full volume.
func TestSession_RainOnlyBackground(t *testing.T) {
	s := NewSession(DefaultSessionConfig())
	for _, tr := range s.Mixer.Tracks() {
		s.Mixer.SetVolume(tr.ID, 0)
	}
	s.Mixer.SetVolume("rain", 1.0)

	assert.InDelta(t, 0.2, s.Mixer.Average(), 1e-12)
	bg := s.Mixer.Background()
	assert.Equal(t, Hue(72), bg.From)
	assert.Equal(t, Hue(132), bg.To)
}
