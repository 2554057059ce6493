package domain

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// TrackCount is the fixed number of ambient tracks.
const TrackCount = 5

// Background stop saturation and lightness.
const (
	BackgroundSaturation = 0.70
	BackgroundLightness  = 0.95
)

// VolumeStep is the slider granularity.
const VolumeStep = 0.1

// Track is one ambient channel. Only Volume changes after a session starts.
type Track struct {
	ID       string
	Name     string
	ColorTag string
	Volume   float64
}

// DefaultTracks returns the five tracks a fresh session starts with.
func DefaultTracks() [TrackCount]Track {
	return [TrackCount]Track{
		{ID: "rain", Name: "Rain", ColorTag: "blue", Volume: 0.3},
		{ID: "forest", Name: "Forest", ColorTag: "green"},
		{ID: "cafe", Name: "Cafe", ColorTag: "orange"},
		{ID: "waves", Name: "Waves", ColorTag: "cyan"},
		{ID: "white", Name: "White Noise", ColorTag: "gray"},
	}
}

// IsTrackID reports whether id names one of the fixed tracks.
func IsTrackID(id string) bool {
	for _, t := range DefaultTracks() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Mixer holds the fixed track list.
type Mixer struct {
	tracks [TrackCount]Track
}

// NewMixer creates a mixer from the given tracks.
func NewMixer(tracks [TrackCount]Track) Mixer {
	for i := range tracks {
		tracks[i].Volume = clampVolume(tracks[i].Volume)
	}
	return Mixer{tracks: tracks}
}

// Tracks returns a copy of the tracks in display order.
func (m Mixer) Tracks() [TrackCount]Track { return m.tracks }

// Track returns the track with the given id.
func (m Mixer) Track(id string) (Track, bool) {
	i := m.index(id)
	if i < 0 {
		return Track{}, false
	}
	return m.tracks[i], true
}

// SetVolume clamps v to [0, 1] and stores it on the track. Unknown ids and
// NaN values are ignored.
func (m *Mixer) SetVolume(id string, v float64) bool {
	i := m.index(id)
	if i < 0 || math.IsNaN(v) {
		return false
	}
	m.tracks[i].Volume = clampVolume(v)
	return true
}

// Nudge moves a track's volume by delta and snaps the result to the slider
// granularity.
func (m *Mixer) Nudge(id string, delta float64) bool {
	t, ok := m.Track(id)
	if !ok {
		return false
	}
	return m.SetVolume(id, math.Round((t.Volume+delta)/VolumeStep)*VolumeStep)
}

// Average returns the arithmetic mean of all track volumes.
func (m Mixer) Average() float64 {
	var sum float64
	for _, t := range m.tracks {
		sum += t.Volume
	}
	return sum / TrackCount
}

// Background derives the two colour stops from the current volumes.
func (m Mixer) Background() Background {
	h := int(math.Floor(m.Average() * 360))
	return Background{From: Hue(h), To: Hue((h + 60) % 360)}
}

func (m Mixer) index(id string) int {
	for i, t := range m.tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Hue is an integer hue in degrees.
type Hue int

// Color returns the hue at the fixed background saturation and lightness.
func (h Hue) Color() colorful.Color {
	return colorful.Hsl(float64(h), BackgroundSaturation, BackgroundLightness)
}

// Hex returns the stop as #rrggbb.
func (h Hue) Hex() string {
	return h.Color().Clamped().Hex()
}

// String renders the stop in CSS hsl() notation.
func (h Hue) String() string {
	return fmt.Sprintf("hsl(%d, %.0f%%, %.0f%%)", int(h), BackgroundSaturation*100, BackgroundLightness*100)
}

// Background is the pair of colour stops behind the screen.
type Background struct {
	From Hue
	To   Hue
}

// Blend returns the colour at t in [0, 1] between the two stops.
func (b Background) Blend(t float64) colorful.Color {
	return b.From.Color().BlendHcl(b.To.Color(), t).Clamped()
}
