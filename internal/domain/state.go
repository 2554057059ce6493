package domain

// Snapshot captures the session at one instant for the view layer.
type Snapshot struct {
	Remaining       int
	Running         bool
	Progress        float64
	BreathingActive bool
	BreathingScale  float64
	Tracks          [TrackCount]Track
	AverageVolume   float64
	Background      Background
	Tasks           []string
}

// Clock returns the remaining time as MM:SS.
func (s Snapshot) Clock() string {
	return FormatClock(s.Remaining)
}

// TimerLabel returns the label of the start/pause control.
func (s Snapshot) TimerLabel() string {
	if s.Running {
		return "Pause"
	}
	return "Start"
}

// BreathingLabel returns the label of the breathing control.
func (s Snapshot) BreathingLabel() string {
	if s.BreathingActive {
		return "Stop Breathing"
	}
	return "Breathe"
}
