package domain

// Breathing scale bounds and step.
const (
	BreathMinScale = 1.0
	BreathMaxScale = 1.5
	BreathStep     = 0.05
)

// breathSteps is the number of steps between the two bounds.
const breathSteps = 10

// Breathing drives the breathing halo. The scale follows a triangle wave
// between BreathMinScale and BreathMaxScale while active.
//
// The wave position is kept as an integer step so the scale never drifts
// past a bound through float accumulation.
type Breathing struct {
	active  bool
	step    int
	growing bool
}

// NewBreathing returns an inactive animator at the resting scale.
func NewBreathing() Breathing {
	return Breathing{growing: true}
}

// IsActive reports whether ticks advance the scale.
func (b Breathing) IsActive() bool { return b.active }

// Growing reports the current direction.
func (b Breathing) Growing() bool { return b.growing }

// Scale returns the current size multiplier.
func (b Breathing) Scale() float64 {
	s := BreathMinScale + float64(b.step)*BreathStep
	if s > BreathMaxScale {
		return BreathMaxScale
	}
	if s < BreathMinScale {
		return BreathMinScale
	}
	return s
}

// Toggle flips the active flag. Switching on restarts the cycle from the
// resting scale; switching off freezes the scale where it is.
func (b *Breathing) Toggle() {
	b.active = !b.active
	if b.active {
		b.step = 0
		b.growing = true
	}
}

// Tick moves the scale one step. Inactive animators ignore ticks.
func (b *Breathing) Tick() {
	if !b.active {
		return
	}
	if b.growing {
		b.step++
		if b.step >= breathSteps {
			b.step = breathSteps
			b.growing = false
		}
		return
	}
	b.step--
	if b.step <= 0 {
		b.step = 0
		b.growing = true
	}
}
