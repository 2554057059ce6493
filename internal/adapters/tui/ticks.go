package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickKind identifies which periodic task a tick belongs to.
type tickKind int

const (
	tickCountdown tickKind = iota
	tickBreathing
)

// tickMsg is sent by a periodic task. gen ties it to the run that
// scheduled it.
type tickMsg struct {
	kind tickKind
	gen  int
	at   time.Time
}

// periodic is a cancellable repeating tick. Every start or stop bumps the
// generation, so ticks already in flight from an earlier run are dropped
// on arrival and never re-arm.
type periodic struct {
	kind     tickKind
	interval time.Duration
	gen      int
	live     bool
}

func newPeriodic(kind tickKind, interval time.Duration) periodic {
	return periodic{kind: kind, interval: interval}
}

// start begins a new run and returns its first tick.
func (p *periodic) start() tea.Cmd {
	p.gen++
	p.live = true
	return p.next()
}

// stop cancels the current run.
func (p *periodic) stop() {
	p.gen++
	p.live = false
}

// sync starts or stops the task to match want.
func (p *periodic) sync(want bool) tea.Cmd {
	switch {
	case want && !p.live:
		return p.start()
	case !want && p.live:
		p.stop()
	}
	return nil
}

// accepts reports whether msg belongs to the live run.
func (p periodic) accepts(msg tickMsg) bool {
	return p.live && msg.kind == p.kind && msg.gen == p.gen
}

// next schedules the following tick of the current run.
func (p periodic) next() tea.Cmd {
	kind, gen := p.kind, p.gen
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return tickMsg{kind: kind, gen: gen, at: t}
	})
}
