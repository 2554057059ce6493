// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/zenspace/internal/config"
	"github.com/xvierd/zenspace/internal/domain"
	"github.com/xvierd/zenspace/internal/ports"
	"github.com/xvierd/zenspace/internal/services"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// focusArea is the panel receiving panel-specific keys.
type focusArea int

const (
	focusTimer focusArea = iota
	focusMixer
	focusTasks
	focusCount
)

// Options configures a Model.
type Options struct {
	Theme             *config.ThemeConfig
	BreathingInterval time.Duration
}

// Model is the zenspace screen.
type Model struct {
	svc   *services.SessionService
	theme config.ThemeConfig
	keys  keyMap
	help  help.Model

	taskInput   textinput.Model
	filterInput textinput.Model

	focus       focusArea
	trackCursor int
	taskCursor  int

	countdown periodic
	breathing periodic

	width    int
	height   int
	finished bool
}

// NewModel creates the screen around svc.
func NewModel(svc *services.SessionService, opts Options) Model {
	interval := opts.BreathingInterval
	if interval <= 0 {
		interval = config.DefaultBreathingInterval
	}

	ti := textinput.New()
	ti.Placeholder = "Add a task..."
	ti.CharLimit = 200
	ti.Prompt = "+ "

	fi := textinput.New()
	fi.Placeholder = "filter"
	fi.CharLimit = 60
	fi.Prompt = "/ "

	return Model{
		svc:         svc,
		theme:       resolveTheme(opts.Theme),
		keys:        defaultKeys(),
		help:        help.New(),
		taskInput:   ti,
		filterInput: fi,
		countdown:   newPeriodic(tickCountdown, time.Second),
		breathing:   newPeriodic(tickBreathing, interval),
	}
}

// Init initializes the TUI. A fresh session has nothing running, so no
// ticks are scheduled yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m.updateTick(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.taskInput.Focused() {
			return m.updateTaskInput(msg)
		}
		if m.filterInput.Focused() {
			return m.updateFilterInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// quit stops both periodic tasks before leaving.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.countdown.stop()
	m.breathing.stop()
	return m, tea.Quit
}

func (m Model) updateTick(msg tickMsg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case tickCountdown:
		if !m.countdown.accepts(msg) {
			return m, nil
		}
		if m.svc.TickTimer() {
			m.finished = true
		}
		if m.svc.TimerRunning() {
			return m, m.countdown.next()
		}
		m.countdown.stop()
	case tickBreathing:
		if !m.breathing.accepts(msg) {
			return m, nil
		}
		m.svc.TickBreathing()
		if m.svc.BreathingActive() {
			return m, m.breathing.next()
		}
		m.breathing.stop()
	}
	return m, nil
}

// syncTicks aligns both periodic tasks with their owning flags.
func (m *Model) syncTicks() tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.countdown.sync(m.svc.TimerRunning()); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.breathing.sync(m.svc.BreathingActive()); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m Model) command(cmd ports.TimerCommand) (tea.Model, tea.Cmd) {
	_ = m.svc.Execute(cmd)
	if cmd != ports.CmdBreathe {
		m.finished = false
	}
	return m, m.syncTicks()
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		return m.command(ports.CmdToggle)
	case key.Matches(msg, m.keys.Reset):
		return m.command(ports.CmdReset)
	case key.Matches(msg, m.keys.Breathe):
		return m.command(ports.CmdBreathe)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % focusCount
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, nil
	}

	switch m.focus {
	case focusMixer:
		return m.updateMixerKeys(msg)
	case focusTasks:
		return m.updateTaskKeys(msg)
	}
	return m, nil
}

func (m Model) selectedTrack() domain.Track {
	return m.svc.Snapshot().Tracks[m.trackCursor]
}

func (m Model) updateMixerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.trackCursor > 0 {
			m.trackCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.trackCursor < domain.TrackCount-1 {
			m.trackCursor++
		}
	case key.Matches(msg, m.keys.Louder):
		m.svc.NudgeVolume(m.selectedTrack().ID, 1)
	case key.Matches(msg, m.keys.Softer):
		m.svc.NudgeVolume(m.selectedTrack().ID, -1)
	case key.Matches(msg, m.keys.Mute):
		m.svc.SetVolume(m.selectedTrack().ID, 0)
	case key.Matches(msg, m.keys.Full):
		m.svc.SetVolume(m.selectedTrack().ID, 1)
	}
	return m, nil
}

// visibleTasks returns the task positions shown under the current filter.
func (m Model) visibleTasks() []int {
	return m.svc.MatchTasks(m.filterInput.Value())
}

func (m Model) updateTaskKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()
	switch {
	case key.Matches(msg, m.keys.AddTask), key.Matches(msg, m.keys.Submit):
		return m, m.taskInput.Focus()
	case key.Matches(msg, m.keys.Filter):
		return m, m.filterInput.Focus()
	case key.Matches(msg, m.keys.Cancel):
		m.filterInput.Reset()
		m.taskCursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.taskCursor < len(visible)-1 {
			m.taskCursor++
		}
	case key.Matches(msg, m.keys.Remove):
		if m.taskCursor < len(visible) {
			m.svc.RemoveTask(visible[m.taskCursor])
		}
		m.clampTaskCursor()
	}
	return m, nil
}

func (m *Model) clampTaskCursor() {
	n := len(m.visibleTasks())
	if m.taskCursor >= n {
		m.taskCursor = n - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.svc.AddTask(m.taskInput.Value()) {
			m.taskInput.Reset()
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.taskInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.filterInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.taskCursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.taskCursor = 0
	return m, cmd
}
