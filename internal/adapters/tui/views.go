package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/zenspace/internal/domain"
)

// maxContentWidth caps the panel width on wide terminals.
const maxContentWidth = 72

// maxHaloPad is the halo padding at the largest breathing scale.
const maxHaloPad = 4

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	snap := m.svc.Snapshot()
	w := m.contentWidth()

	sections := []string{
		m.viewHeader(snap, w),
		m.viewTimer(snap, w),
		m.viewMixer(snap, w),
		m.viewTasks(snap, w),
		m.viewHelp(),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	bg := lipgloss.Color(snap.Background.From.Hex())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(bg))
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// viewHeader draws the title over a band blending the two background stops.
func (m Model) viewHeader(snap domain.Snapshot, w int) string {
	var band strings.Builder
	for x := 0; x < w; x++ {
		t := 0.0
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		c := snap.Background.Blend(t)
		band.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.theme.ColorTitle)).
		Render(fmt.Sprintf("%s ZenSpace", m.theme.IconApp))
	return lipgloss.JoinVertical(lipgloss.Center, band.String(), title, "")
}

// haloPad maps the breathing scale onto halo padding in cells.
func haloPad(scale float64) int {
	span := domain.BreathMaxScale - domain.BreathMinScale
	p := int(math.Round((scale - domain.BreathMinScale) / span * maxHaloPad))
	if p < 0 {
		return 0
	}
	if p > maxHaloPad {
		return maxHaloPad
	}
	return p
}

func (m Model) viewTimer(snap domain.Snapshot, w int) string {
	clockColor := lipgloss.Color(m.theme.ColorClock)
	if !snap.Running {
		clockColor = lipgloss.Color(m.theme.ColorPaused)
	}

	clock := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(focusTimer)).
		Padding(0, 2).
		Render(renderBigTime(snap.Clock(), clockColor, m.width))

	pad := haloPad(snap.BreathingScale)
	halo := lipgloss.NewStyle().Padding(pad/2, pad)
	if snap.BreathingActive || pad > 0 {
		halo = halo.Background(lipgloss.Color(m.theme.ColorHalo))
	}
	ring := halo.Render(clock)

	// Reserve room for the largest halo so the panels below stay put.
	stageHeight := lipgloss.Height(clock) + 2*(maxHaloPad/2)
	stage := lipgloss.Place(w, stageHeight, lipgloss.Center, lipgloss.Center, ring)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	controls := helpStyle.Render(fmt.Sprintf("[space] %s  [r] Reset  [b] %s",
		snap.TimerLabel(), snap.BreathingLabel()))

	lines := []string{stage, controls}
	if m.finished {
		done := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorFocus))
		lines = append(lines, done.Render("Focus block complete. Press r to go again."))
	}
	lines = append(lines, "")
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) borderColor(area focusArea) lipgloss.Color {
	if m.focus == area {
		return lipgloss.Color(m.theme.ColorFocus)
	}
	return lipgloss.Color(m.theme.ColorHelp)
}

func (m Model) panelStyle(area focusArea, w int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(area)).
		Padding(0, 1).
		Width(w - 2)
}

func (m Model) viewMixer(snap domain.Snapshot, w int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorClock))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorClock))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	barWidth := w - 30
	if barWidth < 8 {
		barWidth = 8
	}
	bar := progress.New(
		progress.WithGradient(m.theme.VolumeGradientStart, m.theme.VolumeGradientEnd),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)

	lines := []string{titleStyle.Render("🔊 Ambiance Mixer")}
	for i, t := range snap.Tracks {
		cursor := "  "
		if m.focus == focusMixer && i == m.trackCursor {
			cursor = "▸ "
		}
		label := fmt.Sprintf("%s%s %-12s", cursor, m.theme.TrackIcon(t.ID), t.Name)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			nameStyle.Render(label),
			bar.ViewAs(t.Volume),
			helpStyle.Render(fmt.Sprintf("%3.0f%%", t.Volume*100))))
	}
	lines = append(lines, helpStyle.Render(fmt.Sprintf("average %.2f · %s → %s",
		snap.AverageVolume, snap.Background.From, snap.Background.To)))

	return m.panelStyle(focusMixer, w).Render(strings.Join(lines, "\n"))
}

func (m Model) viewTasks(snap domain.Snapshot, w int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorClock))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorClock))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	lines := []string{titleStyle.Render("Focus Tasks"), m.taskInput.View()}
	if m.filterInput.Focused() || m.filterInput.Value() != "" {
		lines = append(lines, m.filterInput.View())
	}

	visible := m.visibleTasks()
	if len(snap.Tasks) == 0 {
		lines = append(lines, helpStyle.Render("No tasks yet."))
	} else if len(visible) == 0 {
		lines = append(lines, helpStyle.Render("No matching tasks."))
	}
	for row, idx := range visible {
		cursor := "  "
		if m.focus == focusTasks && row == m.taskCursor {
			cursor = "▸ "
		}
		lines = append(lines, fmt.Sprintf("%s%s %s  %s",
			cursor, m.theme.IconTask, taskStyle.Render(snap.Tasks[idx]), helpStyle.Render("✕")))
	}

	return m.panelStyle(focusTasks, w).Render(strings.Join(lines, "\n"))
}

func (m Model) viewHelp() string {
	if m.taskInput.Focused() || m.filterInput.Focused() {
		return m.help.ShortHelpView(m.keys.inputHelp())
	}
	if m.help.ShowAll {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return m.help.ShortHelpView(m.keys.panelHelp(m.focus))
}
