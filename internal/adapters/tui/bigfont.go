package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphRows is the height of a big-clock glyph.
const glyphRows = 3

// halfBlockDigits draws digits and the colon with half-block characters.
// Digits are three cells wide, the colon one.
var halfBlockDigits = map[rune][glyphRows]string{
	'0': {"█▀█", "█ █", "█▄█"},
	'1': {"▀█ ", " █ ", "▄█▄"},
	'2': {"▀▀█", "█▀▀", "█▄▄"},
	'3': {"▀▀█", " ▀█", "▄▄█"},
	'4': {"█ █", "▀▀█", "  █"},
	'5': {"█▀▀", "▀▀█", "▄▄█"},
	'6': {"█▀▀", "█▀█", "█▄█"},
	'7': {"▀▀█", "  █", "  █"},
	'8': {"█▀█", "█▀█", "█▄█"},
	'9': {"█▀█", "▀▀█", "▄▄█"},
	':': {" ", "▀", "▀"},
}

// renderBigTime draws a clock string like "24:59" in half-block digits.
// Narrow terminals (under 40 columns) get a single bold line instead.
func renderBigTime(clock string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < 40 {
		return style.Render(clock)
	}

	var rows [glyphRows]string
	for i, ch := range clock {
		glyph, ok := halfBlockDigits[ch]
		if !ok {
			continue
		}
		for r := range rows {
			if i > 0 {
				rows[r] += " "
			}
			rows[r] += glyph[r]
		}
	}

	styled := make([]string, glyphRows)
	for i, row := range rows {
		styled[i] = style.Render(row)
	}
	return strings.Join(styled, "\n")
}
