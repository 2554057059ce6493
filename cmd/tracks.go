package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/zenspace/internal/domain"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the ambient tracks and the starting background",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		mixer := domain.NewSession(app.config.SessionConfig()).Mixer

		fmt.Fprintln(w)
		for _, t := range mixer.Tracks() {
			fmt.Fprintf(w, "  %s %-8s %-12s %-7s %3.0f%%\n",
				app.config.Theme.TrackIcon(t.ID), t.ID, t.Name, t.ColorTag, t.Volume*100)
		}

		bg := mixer.Background()
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Average volume:  %.2f\n", mixer.Average())
		fmt.Fprintf(w, "  Background:      %s (%s) -> %s (%s)\n",
			bg.From, bg.From.Hex(), bg.To, bg.To.Hex())
		fmt.Fprintln(w)
		return nil
	},
}

// formatMinutes formats a duration as a human-friendly string like "25m" or "1h30m".
func formatMinutes(d time.Duration) string {
	if d%time.Minute != 0 {
		return d.String()
	}
	if d >= time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
