package echo

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Report returns a fixed-width plain-text summary of a session. The
// shell copies it to the clipboard on demand and prints it when a won
// session quits. For won sessions the elapsed line freezes at the win
// time.
func Report(s *Session, now float64) string {
	elapsed := now - s.startedAt
	if s.state == Won {
		elapsed = s.wonAt - s.startedAt
	}
	exitLit := "no"
	if s.state == Won || s.Vis.IsVisible(s.Exit.Col, s.Exit.Row, now) {
		exitLit = "yes"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Echo World session %s ---\n", s.ID)
	fmt.Fprintf(&sb, "maze:     %dx%d, %d floor cells\n", s.Grid.Cols, s.Grid.Rows, s.Grid.CountPassable())
	fmt.Fprintf(&sb, "state:    %s\n", s.state)
	fmt.Fprintf(&sb, "elapsed:  %.1fs\n", elapsed)
	fmt.Fprintf(&sb, "pings:    %d\n", s.Pings())
	fmt.Fprintf(&sb, "moves:    %d\n", s.moves)
	fmt.Fprintf(&sb, "exit lit: %s\n", exitLit)
	return sb.String()
}

// CopyReport puts the current report on the system clipboard.
func CopyReport(s *Session, now float64) error {
	return clipboard.WriteAll(Report(s, now))
}
