package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for profile names.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleNumber for costs.
	StyleNumber = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleUnreachable = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// outcome is what the commands print for one search.
type outcome struct {
	Name     string
	Found    bool
	Cost     int64
	Moves    string
	Expanded int
	Elapsed  time.Duration
}

// printOutcome renders one search result:
//
//	✓ part one  102  (1.2ms, 4211 states)
//	  moves     EESSE...
func printOutcome(w io.Writer, o outcome, showPath bool) {
	stats := StyleDim.Render(fmt.Sprintf("(%s, %d states)", o.Elapsed.Round(time.Microsecond), o.Expanded))
	if !o.Found {
		fmt.Fprintf(w, "%s %s %s  %s\n", styleUnreachable.Render(iconError), StyleTitle.Render(o.Name),
			styleUnreachable.Render("unreachable"), stats)
		return
	}
	fmt.Fprintf(w, "%s %s %s  %s\n", StyleNumber.Render(iconSuccess), StyleTitle.Render(o.Name),
		StyleNumber.Render(fmt.Sprint(o.Cost)), stats)
	if showPath {
		fmt.Fprintf(w, "  %s %s\n", styleLabel.Render("moves"), o.Moves)
	}
}
