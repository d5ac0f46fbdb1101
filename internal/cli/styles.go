package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}).
			Bold(true)

	cliWarn = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"})

	cliError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"})

	cliKey = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})

	cliCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}).
		Padding(0, 2)
)

// kvPair is a key/value line in a summary card.
type kvPair struct {
	Key   string
	Value string
}

// renderKeyValueLines renders aligned key/value lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.Key) > width {
			width = len(p.Key)
		}
	}

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%s  %s",
			cliKey.Render(fmt.Sprintf("%-*s", width, p.Key)), p.Value)
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered card with a success title and
// optional detail blocks.
func renderSuccessCard(title string, details ...string) string {
	parts := []string{cliSuccess.Render("✓ " + title)}
	for _, d := range details {
		if d != "" {
			parts = append(parts, d)
		}
	}
	return cliCard.Render(strings.Join(parts, "\n\n"))
}

// onOff renders a subsystem toggle for the summary card.
func onOff(enabled bool) string {
	if enabled {
		return cliSuccess.Render("yes")
	}
	return cliKey.Render("no")
}
