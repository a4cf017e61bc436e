package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/notch-ai/pyprobe/internal/probe"
)

var (
	colorAccent  = lipgloss.Color("#04D9FF") // Neon Cyan
	colorHealthy = lipgloss.Color("#00FF94") // Neon Green
	colorFailed  = lipgloss.Color("#FF0055") // Neon Red
	colorMuted   = lipgloss.Color("#565f89") // Muted Blue

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	okStyle = lipgloss.NewStyle().
		Foreground(colorHealthy).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(colorFailed).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// View renders the in-flight spinner line
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return fmt.Sprintf("\n  %s %s\n", m.spinner.View(), titleStyle.Render("Probing Python runtime..."))
}

// RenderSummary renders a finished report as styled check lines for humans.
// The machine-readable form is the JSON line; this one is for eyes.
func RenderSummary(report probe.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Python runtime check"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Python version:"), report.PythonVersion)

	if report.Success {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("SDK import:"), okStyle.Render("ok"))
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("SDK version:"), report.SDKVersion)
	} else {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("SDK import:"), failStyle.Render("FAIL"))
		if report.Error != nil {
			fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Cause:"), failStyle.Render(*report.Error))
		}
	}

	return b.String()
}
