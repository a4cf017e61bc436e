package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/notch-ai/pyprobe/internal/probe"
)

// Model represents the TUI state while a probe is in flight
type Model struct {
	spinner  spinner.Model
	prober   *probe.Prober
	report   *probe.Report
	quitting bool
}

// NewModel creates a new TUI model wrapping a prober
func NewModel(p *probe.Prober) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		spinner: s,
		prober:  p,
	}
}

// Init starts the spinner and kicks off the probe
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runProbe)
}

// Report returns the finished probe report, if the run completed.
func (m Model) Report() (probe.Report, bool) {
	if m.report == nil {
		return probe.Report{}, false
	}
	return *m.report, true
}
