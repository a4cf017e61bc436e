package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/notch-ai/pyprobe/internal/probe"
)

// reportMsg carries the finished probe report back into the update loop
type reportMsg probe.Report

// runProbe executes the probe off the UI loop
func (m Model) runProbe() tea.Msg {
	return reportMsg(m.prober.Run(context.Background()))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		report := probe.Report(msg)
		m.report = &report
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
