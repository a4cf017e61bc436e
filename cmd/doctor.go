package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/notch-ai/pyprobe/internal/notify"
	"github.com/notch-ai/pyprobe/internal/probe"
	"github.com/notch-ai/pyprobe/internal/tui"
	"github.com/spf13/cobra"
)

var (
	doctorNotify bool
	doctorPlain  bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the Python runtime with human-readable output",
	Long: `Run the same single-shot check as the bare 'pyprobe' command, but
report the outcome for humans instead of machines.

Unlike the JSON probe, doctor exits with a non-zero status when the check
fails, making it suitable as a gate in scripts and CI:

  pyprobe doctor || exit 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prober, err := proberFromConfig()
		if err != nil {
			return err
		}

		var report probe.Report
		if doctorPlain {
			report = prober.Run(context.Background())
		} else {
			model := tui.NewModel(prober)
			p := tea.NewProgram(model)

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("failed to start TUI: %w", err)
			}

			m, ok := final.(tui.Model)
			if !ok {
				return fmt.Errorf("unexpected TUI model type")
			}

			report, ok = m.Report()
			if !ok {
				// Interrupted before the probe finished.
				return fmt.Errorf("check aborted")
			}
		}

		fmt.Println(tui.RenderSummary(report))

		notifier := notify.NewNotifier(doctorNotify)
		if err := notifier.NotifyReport(report); err != nil {
			return err
		}

		if !report.Success {
			return fmt.Errorf("runtime check failed")
		}

		return nil
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorNotify, "notify", false, "send a desktop notification with the outcome")
	doctorCmd.Flags().BoolVar(&doctorPlain, "plain", false, "skip the spinner, print plain output")
	rootCmd.AddCommand(doctorCmd)
}
