package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/notch-ai/pyprobe/internal/config"
	"github.com/notch-ai/pyprobe/internal/probe"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pyprobe",
	Short: "Check the Python runtime and claude-code-sdk availability",
	Long: `Pyprobe verifies that a Python interpreter is available and that the
claude-code-sdk package can be imported, then reports the outcome as a
single JSON line on stdout.

The output is meant for a calling process: it always has the same shape,
and the exit code is always 0 — a missing interpreter or SDK is data in
the result, not a process failure. Use 'pyprobe doctor' for a
human-readable check instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prober, err := proberFromConfig()
		if err != nil {
			// Even a broken config must not break the contract: the
			// caller still gets one well-formed result line.
			report := probe.NewReport()
			report.Fail("Error: " + err.Error())
			return printReport(report)
		}

		return printReport(prober.Run(context.Background()))
	},
}

// proberFromConfig builds a prober from the config file, or from built-in
// defaults when no config exists.
func proberFromConfig() (*probe.Prober, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.ParseTimeout()
	if err != nil {
		return nil, err
	}

	return probe.New(probe.Options{
		Candidates:   cfg.Interpreters,
		Module:       cfg.Module,
		Distribution: cfg.Distribution,
		Timeout:      timeout,
	}), nil
}

// printReport writes the single contract line to stdout. A marshal or write
// failure here is an unrecoverable environment problem and the one error
// allowed to escape.
func printReport(report probe.Report) error {
	line, err := report.Line()
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	fmt.Println(line)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
