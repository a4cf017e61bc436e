package cmd

import (
	"context"
	"fmt"

	"github.com/notch-ai/pyprobe/internal/config"
	"github.com/notch-ai/pyprobe/internal/execx"
	"github.com/notch-ai/pyprobe/internal/interpreter"
	"github.com/spf13/cobra"
)

var interpreterListCmd = &cobra.Command{
	Use:   "interpreter:list",
	Short: "List Python interpreters found on PATH",
	Long:  `Discover every configured interpreter candidate on PATH and print its version.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		timeout, err := cfg.ParseTimeout()
		if err != nil {
			return err
		}

		paths := interpreter.DiscoverAll(cfg.Interpreters)
		if len(paths) == 0 {
			fmt.Println("No python interpreters found on PATH.")
			fmt.Printf("\nLooked for: %v\n", cfg.Interpreters)
			return nil
		}

		fmt.Printf("Found interpreters (%d):\n\n", len(paths))

		for _, path := range paths {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			info, err := interpreter.Inspect(ctx, execx.Run, path)
			cancel()

			if err != nil {
				fmt.Printf("  • %s\n", path)
				fmt.Printf("    Error: %v\n\n", err)
				continue
			}

			fmt.Printf("  • %s\n", info.Path)
			fmt.Printf("    Version: %s", info.Version)
			if info.Implementation != "" {
				fmt.Printf(" (%s)", info.Implementation)
			}
			fmt.Println()
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(interpreterListCmd)
}
