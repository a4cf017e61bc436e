package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/notch-ai/pyprobe/internal/config"
	"github.com/spf13/cobra"
)

var (
	forceInit    bool
	initDefaults bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize pyprobe configuration",
	Long: `Create a new pyprobe configuration file at ~/.config/pyprobe/config.yml.

By default an interactive form asks for the module to probe and the
interpreter lookup order; pass --defaults to write the stock configuration
without prompting. The bare 'pyprobe' command works without any config
file — this is only needed to override the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()

		if !initDefaults {
			if err := runInitForm(cfg); err != nil {
				return err
			}
		}

		if err := config.WriteConfig(cfg, forceInit); err != nil {
			return err
		}

		configPath, _ := config.GetConfigPath()

		if forceInit {
			fmt.Printf("✓ Configuration reset at %s\n", configPath)
		} else {
			fmt.Printf("✓ Configuration initialized at %s\n", configPath)
		}

		return nil
	},
}

// runInitForm collects overrides interactively, pre-filled with defaults.
func runInitForm(cfg *config.Config) error {
	interpreters := strings.Join(cfg.Interpreters, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Module to probe").
				Description("Python import name checked by the probe").
				Value(&cfg.Module),
			huh.NewInput().
				Title("Distribution name").
				Description("Package metadata name used for the version fallback").
				Value(&cfg.Distribution),
			huh.NewInput().
				Title("Interpreter candidates").
				Description("Comma-separated binary names, tried in order").
				Value(&interpreters),
			huh.NewInput().
				Title("Timeout").
				Description("Overall probe timeout, e.g. 10s").
				Value(&cfg.Timeout),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("form aborted: %w", err)
	}

	cfg.Interpreters = cfg.Interpreters[:0]
	for _, name := range strings.Split(interpreters, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Interpreters = append(cfg.Interpreters, name)
		}
	}

	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite existing configuration")
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "write defaults without prompting")
	rootCmd.AddCommand(initCmd)
}
