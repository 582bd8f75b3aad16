package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would run with, after the config file
and the difficulty preset are applied. The output is valid YAML and can be
saved as ~/.dodger/configs/dodger.yaml to customize the game.

A saved file already carries the preset it was printed with, so play it
without --difficulty or the preset is applied twice.

Examples:
  dodger config
  dodger config --default > ~/.dodger/configs/dodger.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default config file, comments included")
}

func runConfig(cmd *cobra.Command, args []string) error {
	data, err := effectiveConfig(flagDefaultConfig)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// effectiveConfig renders the config the flags select.
func effectiveConfig(builtin bool) ([]byte, error) {
	if builtin {
		return config.DefaultYAML(), nil
	}

	setup, err := loadSetup(flagConfig, flagDifficulty)
	if err != nil {
		return nil, err
	}
	return config.Marshal(setup.Config)
}
