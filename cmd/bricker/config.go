package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricker/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a new game would use, after the search
order, difficulty preset and brick overrides are applied. The output is a
valid config file.

Examples:
  bricker config > ~/.bricker/configs/bricker.yaml
  bricker config --difficulty hard
  bricker config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.GetDefaultYAML("bricker")))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
