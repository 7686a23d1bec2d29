package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would use, as YAML.

Config search order:
  --config path
  ~/.match3/configs/match3.yaml
  ./configs/match3.yaml
  built-in defaults

The --difficulty flag is applied on top of the loaded file.`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, src, err := loadConfig()
	if err != nil {
		fail(err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fail(err)
	}
	fmt.Printf("# source: %s\n", src)
	fmt.Print(string(data))
}
