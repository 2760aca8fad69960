package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/erosscans/internal/config"

	"github.com/spf13/cobra"
)

var configResetCmd = &cobra.Command{
	Use:   "reset [label]",
	Short: "Reset the current (or given) config to default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = config.ConfigPathByLabel(args[0])
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("config %q does not exist", args[0])
			}
		} else {
			var err error
			if path, err = config.ActiveConfigPath(); err != nil {
				return fmt.Errorf("%w: run `erosscans config init` first", err)
			}
		}

		if err := config.SaveYAML(config.DefaultConfig(), path); err != nil {
			return err
		}

		fmt.Printf("Reset config: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
