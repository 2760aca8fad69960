package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/erosscans/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective config, or manage the config profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			EnvFile:      flagEnvFile,
			Debug:        flagDebug,
			BaseURL:      flagBaseURL,
			Format:       flagFormat,
			UserAgent:    flagUserAgent,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Loaded config from:\n  %s\n\n", strings.TrimSpace(used))
		cfg.Print(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
