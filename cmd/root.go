package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagEnvFile      string

	// site/output
	flagBaseURL string
	flagFormat  string
	flagOutput  string

	// transport
	flagRPS              float64
	flagRetries          int
	flagTimeout          time.Duration
	flagCloudflareBypass bool

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
)

var rootCmd = &cobra.Command{
	Use:           "erosscans",
	Short:         "Browse ErosScans from the command line: details, chapters, pages, search and home shelves",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	pf.StringVar(&flagEnvFile, "env-file", "", "dotenv file with EROSSCANS_* overrides (default .env if present)")

	pf.StringVar(&flagBaseURL, "base-url", "", "site root, e.g. a mirror (default https://erosscans.xyz)")
	pf.StringVarP(&flagFormat, "format", "f", "", "output format: text, json or yaml")
	pf.StringVarP(&flagOutput, "output", "o", "", "write the result to this file instead of stdout")

	pf.Float64Var(&flagRPS, "rps", 0, "maximum requests per second to the site (0 keeps the config value)")
	pf.IntVar(&flagRetries, "retries", 0, "retries on 429/5xx and network errors (0 keeps the config value)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "per-request timeout")
	pf.BoolVar(&flagCloudflareBypass, "cloudflare-bypass", false, "wrap the transport with the Cloudflare bypass")

	pf.StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	pf.StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	pf.StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
