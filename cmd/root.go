package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	servecmd "github.com/Alijeyrad/fibersentry/cmd/serve"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "fibersentry",
	Short: "Request-scoped Sentry reporting for Fiber services.",
	Long: `fibersentry bridges Fiber's request lifecycle to the Sentry SDK.
Every request gets an isolated reporting scope carrying its URL, headers,
query string and user identity; errors and messages captured during the
request inherit that scope and never leak into another request's events.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(servecmd.NewServeCommand())
}
