package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "wsrp-producer",
	Short: "Behavior backed WSRP test producer",
	Long: `wsrp-producer serves canned portlet behaviors over HTTP or NATS so that
WSRP consumers can be tested against a producer whose every answer is known.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (WSRP_* environment variables override it)")
}
