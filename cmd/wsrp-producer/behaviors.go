package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/telemetrytv/wsrp/behaviors"
)

var behaviorsCmd = &cobra.Command{
	Use:   "behaviors",
	Short: "List the behaviors the producer can install",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range behaviors.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(behaviorsCmd)
}
