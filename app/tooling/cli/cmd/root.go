// Package cmd contains the operator commands for talking to a node.
package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var nodeURL string

func init() {
	rootCmd.PersistentFlags().StringVarP(&nodeURL, "node", "n", "http://localhost:8080", "URL of the node to talk to.")
}

var rootCmd = &cobra.Command{
	Use:   "minichain",
	Short: "Operate a ledger node",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
