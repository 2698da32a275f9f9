package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	peersCmd.AddCommand(peersAddCmd)
	rootCmd.AddCommand(peersCmd)
}

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Manage the node's known peers",
}

var peersAddCmd = &cobra.Command{
	Use:   "add <address>...",
	Short: "Register one or more peer addresses with the node",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("at least one peer address is required")
		}

		doc := struct {
			Nodes []string `json:"nodes"`
		}{
			Nodes: args,
		}

		var resp struct {
			Message    string   `json:"message"`
			TotalNodes []string `json:"total_nodes"`
		}
		if err := post("/nodes/register", doc, &resp); err != nil {
			return err
		}

		pterm.Success.Println(resp.Message)
		for _, node := range resp.TotalNodes {
			pterm.Info.Println(node)
		}
		return nil
	},
}
