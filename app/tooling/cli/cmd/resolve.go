package cmd

import (
	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Reconcile the node's chain against its known peers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Message  string         `json:"message"`
			Chain    []ledger.Block `json:"chain,omitempty"`
			NewChain []ledger.Block `json:"new_chain,omitempty"`
		}
		if err := get("/nodes/resolve", &resp); err != nil {
			return err
		}

		chain := resp.Chain
		if resp.NewChain != nil {
			chain = resp.NewChain
		}

		pterm.Success.Println(resp.Message)
		pterm.Info.Printfln("chain height: %d", len(chain))
		return nil
	},
}
