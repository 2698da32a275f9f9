package cmd

import (
	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mineCmd)
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Run a mining attempt on the node",
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, _ := pterm.DefaultSpinner.Start("mining")

		var resp struct {
			Message      string      `json:"message"`
			Index        uint64      `json:"index"`
			Transactions []ledger.Tx `json:"transactions"`
			Proof        uint64      `json:"proof"`
			PrevHash     string      `json:"previous_hash"`
		}
		if err := get("/mine", &resp); err != nil {
			spinner.Fail(err.Error())
			return err
		}

		spinner.Success(resp.Message)
		pterm.Info.Printfln("block %d sealed with %d transactions, proof %d", resp.Index, len(resp.Transactions), resp.Proof)
		return nil
	},
}
