package cmd

import (
	"fmt"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pendingCmd)
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Print the transactions waiting for the next block",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Transactions []ledger.Tx `json:"transactions"`
			Count        int         `json:"count"`
		}
		if err := get("/transactions/pending", &resp); err != nil {
			return err
		}

		data := pterm.TableData{
			{"Sender", "Recipient", "Amount"},
		}
		for _, tx := range resp.Transactions {
			data = append(data, []string{
				tx.Sender,
				tx.Recipient,
				fmt.Sprintf("%d", tx.Amount),
			})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		pterm.Info.Printfln("pending transactions: %d", resp.Count)
		return nil
	},
}
