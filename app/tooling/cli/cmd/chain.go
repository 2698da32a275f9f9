package cmd

import (
	"fmt"
	"time"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chainCmd)
}

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the node's full chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		var doc struct {
			Chain  []ledger.Block `json:"chain"`
			Length int            `json:"length"`
		}
		if err := get("/chain", &doc); err != nil {
			return err
		}

		data := pterm.TableData{
			{"Index", "Time", "Txs", "Proof", "Previous Hash"},
		}

		for _, block := range doc.Chain {
			ts := time.Unix(int64(block.Timestamp), 0).UTC().Format(time.RFC3339)
			data = append(data, []string{
				fmt.Sprintf("%d", block.Index),
				ts,
				fmt.Sprintf("%d", len(block.Transactions)),
				fmt.Sprintf("%d", block.Proof),
				shorten(block.PrevHash),
			})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		pterm.Info.Printfln("chain length: %d", doc.Length)
		return nil
	},
}

// shorten keeps hashes readable in the table.
func shorten(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:8] + ".." + hash[len(hash)-8:]
}
