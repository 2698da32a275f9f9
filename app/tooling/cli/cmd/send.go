package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	sendFrom   string
	sendTo     string
	sendAmount int
)

func init() {
	sendCmd.Flags().StringVarP(&sendFrom, "from", "f", "", "Sender address.")
	sendCmd.Flags().StringVarP(&sendTo, "to", "t", "", "Recipient address.")
	sendCmd.Flags().IntVarP(&sendAmount, "amount", "a", 0, "Amount to transfer.")
	sendCmd.MarkFlagRequired("from")
	sendCmd.MarkFlagRequired("to")
	sendCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transaction to the pending pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		tx := struct {
			Sender    string `json:"sender"`
			Recipient string `json:"recipient"`
			Amount    int    `json:"amount"`
		}{
			Sender:    sendFrom,
			Recipient: sendTo,
			Amount:    sendAmount,
		}

		var resp struct {
			Message string `json:"message"`
		}
		if err := post("/transactions/new", tx, &resp); err != nil {
			return err
		}

		pterm.Success.Println(resp.Message)
		return nil
	},
}
