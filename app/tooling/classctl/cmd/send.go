package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	sendAmount uint
	sendNote   string
)

// sendCmd represents the send command.
var sendCmd = &cobra.Command{
	Use:   "send <from> <to>",
	Short: "Move coins between two registered students",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		block, err := service().SendCoins(cmd.Context(), args[0], args[1], sendAmount, sendNote)
		if err != nil {
			return err
		}

		pterm.Success.Printfln("sent %d coins %s -> %s in block %d", sendAmount, args[0], args[1], block.Number)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().UintVarP(&sendAmount, "amount", "a", 1, "Number of coins to send.")
	sendCmd.Flags().StringVarP(&sendNote, "note", "n", "", "Note recorded with the transfer.")
}
