package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// mineCmd represents the mine command.
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the staged certificates into a new block",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, _ := pterm.DefaultSpinner.Start("mining")

		block, mined, err := service().Mine(cmd.Context())
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}

		if !mined {
			spinner.Warning("no pending records to mine")
			return nil
		}

		spinner.Success(pterm.Sprintf("mined block %d with %d records, hash %s", block.Number, len(block.Records), block.Hash))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mineCmd)
}
