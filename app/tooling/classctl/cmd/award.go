package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var awardReason string

// awardCmd represents the award command.
var awardCmd = &cobra.Command{
	Use:   "award <student>",
	Short: "Issue one coin from the teacher to a student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		block, err := service().Award(cmd.Context(), args[0], awardReason)
		if err != nil {
			return err
		}

		pterm.Success.Printfln("awarded 1 coin to %s in block %d", args[0], block.Number)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(awardCmd)
	awardCmd.Flags().StringVarP(&awardReason, "reason", "r", "participation", "Reason recorded with the award.")
}
