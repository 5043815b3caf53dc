package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify <student>",
	Short: "Look up every certificate issued to a student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proofs, err := service().VerifyCertificate(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(proofs) == 0 {
			pterm.Warning.Printfln("no certificates found for %s", args[0])
			return nil
		}

		data := pterm.TableData{{"Block", "Student", "Course"}}
		for _, proof := range proofs {
			data = append(data, []string{
				pterm.Sprintf("%d", proof.BlockNumber),
				proof.Certificate.Student,
				proof.Certificate.Course,
			})
		}

		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
