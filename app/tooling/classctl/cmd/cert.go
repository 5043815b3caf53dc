package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// certCmd represents the cert command.
var certCmd = &cobra.Command{
	Use:   "cert <student> <course>",
	Short: "Stage a certificate for the next mined block",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, err := service().AddCertificate(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		pterm.Success.Printfln("certificate staged for %s (%s), %d pending", args[0], args[1], pending)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(certCmd)
}
