package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// registerCmd represents the register command.
var registerCmd = &cobra.Command{
	Use:   "register <student>",
	Short: "Register a student with the classroom",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		added, err := service().RegisterStudent(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if !added {
			pterm.Warning.Printfln("%s is already registered", args[0])
			return nil
		}

		pterm.Success.Printfln("registered %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
