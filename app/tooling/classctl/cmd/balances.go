package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// balancesCmd represents the balances command.
var balancesCmd = &cobra.Command{
	Use:   "balances [account]",
	Short: "Show coin balances, for everyone or one account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			balance, err := service().Balance(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			pterm.Info.Printfln("%s holds %d coins", balance.Account, balance.Balance)
			return nil
		}

		balances, err := service().Balances(cmd.Context())
		if err != nil {
			return err
		}

		data := pterm.TableData{{"Account", "Balance"}}
		for _, balance := range balances {
			data = append(data, []string{balance.Account, pterm.Sprintf("%d", balance.Balance)})
		}

		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}
