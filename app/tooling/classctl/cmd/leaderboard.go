package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// leaderboardCmd represents the leaderboard command.
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show every participant ordered by balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		standings, err := service().Leaderboard(cmd.Context())
		if err != nil {
			return err
		}

		data := pterm.TableData{{"Rank", "Account", "Balance"}}
		for i, standing := range standings {
			data = append(data, []string{
				pterm.Sprintf("%d", i+1),
				standing.Account,
				pterm.Sprintf("%d", standing.Balance),
			})
		}

		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}
