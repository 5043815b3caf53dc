package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// chainCmd represents the chain command.
var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Show every block in the chain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := service().Chain(cmd.Context())
		if err != nil {
			return err
		}

		data := pterm.TableData{{"Block", "Records", "Nonce", "Prev Hash", "Hash"}}
		for _, block := range blocks {
			data = append(data, []string{
				pterm.Sprintf("%d", block.Number),
				pterm.Sprintf("%d", len(block.Records)),
				pterm.Sprintf("%d", block.Nonce),
				short(block.PrevHash),
				short(block.Hash),
			})
		}

		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

// short trims a hash down to something a table column can carry.
func short(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12] + "..."
}

func init() {
	rootCmd.AddCommand(chainCmd)
}
