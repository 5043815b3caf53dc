// Package cmd contains the classctl commands for driving a classroom
// service from the terminal.
package cmd

import (
	"os"

	"github.com/AryaStark201/last-classroom/foundation/client"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "classctl",
	Short: "Control a classroom ledger service",
	Long:  "classctl registers students, stages and mines certificates, moves coins, and inspects the chain of a running classroom service.",
}

// Execute runs the root command and exits non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("url", "http://localhost:8080", "Base URL of the classroom service.")

	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	viper.SetEnvPrefix("classctl")
	viper.AutomaticEnv()
}

// service constructs a client against the configured service url.
func service() *client.Client {
	return client.New(viper.GetString("url"))
}
