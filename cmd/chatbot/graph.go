package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the menu as a Mermaid diagram",
	Long:  `Compiles the catalog and outputs a Mermaid diagram (graph TD) of the exchanges and their stocks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.close()
		fmt.Fprint(cmd.OutOrStdout(), a.bot.Graph())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
