package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for consistency",
	Long:  `Loads and compiles the catalog, crawls the menu from the root and reports missing fields, duplicates or unreachable nodes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context(), cmd)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		defer a.close()

		stats, err := a.bot.Validate()
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog is valid: %d exchanges, %d stocks ✅\n", stats.Exchanges, stats.Stocks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
