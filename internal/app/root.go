// Package app implements the loanboard commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loanboard",
	Short: "Loanboard is the content API behind the loan comparison site",
	Long: `Loanboard serves loan listings, categories, commodity prices and apply-now
settings, with an admin API guarded by bearer tokens.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
