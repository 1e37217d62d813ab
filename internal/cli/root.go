// Package cli implements the resultctl command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resultctl",
		Short: "Look up and import examination results",
		Long: `resultctl queries the configured result source for a student's
examination result and loads semester spreadsheets into PostgreSQL.
Configuration is read from the environment and config/.env.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newLookupCommand(), newImportCommand())
	return cmd
}
