/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/webman/pkg/buildinfo"
)

// newVersionCommand builds the version subcommand.
func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			extended, _ := cmd.Flags().GetBool("extended")
			fmt.Fprintf(cmd.OutOrStdout(), "webman %s\n", buildinfo.BinaryVersion)
			if extended {
				if mv := buildinfo.ModuleVersion(); mv != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "module version: %s\n", mv)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("extended", false, "Show extended build information")
	return cmd
}
