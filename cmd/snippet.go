/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/webman/pkg/logger"
	"github.com/fulmenhq/webman/pkg/manifest"
	"github.com/fulmenhq/webman/pkg/safeio"
	"github.com/fulmenhq/webman/pkg/snippet"
)

// newSnippetCommand builds the snippet subcommand.
func newSnippetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Print the recommended head markup for the manifest",
		Long: `Snippet assembles the manifest from configuration and renders the
head markup a page should carry: the manifest link, theme-color meta,
and apple-touch-icon links.`,
		RunE: runSnippet,
	}

	cmd.Flags().String("manifest-config", "", "Standalone manifest config file (.yaml, .toml, or .json)")
	cmd.Flags().String("out", "", "Write the snippet to a file instead of stdout")
	cmd.Flags().Bool("use-credentials", false, "Add crossorigin=\"use-credentials\" to the link tag")

	return cmd
}

func runSnippet(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyManifestConfigFlag(cmd, settings); err != nil {
		return err
	}
	useCredentials := settings.Inject.UseCredentials
	if cmd.Flags().Changed("use-credentials") {
		useCredentials, _ = cmd.Flags().GetBool("use-credentials")
	}

	doc := manifest.NewAssembler().Assemble(settings.Manifest)
	out, err := snippet.Render(doc, settings.Output.Filename, useCredentials)
	if err != nil {
		return fmt.Errorf("failed to render snippet: %w", err)
	}

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		path, err = safeio.CleanUserPath(path)
		if err != nil {
			return fmt.Errorf("invalid snippet output path: %w", err)
		}
		if err := safeio.WriteFilePreservePerms(path, []byte(out)); err != nil {
			return fmt.Errorf("failed to write snippet: %w", err)
		}
		logger.Info("Wrote snippet", logger.String("path", path))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
