/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/webman/pkg/inject"
	"github.com/fulmenhq/webman/pkg/logger"
	"github.com/fulmenhq/webman/pkg/render"
	"github.com/fulmenhq/webman/pkg/safeio"
)

// newInjectCommand builds the inject subcommand.
func newInjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Synchronize manifest link tags in page files",
		Long: `Inject walks the target directory and ensures every matching page
carries exactly one manifest link tag. Pages already carrying the canonical
tag are left untouched; failures are isolated per file.`,
		RunE: runInject,
	}

	cmd.Flags().String("dir", "", "Directory to scan (default: the configured output dir)")
	cmd.Flags().String("manifest-name", "", "Manifest filename to reference (default from config)")
	cmd.Flags().Bool("use-credentials", false, "Add crossorigin=\"use-credentials\" to the link tag")
	cmd.Flags().StringSlice("extensions", nil, "Page extensions to synchronize (default html,htm)")
	cmd.Flags().StringSlice("exclude", nil, "Glob patterns of pages to leave untouched")

	return cmd
}

func runInject(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	dir := settings.Output.Dir
	if cmd.Flags().Changed("dir") {
		dir, _ = cmd.Flags().GetString("dir")
	}
	dir, err = safeio.CleanUserPath(dir)
	if err != nil {
		return fmt.Errorf("invalid target directory: %w", err)
	}
	name := settings.Output.Filename
	if cmd.Flags().Changed("manifest-name") {
		name, _ = cmd.Flags().GetString("manifest-name")
	}
	if cmd.Flags().Changed("use-credentials") {
		settings.Inject.UseCredentials, _ = cmd.Flags().GetBool("use-credentials")
	}
	if cmd.Flags().Changed("extensions") {
		settings.Inject.Extensions, _ = cmd.Flags().GetStringSlice("extensions")
	}
	if cmd.Flags().Changed("exclude") {
		settings.Inject.Exclude, _ = cmd.Flags().GetStringSlice("exclude")
	}
	noOp, _ := cmd.Flags().GetBool("no-op")

	processor := inject.NewProcessor(inject.Options{
		ManifestName:   name,
		UseCredentials: settings.Inject.UseCredentials,
		Extensions:     settings.Inject.Extensions,
		Exclude:        settings.Inject.Exclude,
		NoOp:           noOp,
	})
	result := processor.ProcessDirectory(dir)

	for _, fe := range result.Errors {
		logger.Error("Page synchronization failed", logger.String("path", fe.Path), logger.String("reason", fe.Message))
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Table([]render.Row{
		{Label: "Pages injected", Value: strconv.Itoa(result.Injected)},
		{Label: "Pages skipped", Value: strconv.Itoa(result.Skipped)},
		{Label: "Page errors", Value: strconv.Itoa(len(result.Errors))},
	}))

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d page(s) failed during link synchronization", len(result.Errors))
	}
	return nil
}
