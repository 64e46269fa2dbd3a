/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/webman/pkg/exitcode"
	"github.com/fulmenhq/webman/pkg/logger"
	"github.com/fulmenhq/webman/pkg/manifest"
	"github.com/fulmenhq/webman/pkg/safeio"
)

// newValidateCommand builds the validate subcommand.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest-file>",
		Short: "Validate an existing manifest document",
		Long: `Validate checks a manifest JSON document against the manifest schema
and reports the same advisory findings the generator emits. Schema
violations fail the command; advisory findings are logged only.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := safeio.CleanUserPath(args[0])
	if err != nil {
		return fmt.Errorf("invalid manifest path %q: %w", args[0], err)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path has been cleaned above
	if err != nil {
		return exitWithCode(exitcode.FileSystemError, fmt.Errorf("failed to read %s: %w", path, err))
	}

	validator := manifest.NewValidator()

	schemaResult, err := validator.ValidateSchema(data)
	if err != nil {
		return err
	}
	for _, finding := range schemaResult.Errors {
		logger.Error("Schema violation", logger.String("finding", finding))
	}

	var doc manifest.Manifest
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s is not a manifest document: %w", path, err)
	}
	advisory := validator.Validate(doc)
	for _, finding := range advisory.Errors {
		logger.Warn("Advisory finding", logger.String("finding", finding))
	}
	for _, warning := range advisory.Warnings {
		logger.Warn("Advisory", logger.String("advisory", warning))
	}

	if !schemaResult.IsValid {
		return exitWithCode(exitcode.ValidationError,
			fmt.Errorf("%s violates the manifest schema (%d finding(s))", path, len(schemaResult.Errors)))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d advisory finding(s))\n", path, len(advisory.Errors))
	return nil
}
