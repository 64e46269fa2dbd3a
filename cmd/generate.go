/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fulmenhq/webman/pkg/assets"
	"github.com/fulmenhq/webman/pkg/browserconfig"
	"github.com/fulmenhq/webman/pkg/config"
	"github.com/fulmenhq/webman/pkg/exitcode"
	"github.com/fulmenhq/webman/pkg/inject"
	"github.com/fulmenhq/webman/pkg/logger"
	"github.com/fulmenhq/webman/pkg/manifest"
	"github.com/fulmenhq/webman/pkg/render"
	"github.com/fulmenhq/webman/pkg/safeio"
)

// newGenerateCommand builds the generate subcommand.
func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assemble the manifest, write it, and synchronize page links",
		Long: `Generate assembles the web app manifest from configuration, reports
advisory validation findings and missing icon assets, writes the document
to the output directory, and updates every matching page to reference it.`,
		RunE: runGenerate,
	}

	cmd.Flags().String("manifest-config", "", "Standalone manifest config file (.yaml, .toml, or .json)")
	cmd.Flags().String("out-dir", "", "Output directory (default from config)")
	cmd.Flags().String("filename", "", "Manifest filename (default from config)")
	cmd.Flags().Bool("use-credentials", false, "Add crossorigin=\"use-credentials\" to the link tag")
	cmd.Flags().StringSlice("extensions", nil, "Page extensions to synchronize (default html,htm)")
	cmd.Flags().StringSlice("exclude", nil, "Glob patterns of pages to leave untouched")
	cmd.Flags().Bool("browserconfig", false, "Also write browserconfig.xml")
	cmd.Flags().Bool("strict-assets", false, "Fail when a referenced icon file is missing")
	cmd.Flags().Bool("skip-inject", false, "Write the manifest without touching pages")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if err := applyManifestConfigFlag(cmd, settings); err != nil {
		return err
	}
	applyGenerateFlags(cmd, settings)
	noOp, _ := cmd.Flags().GetBool("no-op")
	skipInject, _ := cmd.Flags().GetBool("skip-inject")

	// Config supplies the strict-assets policy; the flag overrides it.
	strictAssets := settings.Assets.Strict
	if cmd.Flags().Changed("strict-assets") {
		strictAssets, _ = cmd.Flags().GetBool("strict-assets")
	}

	outDir, err := safeio.CleanUserPath(settings.Output.Dir)
	if err != nil {
		return fmt.Errorf("invalid output directory %q: %w", settings.Output.Dir, err)
	}
	filename := settings.Output.Filename

	assembler := manifest.NewAssembler()
	doc := assembler.Assemble(settings.Manifest)

	validation := manifest.NewValidator().Validate(doc)
	for _, finding := range validation.Errors {
		logger.Warn("Manifest validation finding", logger.String("finding", finding))
	}
	for _, warning := range validation.Warnings {
		logger.Warn("Manifest advisory", logger.String("advisory", warning))
	}

	assetBase := settings.Assets.BaseDir
	if assetBase == "" {
		assetBase = outDir
	}
	check := assets.NewChecker().Check(doc.Icons, assetBase, "")
	for _, missing := range check.Missing {
		logger.Warn("Referenced icon file not found",
			logger.String("src", missing.Src),
			logger.String("path", missing.ResolvedPath))
	}
	if strictAssets && !check.Valid {
		return exitWithCode(exitcode.AssetError,
			fmt.Errorf("%d referenced icon file(s) missing under %s", len(check.Missing), assetBase))
	}

	data, err := manifest.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}

	manifestPath := filepath.Join(outDir, filename)
	if noOp {
		logger.Info("Would write manifest", logger.String("path", manifestPath))
	} else {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return exitWithCode(exitcode.FileSystemError,
				fmt.Errorf("failed to create output directory %s: %w", outDir, err))
		}
		if err := safeio.WriteFilePreservePerms(manifestPath, data); err != nil {
			return exitWithCode(exitcode.FileSystemError, fmt.Errorf("failed to write manifest: %w", err))
		}
		logger.Info("Wrote manifest", logger.String("path", manifestPath))
	}

	if settings.Output.BrowserConfig {
		bcData, err := browserconfig.Generate(doc.Icons, doc.ThemeColor)
		if err != nil {
			return fmt.Errorf("failed to build browserconfig.xml: %w", err)
		}
		bcPath := filepath.Join(outDir, "browserconfig.xml")
		if noOp {
			logger.Info("Would write browserconfig", logger.String("path", bcPath))
		} else if err := safeio.WriteFilePreservePerms(bcPath, bcData); err != nil {
			return exitWithCode(exitcode.FileSystemError, fmt.Errorf("failed to write browserconfig.xml: %w", err))
		}
	}

	var result inject.Result
	if settings.Inject.Enabled && !skipInject {
		processor := inject.NewProcessor(inject.Options{
			ManifestName:   filename,
			UseCredentials: settings.Inject.UseCredentials,
			Extensions:     settings.Inject.Extensions,
			Exclude:        settings.Inject.Exclude,
			NoOp:           noOp,
		})
		result = processor.ProcessDirectory(outDir)
		for _, fe := range result.Errors {
			logger.Error("Page synchronization failed", logger.String("path", fe.Path), logger.String("reason", fe.Message))
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Table([]render.Row{
		{Label: "Manifest", Value: manifestPath},
		{Label: "Icons checked", Value: strconv.Itoa(check.Checked)},
		{Label: "Icons missing", Value: strconv.Itoa(len(check.Missing))},
		{Label: "Pages injected", Value: strconv.Itoa(result.Injected)},
		{Label: "Pages skipped", Value: strconv.Itoa(result.Skipped)},
		{Label: "Page errors", Value: strconv.Itoa(len(result.Errors))},
	}))

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d page(s) failed during link synchronization", len(result.Errors))
	}
	return nil
}

// applyManifestConfigFlag replaces the manifest section with a standalone
// manifest config document when --manifest-config is set.
func applyManifestConfigFlag(cmd *cobra.Command, settings *config.Settings) error {
	path, _ := cmd.Flags().GetString("manifest-config")
	if path == "" {
		return nil
	}
	cleaned, err := safeio.CleanUserPath(path)
	if err != nil {
		return fmt.Errorf("invalid manifest config path %q: %w", path, err)
	}
	mc, err := config.LoadManifestConfig(cleaned)
	if err != nil {
		if errors.Is(err, config.ErrUnsupportedFormat) {
			return exitWithCode(exitcode.UnsupportedFormat, err)
		}
		return exitWithCode(exitcode.ConfigError, err)
	}
	settings.Manifest = mc
	return nil
}

func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	settings, err := config.Load(path)
	if err != nil {
		// An explicitly named config file must load; the implicit project
		// file is optional and falls back to defaults.
		if path != "" {
			return nil, err
		}
		logger.Debug("Using built-in defaults", logger.Err(err))
		settings = config.Default()
	}
	return settings, nil
}

func applyGenerateFlags(cmd *cobra.Command, settings *config.Settings) {
	if cmd.Flags().Changed("out-dir") {
		settings.Output.Dir, _ = cmd.Flags().GetString("out-dir")
	}
	if cmd.Flags().Changed("filename") {
		settings.Output.Filename, _ = cmd.Flags().GetString("filename")
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
	if cmd.Flags().Changed("browserconfig") {
		settings.Output.BrowserConfig, _ = cmd.Flags().GetBool("browserconfig")
	}
}
