package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/designsystem"
	"github.com/alexisbeaulieu97/brandkit/internal/export"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	"github.com/alexisbeaulieu97/brandkit/pkg/diff"
)

type generateOptions struct {
	ConfigPath string
	Format     string
	Output     string
	Check      bool
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a design system and export it",
		Long: fmt.Sprintf("Generate a design system from a configuration file and export it.\n\nSupported formats: %s",
			strings.Join(export.Formats(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file or directory (default stdout)")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Compare with the existing --output file instead of writing it")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts generateOptions) error {
	if err := validateConfigPath(opts.ConfigPath); err != nil {
		return newCommandError("generate", "checking configuration path", err, "Pass an existing YAML file with --config.")
	}

	if opts.Check && opts.Output == "" {
		return newCommandError("generate", "checking for drift", errors.New("--check needs --output"), "Point --output at the file to compare.")
	}

	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return newCommandError("generate", "selecting output format", err, "Use one of: "+strings.Join(export.Formats(), ", "))
	}

	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return newCommandError("generate", "loading configuration", err, "Run 'brandkit validate -c "+opts.ConfigPath+"' for details.")
	}

	log := newLogger(root, cmd.ErrOrStderr()).With("format", format.String())
	gen := designsystem.New(*cfg, designsystem.WithLogger(log))

	output, err := gen.Export(format)
	if err != nil {
		return newCommandError("generate", "rendering "+format.String(), err, "Check the base_color value in your configuration.")
	}

	if opts.Output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	path := outputPath(opts.Output, cfg.Slug(), format)
	if opts.Check {
		return checkDrift(cmd, log, path, output)
	}

	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return newCommandError("generate", "writing "+path, err, "Ensure the output directory exists and is writable.")
	}

	log.With("path", path).Info("design system written")
	return nil
}

// outputPath places the export inside target when target is a directory.
func outputPath(target, slug string, format export.Format) string {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, slug+"."+format.Extension())
	}
	return target
}

var errDrift = errors.New("generated output differs from the file on disk")

func checkDrift(cmd *cobra.Command, log *logger.Logger, path, output string) error {
	current, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.With("path", path).Warn("no existing export, comparing against an empty file")
	case err != nil:
		return newCommandError("generate", "reading "+path, err, "")
	}

	changes, stats := diff.Compare(current, []byte(output), path, "generated")
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), changes)
	return newCommandError("generate", fmt.Sprintf("checking %s (+%d -%d)", path, stats.Added, stats.Removed), errDrift, "Run the same command without --check to regenerate it.")
}
