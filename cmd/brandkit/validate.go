package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/designsystem"
)

var (
	okLabel   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgHiRed, color.Bold).SprintFunc()
	dimText   = color.New(color.FgHiBlack).SprintfFunc()
)

func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Check a design system configuration without generating it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				configPath = args[0]
			}
			return runValidate(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	if err := validateConfigPath(path); err != nil {
		fmt.Fprintf(out, "%s %s\n", failLabel("FAIL"), path)
		return newCommandError("validate", "checking configuration path", err, "Pass the configuration file as an argument or with --config.")
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", failLabel("FAIL"), path)
		return newCommandError("validate", "validating "+path, err, "Fix the reported field and run validate again.")
	}

	if _, err := designsystem.Generate(*cfg); err != nil {
		fmt.Fprintf(out, "%s %s\n", failLabel("FAIL"), path)
		return newCommandError("validate", "generating "+path, err, "Check the base_color value.")
	}

	fmt.Fprintf(out, "%s %s\n", okLabel("OK"), path)
	fmt.Fprintln(out, dimText("  %s v%s · base %s", cfg.Name, cfg.DisplayVersion(), cfg.BaseColor))

	var notes []string
	if resolved := cfg.Sector.Resolve(); cfg.Sector != "" && resolved != cfg.Sector {
		notes = append(notes, fmt.Sprintf("sector %q is not recognised, %q will be used", cfg.Sector, resolved))
	}
	if cfg.Style != "" && !cfg.Style.Known() {
		notes = append(notes, fmt.Sprintf("style %q is not recognised, sector fonts and default ratios will be used", cfg.Style))
	}
	if resolved := cfg.BrandPersonality.Resolve(); cfg.BrandPersonality != "" && resolved != cfg.BrandPersonality {
		notes = append(notes, fmt.Sprintf("brand_personality %q is not recognised, %q will be used", cfg.BrandPersonality, resolved))
	}
	for _, note := range notes {
		fmt.Fprintln(out, dimText("  note: %s", note))
	}

	return nil
}
