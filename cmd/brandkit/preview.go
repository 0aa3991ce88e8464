package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/designsystem"
	"github.com/alexisbeaulieu97/brandkit/internal/tui"
)

type previewOptions struct {
	ConfigPath     string
	NonInteractive bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse a generated design system in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				opts.NonInteractive = true
			}
			return runPreview(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVar(&opts.NonInteractive, "no-tui", false, "Print every section instead of starting the interactive view")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts previewOptions) error {
	if err := validateConfigPath(opts.ConfigPath); err != nil {
		return newCommandError("preview", "checking configuration path", err, "Pass an existing YAML file with --config.")
	}

	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return newCommandError("preview", "loading configuration", err, "Run 'brandkit validate -c "+opts.ConfigPath+"' for details.")
	}

	ds, err := designsystem.New(*cfg, designsystem.WithLogger(newLogger(root, cmd.ErrOrStderr()))).Generate()
	if err != nil {
		return newCommandError("preview", "generating design system", err, "Check the base_color value in your configuration.")
	}

	state := tui.NewModel(ds, opts.NonInteractive)
	if opts.NonInteractive {
		_, err := fmt.Fprint(cmd.OutOrStdout(), state.View())
		return err
	}

	if _, err := tea.NewProgram(state, tea.WithAltScreen()).Run(); err != nil {
		return newCommandError("preview", "running the terminal interface", err, "Retry with --no-tui.")
	}
	return nil
}
