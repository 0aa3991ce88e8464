package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
	"github.com/alexisbeaulieu97/brandkit/internal/palette"
	"github.com/alexisbeaulieu97/brandkit/internal/tui"
)

type paletteOptions struct {
	Sector     string
	JSONOutput bool
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	opts := paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette <hex>",
		Short: "Print the color palette derived from a base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Sector, "sector", "s", string(config.SectorTech), "Sector used for semantic colors")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json", false, "Output the palette as JSON")

	return cmd
}

func runPalette(cmd *cobra.Command, root *rootFlags, base string, opts paletteOptions) error {
	sector := config.Sector(opts.Sector)
	if resolved := sector.Resolve(); resolved != sector {
		newLogger(root, cmd.ErrOrStderr()).Fallback("sector", opts.Sector, string(resolved))
	}

	colors, err := palette.Generate(base, sector)
	if err != nil {
		return newCommandError("palette", fmt.Sprintf("deriving colors from %q", base), err, "Pass a six digit hex color such as #3b82f6.")
	}

	if opts.JSONOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(colors)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPalette(&model.DesignSystem{Colors: colors}))
	return err
}
