package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "brandkit",
		Short:         "brandkit derives a complete design system from a brand color",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes human readable logs to w. Fallback notices only show up
// with --verbose.
func newLogger(flags *rootFlags, w io.Writer) *logger.Logger {
	level := "info"
	if flags != nil && flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w})
	if err != nil {
		return logger.Nop()
	}
	return log
}
