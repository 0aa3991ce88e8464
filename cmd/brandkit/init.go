package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
	"github.com/alexisbeaulieu97/brandkit/internal/config"
)

type initOptions struct {
	Output   string
	Defaults bool
	Force    bool
}

// askConfig is swapped in tests so the prompts never touch a terminal.
var askConfig = promptConfig

func newInitCmd() *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a design system configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "brandkit.yaml", "Where to write the configuration")
	cmd.Flags().BoolVarP(&opts.Defaults, "yes", "y", false, "Write the defaults without prompting")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, opts initOptions) error {
	if _, err := os.Stat(opts.Output); err == nil && !opts.Force {
		return newCommandError("init", "writing "+opts.Output, errors.New("file already exists"), "Pass --force to overwrite it.")
	}

	cfg := config.Default()
	if !opts.Defaults {
		answered, err := askConfig(cfg)
		if err != nil {
			return newCommandError("init", "collecting answers", err, "Run with --yes to write the defaults.")
		}
		cfg = answered
	}

	if err := config.ValidateConfig(&cfg); err != nil {
		return newCommandError("init", "validating answers", err, "")
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return newCommandError("init", "encoding configuration", err, "")
	}
	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return newCommandError("init", "writing "+opts.Output, err, "Ensure the directory exists and is writable.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okLabel("Created"), opts.Output)
	fmt.Fprintf(cmd.OutOrStdout(), "Next: brandkit generate -c %s -f css\n", opts.Output)
	return nil
}

func promptConfig(defaults config.DesignSystemConfig) (config.DesignSystemConfig, error) {
	answers := struct {
		Name        string
		Version     string
		Description string
		Sector      string
		Style       string
		BaseColor   string `survey:"base_color"`
		Personality string
	}{}

	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Design system name:", Default: defaults.Name},
			Validate: survey.Required,
		},
		{
			Name:   "version",
			Prompt: &survey.Input{Message: "Version:", Default: defaults.Version},
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: "Description (optional):"},
		},
		{
			Name:   "sector",
			Prompt: &survey.Select{Message: "Sector:", Options: names(config.Sectors), Default: string(defaults.Sector)},
		},
		{
			Name:   "style",
			Prompt: &survey.Select{Message: "Style:", Options: names(config.Styles), Default: string(defaults.Style)},
		},
		{
			Name:     "base_color",
			Prompt:   &survey.Input{Message: "Base color (#rrggbb):", Default: defaults.BaseColor},
			Validate: validateHexAnswer,
		},
		{
			Name:   "personality",
			Prompt: &survey.Select{Message: "Brand personality:", Options: names(config.Personalities), Default: string(defaults.BrandPersonality)},
		},
	}

	if err := survey.Ask(questions, &answers); err != nil {
		return config.DesignSystemConfig{}, err
	}

	return config.DesignSystemConfig{
		Name:             answers.Name,
		Version:          answers.Version,
		Description:      answers.Description,
		Sector:           config.Sector(answers.Sector),
		Style:            config.Style(answers.Style),
		BaseColor:        answers.BaseColor,
		BrandPersonality: config.Personality(answers.Personality),
	}, nil
}

func validateHexAnswer(answer interface{}) error {
	value, ok := answer.(string)
	if !ok || !color.IsHex(value) {
		return fmt.Errorf("%v is not a #rrggbb color", answer)
	}
	return nil
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
