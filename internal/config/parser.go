package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a design system configuration from disk and validates it.
func ParseConfig(path string) (*DesignSystemConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, brandkiterrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates an in-memory YAML document. source is only used
// to label errors.
func Parse(data []byte, source string) (*DesignSystemConfig, error) {
	var cfg DesignSystemConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, brandkiterrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders cfg as the YAML document ParseConfig accepts.
func Marshal(cfg DesignSystemConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
