package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

func TestGenerateCommand_JSONToStdout(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	stdout, _, err := executeCommand("generate", "-c", path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Contains(t, decoded, "colors")
	require.Contains(t, decoded, "tokens")
}

func TestGenerateCommand_CSSToDirectory(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	dir := t.TempDir()

	stdout, _, err := executeCommand("generate", "-c", path, "-f", "css", "-o", dir)
	require.NoError(t, err)
	require.Empty(t, stdout)

	data, err := os.ReadFile(filepath.Join(dir, "acme.css"))
	require.NoError(t, err)
	require.Contains(t, string(data), ":root {")
	require.Contains(t, string(data), "--color-primary: #3b82f6;")
}

func TestGenerateCommand_FigmaToFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	target := filepath.Join(t.TempDir(), "tokens.json")

	_, stderr, err := executeCommand("generate", "-c", path, "-f", "figma-tokens", "-o", target)
	require.NoError(t, err)
	require.Contains(t, stderr, "design system written")
	require.Contains(t, stderr, "figma-tokens")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(data), `"global"`)
}

func TestGenerateCommand_UnknownFormat(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	_, _, err := executeCommand("generate", "-c", path, "-f", "xml")
	require.Error(t, err)
	require.ErrorIs(t, err, brandkiterrors.ErrUnsupportedFormat)
	require.Contains(t, err.Error(), "Suggestion")
}

func TestGenerateCommand_InvalidBaseColor(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "name: Acme\nversion: \"1.0\"\nbase_color: \"blue\"\n")
	_, _, err := executeCommand("generate", "-c", path)
	require.Error(t, err)

	var validationErr *brandkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "base_color", validationErr.Field)
}

func TestGenerateCommand_MissingConfig(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand("generate", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestGenerateCommand_VerboseLogsFallbacks(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "name: Acme\nversion: \"1.0\"\nsector: space\nbase_color: \"#3b82f6\"\n")
	_, stderr, err := executeCommand("generate", "-v", "-c", path, "-f", "scss")
	require.NoError(t, err)
	require.Contains(t, stderr, "space")
}

func TestGenerateCommand_CheckDetectsDrift(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	target := filepath.Join(t.TempDir(), "tokens.scss")

	_, stderr, err := executeCommand("generate", "-c", path, "-f", "scss", "--check", "-o", target)
	require.ErrorIs(t, err, errDrift)
	require.Contains(t, stderr, "no existing export")

	_, _, err = executeCommand("generate", "-c", path, "-f", "scss", "-o", target)
	require.NoError(t, err)

	stdout, _, err := executeCommand("generate", "-c", path, "-f", "scss", "--check", "-o", target)
	require.NoError(t, err)
	require.Contains(t, stdout, "up to date")

	changed := writeConfig(t, strings.Replace(sampleConfig, "#3b82f6", "#0f766e", 1))
	stdout, _, err = executeCommand("generate", "-c", changed, "-f", "scss", "--check", "-o", target)
	require.ErrorIs(t, err, errDrift)
	require.Contains(t, stdout, "-$primary: #3b82f6;")
	require.Contains(t, stdout, "+$primary: #0f766e;")
}

func TestGenerateCommand_CheckNeedsOutput(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	_, _, err := executeCommand("generate", "-c", path, "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--output")
}
