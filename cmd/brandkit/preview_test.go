package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewCommand_NonInteractive(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	stdout, _, err := executeCommand("preview", "-c", path, "--no-tui")
	require.NoError(t, err)
	require.Contains(t, stdout, "Acme")
	require.Contains(t, stdout, "Typography")
	require.Contains(t, stdout, "Shadows")
}

func TestPreviewCommand_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand("preview", "--no-tui")
	require.Error(t, err)
}
