package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/testutil"
)

func setupPreview(t *testing.T) {
	t.Helper()
	work := testutil.IsolateHome(t)
	testutil.WriteFile(t, work, "plugin.yaml", testutil.DemoDefinition)
}

func TestPreview_Tree(t *testing.T) {
	setupPreview(t)

	out, err := executeCommand(t, "preview")
	require.NoError(t, err)
	assert.Contains(t, out, "demo-plugin")
	assert.Contains(t, out, "class-demo-plugin-loader.php")
	assert.Contains(t, out, "files,")
	assert.Contains(t, out, "sha256:")
}

func TestPreview_Mapping(t *testing.T) {
	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{format: "json", unmarshal: json.Unmarshal},
		{format: "yaml", unmarshal: func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			setupPreview(t)

			out, err := executeCommand(t, "preview", "-o", tt.format)
			require.NoError(t, err)

			var files map[string]string
			require.NoError(t, tt.unmarshal([]byte(out), &files))
			assert.Contains(t, files["demo-plugin.php"], "Plugin Name: Demo Plugin")
			assert.Contains(t, files, "readme.txt")
		})
	}
}

func TestPreview_SingleFile(t *testing.T) {
	setupPreview(t)

	out, err := executeCommand(t, "preview", "plugin.yaml", "/includes/index.php")
	require.NoError(t, err)
	assert.Contains(t, out, "<?php")

	_, err = executeCommand(t, "preview", "plugin.yaml", "missing.php")
	requireExitCode(t, err, oerrors.ExitNotFound)
}

func TestPreview_InvalidFormat(t *testing.T) {
	setupPreview(t)

	_, err := executeCommand(t, "preview", "-o", "zip")
	requireExitCode(t, err, oerrors.ExitGeneralError)
}
