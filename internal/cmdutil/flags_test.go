package cmdutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpforge/cli/internal/output"
)

func TestResolveDefinitionPath(t *testing.T) {
	assert.Equal(t, "plugin.yaml", ResolveDefinitionPath(nil))
	assert.Equal(t, "plugin.yaml", ResolveDefinitionPath([]string{""}))
	assert.Equal(t, "my.cue", ResolveDefinitionPath([]string{"my.cue", "extra"}))
}

func TestWriteFlags_AddTo(t *testing.T) {
	var wf WriteFlags
	cmd := &cobra.Command{Use: "test"}
	wf.AddTo(cmd)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "dir", formatFlag.DefValue)

	outFlag := cmd.Flags().Lookup("out")
	require.NotNil(t, outFlag)
	assert.Equal(t, "", outFlag.DefValue)

	assetsFlag := cmd.Flags().Lookup("assets")
	require.NotNil(t, assetsFlag)
	assert.Equal(t, "bool", assetsFlag.Value.Type())

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag)
	assert.Equal(t, "false", forceFlag.DefValue)
}

func TestWriteFlags_OutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    output.OutputFormat
		wantErr bool
	}{
		{format: "dir", want: output.FormatDir},
		{format: "directory", want: output.FormatDir},
		{format: "ZIP", want: output.FormatZip},
		{format: "json", wantErr: true},
		{format: "tar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			wf := WriteFlags{Format: tt.format}
			got, err := wf.OutputFormat()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid formats: dir, zip")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteFlags_Target(t *testing.T) {
	wf := WriteFlags{}
	assert.Equal(t, filepath.Join(".", "demo"), wf.Target("demo", output.FormatDir))
	assert.Equal(t, filepath.Join(".", "demo.zip"), wf.Target("demo", output.FormatZip))

	wf.Out = "/tmp/elsewhere"
	assert.Equal(t, "/tmp/elsewhere", wf.Target("demo", output.FormatZip))
}

func TestDraftFlags_AddTo(t *testing.T) {
	var df DraftFlags
	cmd := &cobra.Command{Use: "test"}
	df.AddTo(cmd)

	draftsFlag := cmd.PersistentFlags().Lookup("drafts")
	require.NotNil(t, draftsFlag)
	assert.Equal(t, "", draftsFlag.DefValue)
}
