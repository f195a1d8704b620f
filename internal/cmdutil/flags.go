// Package cmdutil provides shared command utilities: flag groups, definition
// loading and assembly, and output formatting helpers.
package cmdutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/output"
)

// DefaultDefinitionFile is used when a command gets no file argument.
const DefaultDefinitionFile = "plugin.yaml"

// ResolveDefinitionPath returns the definition path from command args,
// defaulting to plugin.yaml in the current directory.
func ResolveDefinitionPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return DefaultDefinitionFile
}

// WriteFlags holds flags for commands that write plugin files
// (generate).
type WriteFlags struct {
	Format string
	Out    string
	Assets bool
	Force  bool
}

// AddTo registers the write flags on the given cobra command.
func (f *WriteFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Format, "format", string(output.FormatDir),
		"Output format: "+strings.Join(output.ValidGenerateFormats(), ", "))
	cmd.Flags().StringVar(&f.Out, "out", "",
		"Output path (default: ./<slug> or ./<slug>.zip)")
	cmd.Flags().BoolVar(&f.Assets, "assets", false,
		"Also emit admin/public CSS and JS assets")
	cmd.Flags().BoolVar(&f.Force, "force", false,
		"Overwrite an existing output")
}

// OutputFormat parses and checks --format.
func (f *WriteFlags) OutputFormat() (output.OutputFormat, error) {
	format := output.ParseOutputFormat(f.Format)
	if format != output.FormatDir && format != output.FormatZip {
		return "", fmt.Errorf("invalid format %q, valid formats: %s",
			f.Format, strings.Join(output.ValidGenerateFormats(), ", "))
	}
	return format, nil
}

// Target returns --out, or the default path for the plugin slug.
func (f *WriteFlags) Target(slug string, format output.OutputFormat) string {
	if f.Out != "" {
		return f.Out
	}
	if format == output.FormatZip {
		return filepath.Join(".", slug+".zip")
	}
	return filepath.Join(".", slug)
}

// DraftFlags holds the draft database flag (draft subcommands).
type DraftFlags struct {
	Path string
}

// AddTo registers the draft flags on the given cobra command.
func (f *DraftFlags) AddTo(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.Path, "drafts", "",
		"Path to the draft database (env: WPFORGE_DRAFTS_PATH)")
}
