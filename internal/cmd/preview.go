package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/cmdutil"
	"github.com/wpforge/cli/internal/generator"
	"github.com/wpforge/cli/internal/output"
)

type previewFlags struct {
	output string
	assets bool
}

// NewPreviewCmd creates the preview command.
func NewPreviewCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var flags previewFlags

	cmd := &cobra.Command{
		Use:   "preview [file] [path]",
		Short: "Show the generated files without writing them",
		Long: `Show what generate would write, without touching the filesystem.

Without a path, the file tree is printed (-o tree) or the whole file set as a
path to content mapping (-o json, -o yaml). With a path, that one file's
content is printed.

Examples:
  # File tree of plugin.yaml
  wpforge preview

  # Main plugin file
  wpforge preview plugin.yaml book-shelf.php

  # Everything as JSON
  wpforge preview plugin.yaml -o json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runPreview(args, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", string(output.FormatTree),
		"Output format: "+strings.Join(output.ValidPreviewFormats(), ", "))
	cmd.Flags().BoolVar(&flags.assets, "assets", false, "Include admin/public CSS and JS assets")

	return cmd
}

func runPreview(args []string, flags *previewFlags) error {
	format := output.ParseOutputFormat(flags.output)
	switch format {
	case output.FormatTree, output.FormatJSON, output.FormatYAML:
	default:
		return cmdutil.Exitf("invalid output format %q, valid formats: %s",
			flags.output, strings.Join(output.ValidPreviewFormats(), ", "))
	}

	cfg, set, err := cmdutil.Assemble(cmdutil.AssembleOpts{Args: args, Assets: flags.assets})
	if err != nil {
		return err
	}

	if len(args) == 2 {
		return previewFile(set, args[1])
	}

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(set.Map(), "", "  ")
		if err != nil {
			return cmdutil.Exitf("encoding JSON: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(set.Map())
		if err != nil {
			return cmdutil.Exitf("encoding YAML: %w", err)
		}
		output.Print(string(data))
	default:
		output.Println(cmdutil.FileTree(cfg.Basic.Slug, set))
		output.Println(fmt.Sprintf("%d files, %s, %s", set.Len(), output.HumanSize(set.Size()), set.Digest()))
	}
	return nil
}

func previewFile(set *generator.FileSet, path string) error {
	path = strings.TrimPrefix(path, "/")

	content, ok := set.Get(path)
	if !ok {
		return cmdutil.NotFound(
			fmt.Sprintf("%s is not generated for this definition", path),
			path,
			"Run 'wpforge preview' to list the generated paths",
		)
	}

	output.Print(content)
	return nil
}
