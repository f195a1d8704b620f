package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/archive"
	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/cmdutil"
	"github.com/wpforge/cli/internal/generator"
	"github.com/wpforge/cli/internal/output"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.WriteFlags

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate the plugin source tree",
		Long: `Validate a plugin definition and write the generated plugin.

The dir format writes the files into --out (default ./<slug>). The zip format
writes an archive whose entries sit under <slug>/ (default ./<slug>.zip).
Existing output is only replaced with --force; files already in the target
directory that the generator does not emit are left alone.

Examples:
  # Generate ./book-shelf from plugin.yaml
  wpforge generate

  # Package with CSS/JS assets
  wpforge generate shelf.cue --format zip --assets`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c.Context(), args, &flags)
		},
	}

	flags.AddTo(cmd)

	return cmd
}

func runGenerate(ctx context.Context, args []string, flags *cmdutil.WriteFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := flags.OutputFormat()
	if err != nil {
		return cmdutil.Exitf("%w", err)
	}

	cfg, set, err := cmdutil.Assemble(cmdutil.AssembleOpts{Args: args, Assets: flags.Assets})
	if err != nil {
		return err
	}

	slug := cfg.Basic.Slug
	target := flags.Target(slug, format)
	log := output.PluginLogger(slug)

	// Overwriting an existing directory reports what changed per file.
	var existing map[string]string
	if format == output.FormatDir && flags.Force {
		existing, err = archive.ReadDir(target)
		if err != nil {
			output.Debug("no existing plugin directory", "dir", target, "error", err)
			existing = nil
		}
	}

	err = output.RunWithSpinner(ctx, func() error {
		if format == output.FormatZip {
			return archive.WriteZipFile(target, slug, set, flags.Force)
		}
		_, err := archive.WriteDir(target, set, flags.Force)
		return err
	}, output.WithTitle(fmt.Sprintf("Writing %s", target)))
	if err != nil {
		return cmdutil.Exit(err)
	}

	log.Info("generated",
		"format", format,
		"files", set.Len(),
		"size", output.HumanSize(set.Size()),
		"digest", set.Digest(),
	)

	if existing != nil {
		for _, f := range set.Files() {
			output.Println(output.FormatFileLine(f.Path, fileStatus(existing, f)))
		}
	} else {
		output.Println(cmdutil.FileTree(slug, set))
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("Wrote %d files to %s", set.Len(), target)))
	return nil
}

// fileStatus compares a generated file with the content previously on disk.
func fileStatus(existing map[string]string, f generator.File) string {
	have, ok := existing[f.Path]
	switch {
	case !ok:
		return output.StatusCreated
	case have != f.Content:
		return output.StatusModified
	default:
		return output.StatusUnchanged
	}
}
