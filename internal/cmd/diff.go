package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/archive"
	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/cmdutil"
	"github.com/wpforge/cli/internal/generator"
	"github.com/wpforge/cli/internal/output"
)

type diffFlags struct {
	dir    string
	assets bool
}

// NewDiffCmd creates the diff command.
func NewDiffCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var flags diffFlags

	cmd := &cobra.Command{
		Use:   "diff [file]",
		Short: "Compare a definition against a generated plugin directory",
		Long: `Regenerate the plugin in memory and compare it with an existing directory.

Files the definition would add, files present only in the directory, and
files whose content differs are listed; modified files show a line diff.
Nothing is written.

Examples:
  # Compare plugin.yaml with ./<slug>
  wpforge diff

  # Compare with a checkout elsewhere
  wpforge diff shelf.cue --dir ../wp-content/plugins/book-shelf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(args, &flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "Existing plugin directory (default: ./<slug>)")
	cmd.Flags().BoolVar(&flags.assets, "assets", false, "Include admin/public CSS and JS assets")

	return cmd
}

func runDiff(args []string, flags *diffFlags) error {
	cfg, set, err := cmdutil.Assemble(cmdutil.AssembleOpts{Args: args, Assets: flags.assets})
	if err != nil {
		return err
	}

	dir := flags.dir
	if dir == "" {
		dir = (&cmdutil.WriteFlags{}).Target(cfg.Basic.Slug, output.FormatDir)
	}

	existing, err := archive.ReadDir(dir)
	if err != nil {
		return cmdutil.Exit(err)
	}

	added, removed, modified := compareFiles(set, existing)
	output.Debug("diff computed",
		"dir", dir,
		"added", len(added),
		"removed", len(removed),
		"modified", len(modified),
	)

	styles := output.NoColorStyles()
	if output.IsTTY() {
		styles = output.GetStyles()
	}
	output.Println(output.RenderDiff(added, removed, modified, styles))
	return nil
}

// compareFiles splits the paths of generated and existing into added,
// removed and modified, each sorted by path.
func compareFiles(generated *generator.FileSet, existing map[string]string) ([]string, []string, []output.ModifiedItem) {
	var added []string
	var modified []output.ModifiedItem

	for _, path := range generated.SortedPaths() {
		want, _ := generated.Get(path)
		have, ok := existing[path]
		switch {
		case !ok:
			added = append(added, path)
		case have != want:
			modified = append(modified, output.ModifiedItem{
				Name: path,
				Diff: output.LineDiff(have, want),
			})
		}
	}

	var removed []string
	for path := range existing {
		if !generated.Has(path) {
			removed = append(removed, path)
		}
	}
	sort.Strings(removed)

	return added, removed, modified
}
