package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/cmdutil"
	"github.com/wpforge/cli/internal/definition"
	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/naming"
	"github.com/wpforge/cli/internal/output"
	"github.com/wpforge/cli/internal/plugin"
)

type initFlags struct {
	name        string
	slug        string
	description string
	enable      []string
	force       bool
}

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter plugin definition",
		Long: `Write a starter plugin definition.

The format follows the file extension (.yaml, .yml, .json or .cue); the
default file is plugin.yaml. Author, license and required versions come from
the defaults section of the CLI configuration. Every enabled feature gets one
example entry.

Features: ` + featureNames() + `

Examples:
  # Create plugin.yaml for "Book Shelf"
  wpforge init --name "Book Shelf"

  # Create a CUE definition with a post type and REST endpoint
  wpforge init shelf.cue --name "Book Shelf" --enable customContentTypes,restApi`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(args, cfg, &flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Plugin name (required)")
	cmd.Flags().StringVar(&flags.slug, "slug", "", "Plugin slug (default: derived from the name)")
	cmd.Flags().StringVar(&flags.description, "description", "", "Plugin description")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "Features to enable (comma-separated)")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing definition")

	return cmd
}

func runInit(args []string, cfg *cmdtypes.GlobalConfig, flags *initFlags) error {
	path := cmdutil.ResolveDefinitionPath(args)

	name := strings.TrimSpace(flags.name)
	if name == "" {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError("plugin name is required", "", "basic.name", "Pass --name"),
		}
	}

	slug := flags.slug
	if slug == "" {
		slug = naming.Slugify(name)
	}

	description := flags.description
	if description == "" {
		description = name + " WordPress plugin."
	}

	features := make([]plugin.Feature, 0, len(flags.enable))
	for _, raw := range flags.enable {
		f, err := plugin.ParseFeature(strings.TrimSpace(raw))
		if err != nil {
			return &oerrors.ExitError{
				Code: oerrors.ExitValidationError,
				Err:  oerrors.NewValidationError(err.Error(), "", "--enable", "Valid features: "+featureNames()),
			}
		}
		features = append(features, f)
	}

	starter := definition.Starter(cfg.CLIConfig().BasicInfo(name, slug, description), features)
	if err := definition.Check(starter, path); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}

	if err := definition.WriteFile(path, starter, flags.force); err != nil {
		return cmdutil.Exit(err)
	}

	output.PluginLogger(slug).Info("definition written", "path", path, "features", len(features))
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s", path)))
	output.Println("")
	output.Println("Next: edit the definition, then run")
	output.Println("  wpforge vet " + path)
	output.Println("  wpforge generate " + path)

	return nil
}

func featureNames() string {
	features := plugin.Features()
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
