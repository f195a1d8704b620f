package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/cmdutil"
	"github.com/wpforge/cli/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet [file]",
		Short: "Validate a plugin definition",
		Long: `Validate a plugin definition without generating anything.

Checks performed:
  1. The file exists and has a supported extension
  2. It matches the definition schema (types, enums, unknown keys)
  3. Required fields are set, the slug is well formed and identifiers
     are unique within their section

On success the feature table is printed.

Examples:
  # Validate plugin.yaml in the current directory
  wpforge vet

  # Validate a CUE definition
  wpforge vet shelf.cue`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVet,
	}
}

func runVet(_ *cobra.Command, args []string) error {
	path := cmdutil.ResolveDefinitionPath(args)

	cfg, err := cmdutil.LoadDefinition(path)
	if err != nil {
		return err
	}

	output.Println(cmdutil.FeatureTable(cfg))
	output.Println(output.FormatCheckmark(fmt.Sprintf("Definition is valid: %s (%s)", path, cfg.Basic.Slug)))
	return nil
}
