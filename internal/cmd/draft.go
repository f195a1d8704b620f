package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/cmdutil"
	"github.com/wpforge/cli/internal/config"
	"github.com/wpforge/cli/internal/definition"
	"github.com/wpforge/cli/internal/output"
	"github.com/wpforge/cli/internal/store"
)

// NewDraftCmd creates the draft command group.
func NewDraftCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.DraftFlags

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage saved plugin definitions",
		Long: `Manage in-progress plugin definitions kept in the local draft database.

The database path is resolved using precedence:
  --drafts flag > WPFORGE_DRAFTS_PATH env > drafts.path in config > ~/.wpforge/drafts.db

Saving under an existing name replaces the draft.`,
	}

	flags.AddTo(cmd)

	cmd.AddCommand(newDraftSaveCmd(cfg, &flags))
	cmd.AddCommand(newDraftLoadCmd(cfg, &flags))
	cmd.AddCommand(newDraftListCmd(cfg, &flags))
	cmd.AddCommand(newDraftRmCmd(cfg, &flags))

	return cmd
}

// openDrafts resolves the database path and opens the store.
func openDrafts(cfg *cmdtypes.GlobalConfig, flags *cmdutil.DraftFlags) (*store.Store, error) {
	path, err := config.ResolveDraftsPath(flags.Path, cfg.Config)
	if err != nil {
		return nil, cmdutil.Exitf("resolving drafts path: %w", err)
	}
	config.LogResolvedValues(path)

	s, err := store.Open(path.Value)
	if err != nil {
		return nil, cmdutil.Exit(err)
	}
	return s, nil
}

func newDraftSaveCmd(cfg *cmdtypes.GlobalConfig, flags *cmdutil.DraftFlags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save a definition as a draft",
		Long: `Save a definition as a draft.

The definition must match the schema; semantic checks are skipped so
incomplete work can be saved. The draft name defaults to the plugin slug.

Examples:
  wpforge draft save
  wpforge draft save shelf.cue --name shelf-v2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := cmdutil.ResolveDefinitionPath(args)

			loader, err := definition.NewLoader()
			if err != nil {
				return cmdutil.Exit(err)
			}
			def, err := loader.LoadFile(path)
			if err != nil {
				return cmdutil.Exit(err)
			}

			draftName := name
			if draftName == "" {
				draftName = def.Basic.Slug
			}

			s, err := openDrafts(cfg, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Put(draftName, def); err != nil {
				return cmdutil.Exit(err)
			}

			output.Println(output.FormatCheckmark(fmt.Sprintf("Saved draft %s", draftName)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Draft name (default: plugin slug)")

	return cmd
}

func newDraftLoadCmd(cfg *cmdtypes.GlobalConfig, flags *cmdutil.DraftFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "load <name> [file]",
		Short: "Write a draft back to a definition file",
		Long: `Write a saved draft to a definition file (default plugin.yaml).

The format follows the file extension.

Examples:
  wpforge draft load book-shelf
  wpforge draft load book-shelf shelf.cue --force`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := openDrafts(cfg, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			draft, err := s.Get(args[0])
			if err != nil {
				return cmdutil.Exit(err)
			}

			path := cmdutil.ResolveDefinitionPath(args[1:])
			if err := definition.WriteFile(path, draft.Config, force); err != nil {
				return cmdutil.Exit(err)
			}

			output.Println(output.FormatCheckmark(fmt.Sprintf("Wrote draft %s to %s", draft.Name, path)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing definition")

	return cmd
}

func newDraftListCmd(cfg *cmdtypes.GlobalConfig, flags *cmdutil.DraftFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s, err := openDrafts(cfg, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			drafts, err := s.List()
			if err != nil {
				return cmdutil.Exit(err)
			}
			if len(drafts) == 0 {
				output.Println("No drafts saved.")
				return nil
			}

			tbl := output.NewTable("NAME", "PLUGIN", "FEATURES", "UPDATED")
			for _, d := range drafts {
				tbl.Row(
					d.Name,
					d.Config.Basic.Name,
					strconv.Itoa(len(d.Config.Features.EnabledList())),
					d.UpdatedAt.Local().Format(time.DateTime),
				)
			}
			output.Println(tbl.String())
			return nil
		},
	}
}

func newDraftRmCmd(cfg *cmdtypes.GlobalConfig, flags *cmdutil.DraftFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a draft",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := openDrafts(cfg, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(args[0]); err != nil {
				return cmdutil.Exit(err)
			}

			output.Println(output.FormatCheckmark(fmt.Sprintf("Deleted draft %s", args[0])))
			return nil
		},
	}
}
