package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/cmdutil"
	"github.com/wpforge/cli/internal/config"
	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the wpforge CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values match the config schema (author URI, versions, drafts path)

The config path is resolved using precedence:
  --config flag > WPFORGE_CONFIG env > ~/.wpforge/config.yaml

Examples:
  # Validate default configuration
  wpforge config vet

  # Validate custom config path
  wpforge config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigVet(cfg)
		},
	}
}

func runConfigVet(cfg *cmdtypes.GlobalConfig) error {
	path := cfg.ConfigPath
	if path == "" {
		resolved, err := config.ResolveConfigPath("")
		if err != nil {
			return configPathError(err)
		}
		path = resolved.Value
	}

	output.Debug("validating config", "path", path)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return configPathError(err)
	}
	if !exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: oerrors.NewNotFoundError(
				"configuration file not found",
				path,
				"Run 'wpforge config init' to create default configuration",
			),
		}
	}

	validator, err := config.NewValidator()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	if err := validator.ValidateFile(path); err != nil {
		detail := &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		}
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			detail.Type = "validation failed"
			detail.Message = verrs.Error()
			detail.Hint = "Fix the listed keys or regenerate with 'wpforge config init --force'"
		}
		cmdutil.PrintValidationError("configuration is invalid", detail)
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: detail, Printed: true}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Configuration is valid: %s", path)))
	return nil
}
