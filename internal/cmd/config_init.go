package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/config"
	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/output"
)

const configHeader = `# wpforge configuration
#
# defaults seed the header of definitions written by 'wpforge init'.
# Every key can be overridden with WPFORGE_<SECTION>_<KEY>, for example
# WPFORGE_DEFAULTS_AUTHOR.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the wpforge CLI configuration.

Writes the default configuration to the resolved config path
(--config flag > WPFORGE_CONFIG env > ~/.wpforge/config.yaml).

The configuration includes:
  - Defaults for author, license and required versions of new definitions
  - The draft database location
  - Log settings

Examples:
  # Initialize configuration
  wpforge config init

  # Overwrite existing configuration
  wpforge config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(cfg, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(cfg *cmdtypes.GlobalConfig, force bool) error {
	path := cfg.ConfigPath
	if path == "" {
		resolved, err := config.ResolveConfigPath("")
		if err != nil {
			return configPathError(err)
		}
		path = resolved.Value
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return configPathError(err)
	}
	if exists && !force {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err: oerrors.NewExistsError(
				"configuration already exists",
				path,
				"Use --force to overwrite existing configuration.",
			),
		}
	}

	data, err := encodeConfig(config.DefaultConfig())
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("creating config directory: %w", err)}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("writing config: %w", err)}
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	output.Println("")
	output.Println("Validate with: wpforge config vet")

	return nil
}

func encodeConfig(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.WriteString("\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

func configPathError(err error) error {
	return &oerrors.ExitError{
		Code: oerrors.ExitGeneralError,
		Err:  fmt.Errorf("could not resolve config path: %w", err),
	}
}
