// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpforge/cli/internal/cmdtypes"
	"github.com/wpforge/cli/internal/config"
	"github.com/wpforge/cli/internal/output"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	timestamps bool
}

// NewRootCmd creates the root command for the wpforge CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "wpforge",
		Short: "WordPress plugin generator",
		Long: `wpforge generates the complete source tree of a WordPress plugin from a
declarative plugin definition (YAML, JSON or CUE).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to config file (env: WPFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewVetCmd(cfg))
	rootCmd.AddCommand(NewGenerateCmd(cfg))
	rootCmd.AddCommand(NewPreviewCmd(cfg))
	rootCmd.AddCommand(NewDiffCmd(cfg))
	rootCmd.AddCommand(NewDraftCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, flags rootFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}
	cfg.ConfigPath = configPath.Value

	// A broken config must not block commands that don't need it;
	// `config vet` reports the problem.
	loaded, loadErr := config.NewLoader().Load(cfg.ConfigPath)
	if loadErr == nil {
		cfg.Config = loaded
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = on).
	logCfg := output.LogConfig{Verbose: cfg.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Config != nil && cfg.Config.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Config.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Debug("config load error", "error", loadErr)
	}
	config.LogResolvedValues(configPath)

	return nil
}
