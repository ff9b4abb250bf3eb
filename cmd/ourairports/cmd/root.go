/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/airdata/ourairports-api/pkg/config"
	"github.com/airdata/ourairports-api/pkg/di"
	"github.com/airdata/ourairports-api/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands.
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ourairports",
		Short: "OurAirports data service",
		Long: `Downloads the OurAirports datasets (airports, runways, navaids,
airport frequencies, countries and regions) and serves them as a
read-only JSON API.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "Config file (default is ~/.config/ourairports/config.yaml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().String("env-file", ".env", "Environment file loaded before the config")

	root.AddCommand(newServeCmd(), newFetchCmd(), newInitCmd())
	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func requireContainer() (*di.Container, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	return container, nil
}

// loadSettings resolves the configuration for a command: env file, config
// file (explicit, default location, or built-in defaults), OURAIRPORTS_*
// variables, then flags. It also installs the default logger.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	switch {
	case configPath != "":
		cfg, err = config.LoadConfig(configPath)
	case config.ConfigExists(config.GetDefaultConfigPath()):
		cfg, err = config.LoadConfig(config.GetDefaultConfigPath())
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
