/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/airdata/ourairports-api/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with default settings. An existing file
is only replaced with --force.

Examples:
  ourairports init
  ourairports init --config ./ourairports.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}

			cfg, err := config.BootstrapConfig(configPath, force)
			if err != nil {
				return err
			}

			cmd.Printf("Configuration written to %s\n", configPath)
			cmd.Printf("Datasets will be fetched from %s\n", cfg.Source.BaseURL)
			cmd.Printf("\nYou can now start the server with:\n")
			cmd.Printf("  ourairports serve --config %s\n", configPath)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
	return initCmd
}
