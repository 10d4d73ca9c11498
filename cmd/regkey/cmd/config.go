/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/regkey/pkg/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the regkey configuration file",
		Args:  cobra.NoArgs,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the built-in defaults",
		Long: `Write a configuration file holding the built-in licensee name,
feature mask and logging settings. Edit it and pass it with --config.

Examples:
  regkey config init
  regkey config init --path ./regkey.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")
			force, _ := cmd.Flags().GetBool("force")

			if path == "" {
				path = config.GetDefaultConfigPath()
			}

			if config.ConfigExists(path) && !force {
				fmt.Fprintf(a.stdout, "Config already exists at %s. Use --force to overwrite.\n", path)
				return nil
			}

			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Configuration written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().String("path", "", "where to write the config (default ~/.config/regkey/config.yaml)")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
