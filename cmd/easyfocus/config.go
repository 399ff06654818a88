package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/easyfocus/internal/config"
)

var configOpts struct {
	defaults bool
	path     bool
	write    string
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration easyfocus would use, after applying the config
file and command line flags.

Examples:
  # Effective configuration
  easyfocus config

  # Start a config file from the defaults
  easyfocus config --default --write ~/.config/easyfocus/config.toml`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configOpts.defaults, "default", false,
		"Print the built-in defaults instead of the effective configuration")
	configCmd.Flags().BoolVar(&configOpts.path, "path", false,
		"Print the default config file path and exit")
	configCmd.Flags().StringVar(&configOpts.write, "write", "",
		"Write the configuration to this file instead of stdout")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configOpts.path {
		_, err := fmt.Fprintln(out, config.ConfigPath())
		return err
	}

	c := cfg
	if configOpts.defaults {
		c = config.DefaultConfig()
	}

	if configOpts.write != "" {
		if err := c.Save(configOpts.write); err != nil {
			return err
		}
		logger.Debug("wrote config", "path", configOpts.write)
		return nil
	}

	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
