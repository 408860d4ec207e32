package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/twentyone/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the twentyone configuration file",
	}

	// configInitCmd represents the config init command
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.InitConfig()
			if err != nil {
				return fmt.Errorf("error initializing config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
			return nil
		},
	}

	// configShowCmd represents the config show command
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Config file:", config.GetConfigFilePath())
			fmt.Fprintf(out, "color = %q\n", cfg.Color)
			fmt.Fprintf(out, "log_level = %q\n", cfg.LogLevel)
			return nil
		},
	}

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	return configCmd
}
