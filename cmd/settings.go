package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change client configuration",
	}

	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys := app.config.AllKeys()
			sort.Strings(keys)

			for _, key := range keys {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, app.config.Get(key))
			}

			if file := app.config.ConfigFileUsed(); file != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# from %s\n", file)
			}

			return nil
		},
	}
}

func newSettingsSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			app.config.Set(key, value)

			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}

			configDir := filepath.Join(homeDir, ".learnhub")
			if err := os.MkdirAll(configDir, 0o700); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			if err := app.config.WriteConfigAs(filepath.Join(configDir, "config.toml")); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
			return nil
		},
	}
}
