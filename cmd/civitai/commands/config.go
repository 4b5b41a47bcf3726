package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrUnknownConfigKey = errors.New("unknown config key")
)

// configKeys are the settings the CLI persists.
var configKeys = []string{"base-url", "api-key", "output"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the civitai CLI configuration",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := make(map[string]string, len(configKeys))
			for _, key := range configKeys {
				settings[key] = viper.GetString(key)
			}

			if key := settings["api-key"]; key != "" {
				settings["api-key"] = "***"
			}

			handled, err := encodeOutput(settings)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")

			for _, key := range configKeys {
				_ = table.Append(key, settings[key])
			}

			_ = table.Render()

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			known := false

			for _, candidate := range configKeys {
				if candidate == key {
					known = true
					break
				}
			}

			if !known {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			err := saveConfigValue(key, value)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

// saveConfigValue persists one setting to the config file, creating the file
// on first use.
func saveConfigValue(key, value string) error {
	viper.Set(key, value)

	err := viper.WriteConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to save config: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	path := filepath.Join(home, ".civitai", "config.yml")

	err = viper.WriteConfigAs(path)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
