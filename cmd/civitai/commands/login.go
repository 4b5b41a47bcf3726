package commands

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the Civitai API and store it in the CLI config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			// Verify the key works before storing it
			viper.Set("api-key", apiKey)

			client, err := createClient()
			if err != nil {
				return err
			}

			result := client.Tags().Query().WithResultsLimit(1).Execute(context.Background())
			if result.IsFailure() {
				return failureError("verify API key", result.Failure())
			}

			err = saveConfigValue("api-key", apiKey)
			if err != nil {
				return err
			}

			fmt.Println("API key verified and saved")

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key (prompted if not given)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Long:  "Remove the stored API key from the CLI config",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := saveConfigValue("api-key", "")
			if err != nil {
				return err
			}

			fmt.Println("API key removed")

			return nil
		},
	}
}
