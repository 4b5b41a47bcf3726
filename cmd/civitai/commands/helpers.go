// Package commands implements the civitai CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/civitai-community/civitai-client/pkg/civitai"
	"github.com/civitai-community/civitai-client/pkg/civitaiclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// createClient builds an API client from the effective CLI configuration.
func createClient() (civitai.Client, error) {
	config := &civitai.Config{
		BaseURL: viper.GetString("base-url"),
		APIKey:  viper.GetString("api-key"),
		Debug:   viper.GetBool("verbose"),
	}

	client, err := civitaiclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// failureError converts a query Failure into a CLI error.
func failureError(action string, failure *civitai.Failure) error {
	return fmt.Errorf("failed to %s: %w", action, failure)
}

// encodeOutput writes value as JSON or YAML to stdout. It returns false when
// the configured output format is neither, leaving table rendering to the
// caller.
func encodeOutput(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}

// printPageHint tells the user how to continue a paginated listing.
func printPageHint(metadata *civitai.PageMetadata) {
	if metadata == nil {
		return
	}

	if metadata.NextCursor != "" {
		fmt.Printf("\nMore results available. Use --cursor %s to fetch the next page.\n", metadata.NextCursor)
		return
	}

	if metadata.TotalPages > 1 && metadata.CurrentPage < metadata.TotalPages {
		fmt.Printf("\nShowing page %d of %d. Use --page to fetch other pages.\n", metadata.CurrentPage, metadata.TotalPages)
	}
}
