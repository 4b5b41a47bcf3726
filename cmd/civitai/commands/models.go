package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// NewModelsCommand creates the models command group.
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "models",
		Aliases: []string{"model"},
		Short:   "Browse models",
		Long:    "Search and inspect models hosted on Civitai",
	}

	cmd.AddCommand(newModelsSearchCommand())
	cmd.AddCommand(newModelsGetCommand())
	cmd.AddCommand(newModelsVersionCommand())

	return cmd
}

//nolint:funlen // command wiring is repetitive but flat
func newModelsSearchCommand() *cobra.Command {
	var (
		query     string
		username  string
		tags      []string
		modelType string
		sortOrder string
		period    string
		nsfw      bool
		limit     int
		page      int
		cursor    string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search models",
		Long:  "Search models with filters for type, tags, creator, and ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			builder := client.Models().Query()

			if query != "" {
				builder = builder.WhereQuery(query)
			}

			if username != "" {
				builder = builder.WhereUsername(username)
			}

			if len(tags) > 0 {
				builder = builder.WhereTag(tags...)
			}

			if modelType != "" {
				parsed, err := civitai.ParseModelType(modelType)
				if err != nil {
					return fmt.Errorf("invalid --type: %w", err)
				}

				builder = builder.WhereType(parsed)
			}

			if sortOrder != "" {
				parsed, err := civitai.ParseModelSort(sortOrder)
				if err != nil {
					return fmt.Errorf("invalid --sort: %w", err)
				}

				builder = builder.WhereSort(parsed)
			}

			if period != "" {
				parsed, err := civitai.ParsePeriod(period)
				if err != nil {
					return fmt.Errorf("invalid --period: %w", err)
				}

				builder = builder.WherePeriod(parsed)
			}

			if cmd.Flags().Changed("nsfw") {
				builder = builder.WithNSFW(nsfw)
			}

			if cmd.Flags().Changed("limit") {
				builder = builder.WithResultsLimit(limit)
			}

			if cmd.Flags().Changed("page") {
				builder = builder.WithPageIndex(page)
			}

			var result civitai.Result[civitai.ModelsPage]
			if cursor != "" {
				result = builder.Execute(context.Background(), cursor)
			} else {
				result = builder.Execute(context.Background())
			}

			pageData, ok := result.Value()
			if !ok {
				return failureError("search models", result.Failure())
			}

			return renderModelsPage(pageData)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search query")
	cmd.Flags().StringVar(&username, "username", "", "filter by creator username")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().StringVar(&modelType, "type", "", "filter by model type (Checkpoint, LORA, ...)")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "sort order (Highest Rated, Most Downloaded, Newest)")
	cmd.Flags().StringVar(&period, "period", "", "ranking period (AllTime, Year, Month, Week, Day)")
	cmd.Flags().BoolVar(&nsfw, "nsfw", false, "include mature content")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page (1-100)")
	cmd.Flags().IntVar(&page, "page", 0, "page index (1-based)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "continuation cursor from a previous page")

	return cmd
}

func renderModelsPage(page civitai.ModelsPage) error {
	handled, err := encodeOutput(page)
	if handled {
		return err
	}

	if len(page.Items) == 0 {
		fmt.Println("No models found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Creator", "Downloads", "Rating")

	for _, model := range page.Items {
		creator := ""
		if model.Creator != nil {
			creator = model.Creator.Username
		}

		downloads := ""
		rating := ""

		if model.Stats != nil {
			downloads = strconv.Itoa(model.Stats.DownloadCount)
			rating = fmt.Sprintf("%.2f", model.Stats.Rating)
		}

		_ = table.Append(strconv.Itoa(model.ID), model.Name, model.Type.String(), creator, downloads, rating)
	}

	_ = table.Render()
	printPageHint(page.Metadata)

	return nil
}

func newModelsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MODEL_ID",
		Short: "Get model details",
		Long:  "Display detailed information about a specific model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid model id %q: %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result := client.Models().Get(context.Background(), id)

			model, ok := result.Value()
			if !ok {
				return failureError("get model", result.Failure())
			}

			handled, err := encodeOutput(model)
			if handled {
				return err
			}

			fmt.Printf("Model: %s\n", model.Name)
			fmt.Printf("  ID:       %d\n", model.ID)
			fmt.Printf("  Type:     %s\n", model.Type)
			fmt.Printf("  NSFW:     %t\n", model.NSFW)

			if model.Creator != nil {
				fmt.Printf("  Creator:  %s\n", model.Creator.Username)
			}

			if len(model.Tags) > 0 {
				fmt.Printf("  Tags:     %s\n", strings.Join(model.Tags, ", "))
			}

			if model.Stats != nil {
				fmt.Printf("  Downloads: %d\n", model.Stats.DownloadCount)
				fmt.Printf("  Rating:    %.2f (%d ratings)\n", model.Stats.Rating, model.Stats.RatingCount)
			}

			if len(model.ModelVersions) > 0 {
				fmt.Println("  Versions:")

				for _, version := range model.ModelVersions {
					fmt.Printf("    %d: %s\n", version.ID, version.Name)
				}
			}

			return nil
		},
	}
}

func newModelsVersionCommand() *cobra.Command {
	var byHash string

	cmd := &cobra.Command{
		Use:   "version [VERSION_ID]",
		Short: "Get model version details",
		Long:  "Display a model version by its id, or look it up by file hash with --by-hash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			var result civitai.Result[civitai.ModelVersion]

			switch {
			case byHash != "":
				result = client.Models().GetVersionByHash(context.Background(), byHash)
			case len(args) == 1:
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version id %q: %w", args[0], err)
				}

				result = client.Models().GetVersion(context.Background(), id)
			default:
				return cmd.Help()
			}

			version, ok := result.Value()
			if !ok {
				return failureError("get model version", result.Failure())
			}

			handled, err := encodeOutput(version)
			if handled {
				return err
			}

			fmt.Printf("Version: %s\n", version.Name)
			fmt.Printf("  ID:        %d\n", version.ID)

			if version.Model != nil {
				fmt.Printf("  Model:     %s\n", version.Model.Name)
			}

			if version.BaseModel != "" {
				fmt.Printf("  Base:      %s\n", version.BaseModel)
			}

			for _, file := range version.Files {
				fmt.Printf("  File:      %s (%.1f KB)\n", file.Name, file.SizeKB)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&byHash, "by-hash", "", "look up the version by file hash")

	return cmd
}
