package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/civitai-community/civitai-client/pkg/civitai"
)

// NewImagesCommand creates the images command group.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Browse images",
		Long:    "List community images from the Civitai gallery",
	}

	cmd.AddCommand(newImagesListCommand())

	return cmd
}

//nolint:funlen // command wiring is repetitive but flat
func newImagesListCommand() *cobra.Command {
	var (
		modelID        int
		modelVersionID int
		postID         int
		username       string
		nsfwLevel      string
		sortOrder      string
		period         string
		limit          int
		page           int
		cursor         string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images",
		Long:  "List gallery images with filters for model, post, and content rating",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			builder := client.Images().Query()

			if cmd.Flags().Changed("model-id") {
				builder = builder.WhereModelID(modelID)
			}

			if cmd.Flags().Changed("model-version-id") {
				builder = builder.WhereModelVersionID(modelVersionID)
			}

			if cmd.Flags().Changed("post-id") {
				builder = builder.WherePostID(postID)
			}

			if username != "" {
				builder = builder.WhereUsername(username)
			}

			if nsfwLevel != "" {
				parsed, err := civitai.ParseNSFWLevel(nsfwLevel)
				if err != nil {
					return fmt.Errorf("invalid --nsfw: %w", err)
				}

				builder = builder.WhereNSFW(parsed)
			}

			if sortOrder != "" {
				parsed, err := civitai.ParseImageSort(sortOrder)
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

			if cmd.Flags().Changed("limit") {
				builder = builder.WithResultsLimit(limit)
			}

			if cmd.Flags().Changed("page") {
				builder = builder.WithPageIndex(page)
			}

			var result civitai.Result[civitai.ImagesPage]
			if cursor != "" {
				result = builder.Execute(context.Background(), cursor)
			} else {
				result = builder.Execute(context.Background())
			}

			pageData, ok := result.Value()
			if !ok {
				return failureError("list images", result.Failure())
			}

			handled, err := encodeOutput(pageData)
			if handled {
				return err
			}

			if len(pageData.Items) == 0 {
				fmt.Println("No images found")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Size", "Rating", "Creator", "URL")

			for _, image := range pageData.Items {
				size := fmt.Sprintf("%dx%d", image.Width, image.Height)
				_ = table.Append(strconv.Itoa(image.ID), size, image.NSFWLevel.String(), image.Username, image.URL)
			}

			_ = table.Render()
			printPageHint(pageData.Metadata)

			return nil
		},
	}

	cmd.Flags().IntVar(&modelID, "model-id", 0, "filter by model id")
	cmd.Flags().IntVar(&modelVersionID, "model-version-id", 0, "filter by model version id")
	cmd.Flags().IntVar(&postID, "post-id", 0, "filter by post id")
	cmd.Flags().StringVar(&username, "username", "", "filter by posting user")
	cmd.Flags().StringVar(&nsfwLevel, "nsfw", "", "content rating level (None, Soft, Mature, X)")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "sort order (Most Reactions, Most Comments, Newest)")
	cmd.Flags().StringVar(&period, "period", "", "ranking period (AllTime, Year, Month, Week, Day)")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page (1-200)")
	cmd.Flags().IntVar(&page, "page", 0, "page index (1-based)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "continuation cursor from a previous page")

	return cmd
}
