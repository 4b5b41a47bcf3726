package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Browse tags",
		Long:    "List catalog tags and how many models carry them",
	}

	cmd.AddCommand(newTagsListCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var (
		query string
		limit int
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List tags, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			builder := client.Tags().Query()

			if query != "" {
				builder = builder.WhereQuery(query)
			}

			if cmd.Flags().Changed("limit") {
				builder = builder.WithResultsLimit(limit)
			}

			if cmd.Flags().Changed("page") {
				builder = builder.WithPageIndex(page)
			}

			result := builder.Execute(context.Background())

			pageData, ok := result.Value()
			if !ok {
				return failureError("list tags", result.Failure())
			}

			handled, err := encodeOutput(pageData)
			if handled {
				return err
			}

			if len(pageData.Items) == 0 {
				fmt.Println("No tags found")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Models", "Link")

			for _, tag := range pageData.Items {
				_ = table.Append(tag.Name, strconv.Itoa(tag.ModelCount), tag.Link)
			}

			_ = table.Render()
			printPageHint(pageData.Metadata)

			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by tag name")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page (1-200)")
	cmd.Flags().IntVar(&page, "page", 0, "page index (1-based)")

	return cmd
}
