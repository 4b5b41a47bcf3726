package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCreatorsCommand creates the creators command group.
func NewCreatorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "creators",
		Aliases: []string{"creator"},
		Short:   "Browse creators",
		Long:    "List creators who have published models on Civitai",
	}

	cmd.AddCommand(newCreatorsListCommand())

	return cmd
}

func newCreatorsListCommand() *cobra.Command {
	var (
		query string
		limit int
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List creators",
		Long:  "List creators, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			builder := client.Creators().Query()

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
				return failureError("list creators", result.Failure())
			}

			handled, err := encodeOutput(pageData)
			if handled {
				return err
			}

			if len(pageData.Items) == 0 {
				fmt.Println("No creators found")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Username", "Models", "Link")

			for _, creator := range pageData.Items {
				_ = table.Append(creator.Username, strconv.Itoa(creator.ModelCount), creator.Link)
			}

			_ = table.Render()
			printPageHint(pageData.Metadata)

			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by creator name")
	cmd.Flags().IntVar(&limit, "limit", 0, "results per page (1-200)")
	cmd.Flags().IntVar(&page, "page", 0, "page index (1-based)")

	return cmd
}
