package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/solmarket/marketplace-client/application/catalog"
	"github.com/solmarket/marketplace-client/constant"
	"github.com/solmarket/marketplace-client/model"
)

func browseCmd(deps *Deps) *cobra.Command {
	var (
		query    string
		minPrice string
		maxPrice string
		category string
		sortKey  string
		counts   bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search and list marketplace items",
		Example: `  # Everything, newest first
  solmarket browse

  # Free-text search with a price range
  solmarket browse --query phone --min-price 0.5 --max-price 10

  # Category view, cheapest first
  solmarket browse --category Electronics --sort price-low`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria := map[catalog.CriterionField]string{
				catalog.FieldQuery:    query,
				catalog.FieldMinPrice: minPrice,
				catalog.FieldMaxPrice: maxPrice,
				catalog.FieldCategory: category,
				catalog.FieldSort:     sortKey,
			}
			for field, value := range criteria {
				if _, err := deps.Catalog.SetCriterion(field, value); err != nil {
					return fmt.Errorf("invalid %s: %q", field, value)
				}
			}

			ctx := sessionContext(cmd.Context(), deps)
			if _, err := deps.Catalog.Fetch(ctx); err != nil {
				return err
			}

			view := deps.Catalog.View()
			if len(view) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			printListings(view)
			fmt.Printf("\n%d listings, %s SOL total volume\n", len(view), catalog.Volume(view).String())

			if counts {
				printCounts(deps.Catalog.CategoryCounts())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "free-text search")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price in SOL")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price in SOL")
	cmd.Flags().StringVar(&category, "category", constant.CategoryAll, "category filter")
	cmd.Flags().StringVar(&sortKey, "sort", string(constant.SortNewest), "sort order (newest, oldest, price-low, price-high)")
	cmd.Flags().BoolVar(&counts, "counts", false, "show per-category counts")

	return cmd
}

func printListings(listings []model.Listing) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE (SOL)\tSELLER\tCREATED")
	for _, l := range listings {
		created := l.CreatedAt
		if created == "" {
			created = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.Title, l.Price, l.SellerName(), created)
	}
	w.Flush()
}

func printCounts(counts map[string]int) {
	fmt.Println("\nCategories:")
	fmt.Printf("  %-12s %d\n", constant.CategoryAll, counts[constant.CategoryAll])
	for _, category := range constant.Categories {
		fmt.Printf("  %-12s %d\n", category, counts[category])
	}
}
