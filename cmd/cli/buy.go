package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/solmarket/marketplace-client/constant"
	"github.com/solmarket/marketplace-client/model"
)

func buyCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <listing-id>",
		Short: "Purchase a listing",
		Long: "Purchase a listing by ID. Requires a signed-in session and an\n" +
			"explicit confirmation; the price is debited from your wallet by\n" +
			"the backend.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := sessionContext(cmd.Context(), deps)

			listing, err := findListing(ctx, deps, args[0])
			if err != nil {
				return err
			}

			attempt, err := deps.Purchase.Buy(ctx, *listing)
			if err != nil {
				return err
			}
			if !attempt.State.Terminal() {
				fmt.Println("A purchase for this listing is already in progress.")
				return nil
			}
			if attempt.State == constant.PurchaseCancelled {
				fmt.Println("Purchase cancelled.")
			}
			return nil
		},
	}
}

// findListing resolves a listing ID against a fresh catalog fetch.
func findListing(ctx context.Context, deps *Deps, id string) (*model.Listing, error) {
	listings, err := deps.Catalog.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, fmt.Errorf("listing %q not found", id)
}
