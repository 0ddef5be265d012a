package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func walletCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "Show your wallet, transactions, tokens and notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := sessionContext(cmd.Context(), deps)

			view, err := deps.Profile.LoadWallet(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("User:     @%s <%s>\n", view.User.Nickname, view.User.Email)
			fmt.Printf("Address:  %s\n", view.User.WalletAddress)
			fmt.Printf("Balance:  %.2f SOL\n", view.User.Balance)

			fmt.Printf("\nTransactions (%d):\n", len(view.Transactions))
			for _, t := range view.Transactions {
				fmt.Printf("  %s  %s SOL  %s\n", t.CreatedAt.Format("2006-01-02 15:04"), t.Amount, t.TxHash)
			}

			fmt.Printf("\nTokens (%d):\n", len(view.Tokens))
			for _, t := range view.Tokens {
				fmt.Printf("  #%s  %s  %s SOL\n", t.ID, t.Title, t.Price)
			}

			fmt.Printf("\nNotifications (%d):\n", len(view.Notifications))
			for _, n := range view.Notifications {
				fmt.Printf("  %s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
			}
			return nil
		},
	}
}
