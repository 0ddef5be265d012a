// Package cli implements the marketplace terminal commands.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	appcatalog "github.com/solmarket/marketplace-client/application/catalog"
	appprofile "github.com/solmarket/marketplace-client/application/profile"
	apppurchase "github.com/solmarket/marketplace-client/application/purchase"
	appsession "github.com/solmarket/marketplace-client/application/session"
	utilscontext "github.com/solmarket/marketplace-client/utils/context"
)

// Deps carries the wired application layers into the commands.
type Deps struct {
	Catalog  appcatalog.CatalogApp
	Purchase apppurchase.PurchaseApp
	Profile  appprofile.ProfileApp
	Session  appsession.SessionApp
}

// NewRootCmd builds the solmarket command tree.
func NewRootCmd(deps *Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solmarket",
		Short: "Terminal client for the SOL marketplace",
		Long: "solmarket is a terminal client for the SOL-denominated marketplace.\n" +
			"It browses listings, purchases items and manages your profile\n" +
			"against a running marketplace backend.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(browseCmd(deps))
	rootCmd.AddCommand(buyCmd(deps))
	rootCmd.AddCommand(walletCmd(deps))
	rootCmd.AddCommand(profileCmd(deps))
	rootCmd.AddCommand(loginCmd(deps))
	rootCmd.AddCommand(logoutCmd(deps))

	return rootCmd
}

// sessionContext attaches the persisted session, when present, to the
// context so the application layers see the acting identity.
func sessionContext(ctx context.Context, deps *Deps) context.Context {
	session, err := deps.Session.Current(ctx)
	if err != nil || session == nil {
		return ctx
	}
	return utilscontext.WithSession(ctx, session)
}
