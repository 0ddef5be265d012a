package main

import (
	"context"
	"net/http"
	"os"

	appcatalog "github.com/solmarket/marketplace-client/application/catalog"
	appprofile "github.com/solmarket/marketplace-client/application/profile"
	apppurchase "github.com/solmarket/marketplace-client/application/purchase"
	appsession "github.com/solmarket/marketplace-client/application/session"
	"github.com/solmarket/marketplace-client/cmd/cli"
	"github.com/solmarket/marketplace-client/cmd/config"
	redisclient "github.com/solmarket/marketplace-client/cmd/redis"
	"github.com/solmarket/marketplace-client/repository/api"
	listingrepo "github.com/solmarket/marketplace-client/repository/listing"
	profilerepo "github.com/solmarket/marketplace-client/repository/profile"
	purchaserepo "github.com/solmarket/marketplace-client/repository/purchase"
	sessionrepo "github.com/solmarket/marketplace-client/repository/session"
	walletrepo "github.com/solmarket/marketplace-client/repository/wallet"
	"github.com/solmarket/marketplace-client/ui"
	"github.com/solmarket/marketplace-client/utils/logger"
	validatorx "github.com/solmarket/marketplace-client/utils/validator"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	// Session store: redis when configured, in-memory otherwise.
	var sessions sessionrepo.SessionRepository
	if cfg.Redis.Enabled {
		client, err := redisclient.New(cfg)
		if err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = client.Close()
		}()
		sessions = sessionrepo.NewRedisRepository(client)
	} else {
		sessions = sessionrepo.NewMemoryRepository()
	}

	// Backend client with the bearer token sourced from the session.
	apiClient := api.New(cfg.API.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		api.WithTokenSource(func() string {
			session, err := sessions.Load(context.Background())
			if err != nil || session == nil {
				return ""
			}
			return session.Token
		}))

	// Initialize repositories
	Listings := listingrepo.NewListingRepository(apiClient)
	Purchases := purchaserepo.NewPurchaseRepository(apiClient)
	Wallets := walletrepo.NewWalletRepository(apiClient)
	Profiles := profilerepo.NewProfileRepository(apiClient)

	// Initialize application layers
	notifier := ui.NewBannerNotifier(ui.NewTerminalNotifier(os.Stdout), cfg.Notify.DismissAfter)
	confirmer := ui.NewTerminalConfirmer(os.Stdin, os.Stdout)

	CatalogApp := appcatalog.NewCatalogApp(Listings)
	PurchaseApp := apppurchase.NewPurchaseApp(Purchases, notifier, confirmer)
	ProfileApp := appprofile.NewProfileApp(Wallets, Profiles, sessions, cfg.Session.TTL)
	SessionApp := appsession.NewSessionApp(sessions, Wallets, cfg.Session.TTL)

	// A successful purchase reloads the catalog so ownership and
	// balances reflect server truth.
	PurchaseApp.OnPurchased(func(ctx context.Context) {
		if _, err := CatalogApp.Fetch(ctx); err != nil {
			logger.Warn("post-purchase catalog reload failed", zap.Error(err))
		}
	})

	rootCmd := cli.NewRootCmd(&cli.Deps{
		Catalog:  CatalogApp,
		Purchase: PurchaseApp,
		Profile:  ProfileApp,
		Session:  SessionApp,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
