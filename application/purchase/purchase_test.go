package purchase_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	apppurchase "github.com/solmarket/marketplace-client/application/purchase"
	"github.com/solmarket/marketplace-client/constant"
	purchasemocks "github.com/solmarket/marketplace-client/mocks/repository/purchase"
	uimocks "github.com/solmarket/marketplace-client/mocks/ui"
	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/repository/api"
	"github.com/solmarket/marketplace-client/ui"
	utilscontext "github.com/solmarket/marketplace-client/utils/context"
	cerr "github.com/solmarket/marketplace-client/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var listing = model.Listing{ID: "1", Title: "iPhone 14", Price: "2.50", OwnerID: "u1"}

func sessionCtx(userID string) context.Context {
	return utilscontext.WithSession(context.Background(), &model.Session{
		User:  model.User{ID: userID},
		Token: "token",
	})
}

func TestPurchaseApp_Buy_Gates(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		wantErrType constant.ErrorType
		wantMessage string
	}{
		{
			name:        "no session: aborts before any prompt",
			ctx:         context.Background(),
			wantErrType: constant.ErrAuthRequired,
			wantMessage: constant.ErrorTypeMessage[constant.ErrAuthRequired],
		},
		{
			name:        "owner: self purchase rejected before any prompt",
			ctx:         sessionCtx("u1"),
			wantErrType: constant.ErrSelfPurchase,
			wantMessage: constant.ErrorTypeMessage[constant.ErrSelfPurchase],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := purchasemocks.NewPurchaseRepository(t)
			notifier := uimocks.NewNotifier(t)
			confirmer := uimocks.NewConfirmer(t)
			notifier.On("Notify", mock.Anything, tt.wantMessage, ui.KindError).Once()

			app := apppurchase.NewPurchaseApp(repo, notifier, confirmer)
			attempt, err := app.Buy(tt.ctx, listing)

			require.Error(t, err)
			assert.True(t, cerr.IsType(err, tt.wantErrType))
			assert.Equal(t, constant.PurchaseFailed, attempt.State)
			// Neither the prompt nor the repository is ever touched:
			// the mocks fail the test on any unexpected call.
		})
	}
}

func TestPurchaseApp_Buy_Decline(t *testing.T) {
	repo := purchasemocks.NewPurchaseRepository(t)
	notifier := uimocks.NewNotifier(t)
	confirmer := uimocks.NewConfirmer(t)
	confirmer.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(false).Once()

	app := apppurchase.NewPurchaseApp(repo, notifier, confirmer)
	attempt, err := app.Buy(sessionCtx("u2"), listing)

	require.NoError(t, err)
	assert.Equal(t, constant.PurchaseCancelled, attempt.State)
	// No request, no notification.
}

func TestPurchaseApp_Buy_Success(t *testing.T) {
	repo := purchasemocks.NewPurchaseRepository(t)
	notifier := uimocks.NewNotifier(t)
	confirmer := uimocks.NewConfirmer(t)

	confirmer.On("Confirm", mock.Anything,
		`Purchase "iPhone 14" for 2.50 SOL?`,
		"This will transfer 2.50 SOL from your wallet to the seller.").
		Return(true).Once()
	repo.On("Submit", mock.Anything, "1").Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything, ui.KindSuccess).Once()

	app := apppurchase.NewPurchaseApp(repo, notifier, confirmer)

	reloaded := false
	app.OnPurchased(func(context.Context) { reloaded = true })

	attempt, err := app.Buy(sessionCtx("u2"), listing)
	require.NoError(t, err)
	assert.Equal(t, constant.PurchaseSucceeded, attempt.State)
	assert.Equal(t, "u2", attempt.BuyerID)
	assert.True(t, reloaded, "post-purchase refresh must run")
}

func TestPurchaseApp_Buy_ServerFailure(t *testing.T) {
	// Every server rejection surfaces the same generic failure; the
	// specific cause only reaches the log.
	tests := []struct {
		name      string
		submitErr error
	}{
		{name: "network failure", submitErr: errors.New("connection refused")},
		{name: "listing already sold", submitErr: &api.APIError{Status: http.StatusConflict, Message: "listing already sold"}},
		{name: "insufficient balance", submitErr: &api.APIError{Status: http.StatusBadRequest, Message: "insufficient balance"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := purchasemocks.NewPurchaseRepository(t)
			notifier := uimocks.NewNotifier(t)
			confirmer := uimocks.NewConfirmer(t)

			confirmer.On("Confirm", mock.Anything, mock.Anything, mock.Anything).Return(true).Once()
			repo.On("Submit", mock.Anything, "1").Return(tt.submitErr).Once()
			notifier.On("Notify", mock.Anything, constant.ErrorTypeMessage[constant.ErrPurchaseFailed], ui.KindError).Once()

			app := apppurchase.NewPurchaseApp(repo, notifier, confirmer)

			reloaded := false
			app.OnPurchased(func(context.Context) { reloaded = true })

			attempt, err := app.Buy(sessionCtx("u2"), listing)
			require.Error(t, err)
			assert.True(t, cerr.IsType(err, constant.ErrPurchaseFailed))
			assert.Equal(t, constant.PurchaseFailed, attempt.State)
			assert.False(t, reloaded, "no reload on failure")
		})
	}
}

func TestPurchaseApp_Buy_DuplicateIgnored(t *testing.T) {
	repo := purchasemocks.NewPurchaseRepository(t)
	notifier := uimocks.NewNotifier(t)
	confirmer := uimocks.NewConfirmer(t)

	firstPrompted := make(chan struct{})
	release := make(chan struct{})

	confirmer.On("Confirm", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(firstPrompted)
			<-release
		}).
		Return(true).Once()
	repo.On("Submit", mock.Anything, "1").Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything, ui.KindSuccess).Once()

	app := apppurchase.NewPurchaseApp(repo, notifier, confirmer)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := app.Buy(sessionCtx("u2"), listing)
		assert.NoError(t, err)
	}()

	// Second buy for the same listing while the first is unresolved:
	// ignored outright, no second prompt and no second request.
	<-firstPrompted
	attempt, err := app.Buy(sessionCtx("u2"), listing)
	require.NoError(t, err)
	assert.Equal(t, constant.PurchaseIdle, attempt.State)

	close(release)
	wg.Wait()
}
