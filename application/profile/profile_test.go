package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appprofile "github.com/solmarket/marketplace-client/application/profile"
	"github.com/solmarket/marketplace-client/constant"
	profilemocks "github.com/solmarket/marketplace-client/mocks/repository/profile"
	sessionmocks "github.com/solmarket/marketplace-client/mocks/repository/session"
	walletmocks "github.com/solmarket/marketplace-client/mocks/repository/wallet"
	"github.com/solmarket/marketplace-client/model"
	utilscontext "github.com/solmarket/marketplace-client/utils/context"
	cerr "github.com/solmarket/marketplace-client/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ttl = 24 * time.Hour

func sessionCtx() context.Context {
	return utilscontext.WithSession(context.Background(), &model.Session{
		User:  model.User{ID: "u1", Email: "old@example.com"},
		Token: "token",
	})
}

func TestProfileApp_LoadWallet(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		app := appprofile.NewProfileApp(
			walletmocks.NewWalletRepository(t),
			profilemocks.NewProfileRepository(t),
			sessionmocks.NewSessionRepository(t),
			ttl,
		)
		_, err := app.LoadWallet(context.Background())
		require.Error(t, err)
		assert.True(t, cerr.IsType(err, constant.ErrAuthRequired))
	})

	t.Run("returns the wallet view for the signed-in user", func(t *testing.T) {
		wallets := walletmocks.NewWalletRepository(t)
		view := &model.WalletView{User: model.User{ID: "u1", Balance: 12.5}}
		wallets.On("Get", mock.Anything, "u1").Return(view, nil).Once()

		app := appprofile.NewProfileApp(wallets, profilemocks.NewProfileRepository(t), sessionmocks.NewSessionRepository(t), ttl)
		got, err := app.LoadWallet(sessionCtx())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("backend failure maps to a query error", func(t *testing.T) {
		wallets := walletmocks.NewWalletRepository(t)
		wallets.On("Get", mock.Anything, "u1").Return(nil, errors.New("boom")).Once()

		app := appprofile.NewProfileApp(wallets, profilemocks.NewProfileRepository(t), sessionmocks.NewSessionRepository(t), ttl)
		_, err := app.LoadWallet(sessionCtx())
		require.Error(t, err)
		assert.True(t, cerr.IsType(err, constant.ErrQueryFailed))
	})
}

func TestProfileApp_SaveProfile(t *testing.T) {
	valid := &model.ProfileUpdateRequest{
		Email:    "new@example.com",
		Nickname: "newnick",
		Password: "Sup3r#secret",
	}

	t.Run("weak password never reaches the backend", func(t *testing.T) {
		app := appprofile.NewProfileApp(
			walletmocks.NewWalletRepository(t),
			profilemocks.NewProfileRepository(t),
			sessionmocks.NewSessionRepository(t),
			ttl,
		)
		_, err := app.SaveProfile(sessionCtx(), &model.ProfileUpdateRequest{
			Email:    "new@example.com",
			Nickname: "newnick",
			Password: "alllowercase1!",
		})
		require.Error(t, err)
		assert.True(t, cerr.IsType(err, constant.ErrValidation))
	})

	t.Run("empty password is allowed", func(t *testing.T) {
		profiles := profilemocks.NewProfileRepository(t)
		sessions := sessionmocks.NewSessionRepository(t)
		req := &model.ProfileUpdateRequest{Email: "new@example.com", Nickname: "newnick"}
		updated := &model.User{ID: "u1", Email: "new@example.com", Nickname: "newnick"}

		profiles.On("Update", mock.Anything, req).Return(updated, nil).Once()
		sessions.On("Save", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
			return s.User.Email == "new@example.com" && s.Token == "token"
		}), ttl).Return(nil).Once()

		app := appprofile.NewProfileApp(walletmocks.NewWalletRepository(t), profiles, sessions, ttl)
		got, err := app.SaveProfile(sessionCtx(), req)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("refreshed user persisted into the session", func(t *testing.T) {
		profiles := profilemocks.NewProfileRepository(t)
		sessions := sessionmocks.NewSessionRepository(t)
		updated := &model.User{ID: "u1", Email: "new@example.com", Nickname: "newnick"}

		profiles.On("Update", mock.Anything, valid).Return(updated, nil).Once()
		sessions.On("Save", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
			return s.User == *updated && s.Token == "token"
		}), ttl).Return(nil).Once()

		app := appprofile.NewProfileApp(walletmocks.NewWalletRepository(t), profiles, sessions, ttl)
		_, err := app.SaveProfile(sessionCtx(), valid)
		require.NoError(t, err)
	})

	t.Run("requires a session", func(t *testing.T) {
		app := appprofile.NewProfileApp(
			walletmocks.NewWalletRepository(t),
			profilemocks.NewProfileRepository(t),
			sessionmocks.NewSessionRepository(t),
			ttl,
		)
		_, err := app.SaveProfile(context.Background(), valid)
		require.Error(t, err)
		assert.True(t, cerr.IsType(err, constant.ErrAuthRequired))
	})
}
