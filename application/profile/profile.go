package profile

import (
	"context"
	"time"

	"github.com/solmarket/marketplace-client/constant"
	"github.com/solmarket/marketplace-client/model"
	profilerepo "github.com/solmarket/marketplace-client/repository/profile"
	sessionrepo "github.com/solmarket/marketplace-client/repository/session"
	walletrepo "github.com/solmarket/marketplace-client/repository/wallet"
	utilscontext "github.com/solmarket/marketplace-client/utils/context"
	"github.com/solmarket/marketplace-client/utils/errors"
	"github.com/solmarket/marketplace-client/utils/logger"
	validatorx "github.com/solmarket/marketplace-client/utils/validator"
	"go.uber.org/zap"
)

type ProfileApp interface {
	// LoadWallet fetches the wallet view for the signed-in user.
	LoadWallet(ctx context.Context) (*model.WalletView, error)
	// SaveProfile validates and submits a profile update, then persists
	// the refreshed user into the session store. The password policy is
	// advisory here; the server re-validates.
	SaveProfile(ctx context.Context, req *model.ProfileUpdateRequest) (*model.User, error)
}

type profileAppImpl struct {
	walletRepo  walletrepo.WalletRepository
	profileRepo profilerepo.ProfileRepository
	sessionRepo sessionrepo.SessionRepository
	sessionTTL  time.Duration
}

func NewProfileApp(walletRepo walletrepo.WalletRepository, profileRepo profilerepo.ProfileRepository, sessionRepo sessionrepo.SessionRepository, sessionTTL time.Duration) ProfileApp {
	return &profileAppImpl{
		walletRepo:  walletRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

func (s *profileAppImpl) LoadWallet(ctx context.Context) (*model.WalletView, error) {
	session, ok := utilscontext.GetSession(ctx)
	if !ok || !session.Authenticated() {
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}

	view, err := s.walletRepo.Get(ctx, session.User.ID)
	if err != nil {
		logger.Error("[LoadWallet] error walletRepo.Get",
			zap.String("user_id", session.User.ID),
			zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrQueryFailed)
	}
	return view, nil
}

func (s *profileAppImpl) SaveProfile(ctx context.Context, req *model.ProfileUpdateRequest) (*model.User, error) {
	session, ok := utilscontext.GetSession(ctx)
	if !ok || !session.Authenticated() {
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrValidation)
	}

	user, err := s.profileRepo.Update(ctx, req)
	if err != nil {
		logger.Error("[SaveProfile] error profileRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Mirror the refreshed identity into the persisted session.
	updated := &model.Session{User: *user, Token: session.Token}
	if err := s.sessionRepo.Save(ctx, updated, s.sessionTTL); err != nil {
		logger.Warn("[SaveProfile] error sessionRepo.Save", zap.String("error", err.Error()))
	}

	return user, nil
}
