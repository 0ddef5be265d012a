package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/solmarket/marketplace-client/constant"
	"github.com/solmarket/marketplace-client/model"
	sessionrepo "github.com/solmarket/marketplace-client/repository/session"
	walletrepo "github.com/solmarket/marketplace-client/repository/wallet"
	"github.com/solmarket/marketplace-client/utils/errors"
	"github.com/solmarket/marketplace-client/utils/logger"
	"go.uber.org/zap"
)

type SessionApp interface {
	// Login inspects a bearer token issued by the backend, resolves the
	// signed-in identity and persists the session. The token signature
	// is not verified here; the backend owns authentication and rejects
	// bad tokens on every call.
	Login(ctx context.Context, token string) (*model.Session, error)
	// Current loads the persisted session, if any.
	Current(ctx context.Context) (*model.Session, error)
	Logout(ctx context.Context) error
}

type sessionAppImpl struct {
	sessionRepo sessionrepo.SessionRepository
	walletRepo  walletrepo.WalletRepository
	sessionTTL  time.Duration
}

func NewSessionApp(sessionRepo sessionrepo.SessionRepository, walletRepo walletrepo.WalletRepository, sessionTTL time.Duration) SessionApp {
	return &sessionAppImpl{
		sessionRepo: sessionRepo,
		walletRepo:  walletRepo,
		sessionTTL:  sessionTTL,
	}
}

func (s *sessionAppImpl) Login(ctx context.Context, token string) (*model.Session, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Error("[Login] malformed token", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}
	if claims.Subject == "" {
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}

	session := &model.Session{
		User:  model.User{ID: claims.Subject},
		Token: token,
	}

	// Enrich the identity from the wallet view; a failure here only
	// leaves the display fields empty.
	if view, err := s.walletRepo.Get(ctx, claims.Subject); err != nil {
		logger.Warn("[Login] error walletRepo.Get", zap.String("error", err.Error()))
	} else {
		session.User = view.User
	}

	if err := s.sessionRepo.Save(ctx, session, s.sessionTTL); err != nil {
		logger.Error("[Login] error sessionRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return session, nil
}

func (s *sessionAppImpl) Current(ctx context.Context) (*model.Session, error) {
	session, err := s.sessionRepo.Load(ctx)
	if err != nil {
		logger.Error("[Current] error sessionRepo.Load", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return session, nil
}

func (s *sessionAppImpl) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		logger.Error("[Logout] error sessionRepo.Clear", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
