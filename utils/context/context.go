package context

import (
	"context"

	"github.com/solmarket/marketplace-client/constant"
	"github.com/solmarket/marketplace-client/model"
)

// WithSession attaches a read-only session to the context. Application
// layers receive identity this way instead of reading ambient storage.
func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, constant.SessionKey, session)
}

// GetSession extracts the session from the context, if any.
func GetSession(ctx context.Context) (*model.Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return nil, false
	}
	session, ok := v.(*model.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, ok
}
