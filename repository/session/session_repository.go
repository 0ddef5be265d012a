// Package session persists the signed-in identity and bearer token
// between client runs. The redis implementation mirrors the backend's
// session storage; the memory implementation serves tests and
// redis-less runs.
package session

import (
	"context"
	"time"

	"github.com/solmarket/marketplace-client/model"
)

type SessionRepository interface {
	Save(ctx context.Context, session *model.Session, ttl time.Duration) error
	Load(ctx context.Context) (*model.Session, error)
	Clear(ctx context.Context) error
}
