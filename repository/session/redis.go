package session

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/solmarket/marketplace-client/model"
)

const sessionKey = "session:current"

type redis struct {
	client *goredis.Client
}

// NewRedisRepository returns a redis-backed session store. A nil client
// degrades every operation to a no-op so the CLI still runs without a
// local redis.
func NewRedisRepository(client *goredis.Client) SessionRepository {
	return &redis{client: client}
}

func (r *redis) Save(ctx context.Context, session *model.Session, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey, string(data), ttl).Err()
}

func (r *redis) Load(ctx context.Context) (*model.Session, error) {
	if r.client == nil {
		return nil, nil
	}
	val, err := r.client.Get(ctx, sessionKey).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *redis) Clear(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, sessionKey).Err()
}
