package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/solmarket/marketplace-client/model"
	"github.com/solmarket/marketplace-client/repository/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	repo := session.NewMemoryRepository()
	ctx := context.Background()

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "fresh store has no session")

	stored := &model.Session{User: model.User{ID: "u1", Nickname: "alice"}, Token: "tkn"}
	require.NoError(t, repo.Save(ctx, stored, time.Hour))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)

	require.NoError(t, repo.Clear(ctx))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
