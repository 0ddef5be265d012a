package session

import (
	"context"
	"sync"
	"time"

	"github.com/solmarket/marketplace-client/model"
)

type memory struct {
	mu      sync.Mutex
	session *model.Session
}

// NewMemoryRepository returns an in-process session store.
func NewMemoryRepository() SessionRepository {
	return &memory{}
}

func (m *memory) Save(_ context.Context, session *model.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	return nil
}

func (m *memory) Load(_ context.Context) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, nil
}

func (m *memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
