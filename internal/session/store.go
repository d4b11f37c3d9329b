// Package session keeps conversation state between HTTP turns. Only the latest
// state is stored; there is no history.
package session

import (
	"context"
	"errors"
	"time"

	"voice-listing-go/internal/cache"
	"voice-listing-go/internal/types"
)

var ErrNotFound = errors.New("session: not found")

type Store interface {
	Get(ctx context.Context, id string) (types.ConversationState, error)
	Put(ctx context.Context, id string, st types.ConversationState) error
	Delete(ctx context.Context, id string) error
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps sessions in a bounded LRU; idle sessions expire after the TTL.
type MemoryStore struct {
	items *cache.TTL[string, types.ConversationState]
}

func NewMemoryStore(size int, ttl time.Duration, opts ...cache.Option) (*MemoryStore, error) {
	items, err := cache.NewTTL[string, types.ConversationState](size, ttl, opts...)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{items: items}, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (types.ConversationState, error) {
	st, ok := m.items.Get(id)
	if !ok {
		return types.ConversationState{}, ErrNotFound
	}
	return st, nil
}

func (m *MemoryStore) Put(_ context.Context, id string, st types.ConversationState) error {
	m.items.Set(id, st)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.items.Delete(id)
	return nil
}
