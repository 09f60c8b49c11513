// Package denylist remembers revoked session token ids until the token would
// have expired anyway.
package denylist

import (
	"context"
	"sync"
	"time"
)

type Denylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Memory is the in-process fallback used when Redis is not configured.
// Revocations do not survive a restart and are not shared between replicas.
type Memory struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if !expiresAt.After(now) {
		return nil
	}
	m.entries[tokenID] = expiresAt
	for id, until := range m.entries {
		if !until.After(now) {
			delete(m.entries, id)
		}
	}
	return nil
}

func (m *Memory) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	until, ok := m.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(m.now()) {
		delete(m.entries, tokenID)
		return false, nil
	}
	return true, nil
}
