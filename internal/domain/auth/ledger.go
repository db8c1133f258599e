package auth

import (
	"context"
	"sync"
)

// Ledger tracks which refresh tokens are currently live. Tokens are stored
// as opaque strings; nothing here parses them.
//
// Rotate is the compound revoke-old-record-new step of a refresh exchange.
// It must be atomic with respect to concurrent rotations of the same old
// token: exactly one caller wins, everyone else sees rotated=false.
type Ledger interface {
	Add(ctx context.Context, token string) error
	Revoke(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
	Rotate(ctx context.Context, oldToken, newToken string) (bool, error)
}

// MemoryLedger is the default in-process implementation. It is rebuilt
// empty on restart, which invalidates every previously issued refresh
// token; that is the documented tradeoff, not a bug.
type MemoryLedger struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		tokens: make(map[string]struct{}),
	}
}

func (l *MemoryLedger) Add(_ context.Context, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[token] = struct{}{}
	return nil
}

func (l *MemoryLedger) Revoke(_ context.Context, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.tokens, token)
	return nil
}

func (l *MemoryLedger) Contains(_ context.Context, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.tokens[token]
	return ok, nil
}

func (l *MemoryLedger) Rotate(_ context.Context, oldToken, newToken string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.tokens[oldToken]; !ok {
		return false, nil
	}
	delete(l.tokens, oldToken)
	l.tokens[newToken] = struct{}{}
	return true, nil
}
