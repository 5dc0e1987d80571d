// Package history keeps the realized trade log, newest first.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"fortune/internal/analytics"
	"fortune/internal/kvstore"
)

// Key is the store key of the trade log.
const Key = "mgr_history"

// Log is a persisted, newest-first list of realized trades.
type Log struct {
	mu    sync.Mutex
	store kvstore.Store
	cap   int
}

// New creates a Log over store. A positive limit drops the oldest trades
// beyond it; 0 keeps everything.
func New(store kvstore.Store, limit int) *Log {
	if limit < 0 {
		limit = 0
	}
	return &Log{store: store, cap: limit}
}

// Append records a trade at the head of the log.
func (l *Log) Append(ctx context.Context, trade analytics.Trade) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	trades, err := l.load(ctx)
	if err != nil {
		return err
	}

	trades = append([]analytics.Trade{trade}, trades...)
	if l.cap > 0 && len(trades) > l.cap {
		trades = trades[:l.cap]
	}
	return l.save(ctx, trades)
}

// List returns every trade, newest first.
func (l *Log) List(ctx context.Context) ([]analytics.Trade, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// Clear removes the whole log.
func (l *Log) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (l *Log) load(ctx context.Context) ([]analytics.Trade, error) {
	raw, err := l.store.Load(ctx, Key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []analytics.Trade{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var trades []analytics.Trade
	if err := json.Unmarshal(raw, &trades); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if trades == nil {
		trades = []analytics.Trade{}
	}
	return trades, nil
}

func (l *Log) save(ctx context.Context, trades []analytics.Trade) error {
	raw, err := json.Marshal(trades)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := l.store.Save(ctx, Key, raw); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
