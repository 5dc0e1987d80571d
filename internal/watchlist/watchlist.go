// Package watchlist keeps the manager's watched symbols and moves their
// simulated prices on every tick.
package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	apperrors "fortune/internal/errors"
	"fortune/internal/kvstore"
)

// Key is the store key of the watchlist.
const Key = "mgr_watchlist"

const (
	basePriceMin   = 100
	basePriceSpan  = 1900
	maxTickPercent = 1.0
)

// Entry is a watched symbol with its simulated price. Change is the percent
// move applied on the last tick.
type Entry struct {
	ID     string  `json:"id"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// Watchlist is safe for concurrent use. Entries are loaded from the store on
// first access and written back after every change.
type Watchlist struct {
	mu      sync.Mutex
	store   kvstore.Store
	rng     *rand.Rand
	entries []Entry
	loaded  bool
}

// New creates a Watchlist with a randomly seeded price source.
func New(store kvstore.Store) *Watchlist {
	return NewWithSource(store, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewWithSource creates a Watchlist drawing prices from src.
func NewWithSource(store kvstore.Store, src rand.Source) *Watchlist {
	return &Watchlist{store: store, rng: rand.New(src)}
}

// Entries returns a copy of the watchlist in insertion order.
func (w *Watchlist) Entries(ctx context.Context) ([]Entry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out, nil
}

// Add watches symbol at a random base price in [100, 2000).
func (w *Watchlist) Add(ctx context.Context, id, symbol string) (Entry, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Entry{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return Entry{}, err
	}
	if w.indexOf(symbol) >= 0 {
		return Entry{}, apperrors.ErrWatchlistDuplicate
	}

	entry := Entry{
		ID:     id,
		Symbol: symbol,
		Price:  math.Floor(w.rng.Float64()*basePriceSpan) + basePriceMin,
	}
	next := append(append([]Entry(nil), w.entries...), entry)
	if err := w.persist(ctx, next); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Remove stops watching symbol.
func (w *Watchlist) Remove(ctx context.Context, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return err
	}
	i := w.indexOf(symbol)
	if i < 0 {
		return apperrors.ErrWatchlistItemNotFound
	}

	next := make([]Entry, 0, len(w.entries)-1)
	next = append(next, w.entries[:i]...)
	next = append(next, w.entries[i+1:]...)
	return w.persist(ctx, next)
}

// Tick moves every price by a uniform draw in (-1%, +1%) and records the move
// as the entry's change. An empty watchlist is left alone.
func (w *Watchlist) Tick(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureLoaded(ctx); err != nil {
		return err
	}
	if len(w.entries) == 0 {
		return nil
	}

	next := make([]Entry, len(w.entries))
	for i, e := range w.entries {
		move := (w.rng.Float64()*2 - 1) * maxTickPercent
		e.Price *= 1 + move/100
		e.Change = move
		next[i] = e
	}
	return w.persist(ctx, next)
}

func (w *Watchlist) indexOf(symbol string) int {
	for i, e := range w.entries {
		if e.Symbol == symbol {
			return i
		}
	}
	return -1
}

func (w *Watchlist) ensureLoaded(ctx context.Context) error {
	if w.loaded {
		return nil
	}

	raw, err := w.store.Load(ctx, Key)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		w.entries = []Entry{}
	case err != nil:
		return fmt.Errorf("load watchlist: %w", err)
	default:
		var entries []Entry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("decode watchlist: %w", err)
		}
		if entries == nil {
			entries = []Entry{}
		}
		w.entries = entries
	}
	w.loaded = true
	return nil
}

// persist writes next to the store and only then makes it current.
func (w *Watchlist) persist(ctx context.Context, next []Entry) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}
	if err := w.store.Save(ctx, Key, raw); err != nil {
		return fmt.Errorf("save watchlist: %w", err)
	}
	w.entries = next
	return nil
}
