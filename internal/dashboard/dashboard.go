// Package dashboard is the relationship manager's view of one client: it
// fetches holdings from a Backend, values them, and serves the analytics
// computed over the latest snapshot. It also executes sells and keeps the
// realized trade log.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"fortune/internal/analytics"
	apperrors "fortune/internal/errors"
	"fortune/internal/history"
	"fortune/internal/logger"
	"fortune/internal/valuation"
)

const defaultSeriesBase = 100

// Snapshot is one valuation of a client's portfolio.
type Snapshot struct {
	ClientID string                      `json:"clientId"`
	Holdings []valuation.EnrichedHolding `json:"holdings"`
	TakenAt  time.Time                   `json:"takenAt"`
}

// Controller is safe for concurrent use. The current snapshot is replaced
// whole; readers never see a partially applied load.
type Controller struct {
	backend Backend
	feed    valuation.PriceFeed
	model   analytics.RiskModel
	history *history.Log
	now     func() time.Time
	log     *zap.SugaredLogger

	mu   sync.RWMutex
	snap *Snapshot

	srcMu sync.Mutex
	src   rand.Source
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithSeriesSource sets the random source of synthetic price series.
func WithSeriesSource(src rand.Source) Option {
	return func(c *Controller) { c.src = src }
}

// New creates a Controller.
func New(backend Backend, feed valuation.PriceFeed, model analytics.RiskModel, log *history.Log, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		feed:    feed,
		model:   model,
		history: log,
		now:     time.Now,
		log:     logger.Named("dashboard"),
		src:     rand.NewPCG(rand.Uint64(), rand.Uint64()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the risk model in use.
func (c *Controller) Model() analytics.RiskModel { return c.model }

// Portfolio fetches and values a client's holdings without touching the
// current snapshot.
func (c *Controller) Portfolio(ctx context.Context, clientID string) (*Snapshot, error) {
	raw, err := c.backend.Holdings(ctx, clientID)
	if err != nil {
		c.log.Errorw("failed to fetch holdings", "client_id", clientID, "error", err)
		return nil, err
	}

	holdings, err := valuation.Valuate(raw, c.feed)
	if err != nil {
		c.log.Warnw("holdings cannot be valuated", "client_id", clientID, "error", err)
		return nil, apperrors.WithMessage(apperrors.ErrInvalidHolding, err.Error())
	}
	return &Snapshot{ClientID: clientID, Holdings: holdings, TakenAt: c.now()}, nil
}

// LoadClient values a client's portfolio and makes it the current snapshot.
// On failure the previous snapshot stays in place.
func (c *Controller) LoadClient(ctx context.Context, clientID string) (*Snapshot, error) {
	snap, err := c.Portfolio(ctx, clientID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	c.log.Debugw("client loaded", "client_id", clientID, "holdings", len(snap.Holdings))
	return snap, nil
}

// Current returns the current snapshot, or nil before the first load.
func (c *Controller) Current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Holdings returns the valued holdings of the current snapshot.
func (c *Controller) Holdings() []valuation.EnrichedHolding {
	snap := c.Current()
	if snap == nil {
		return []valuation.EnrichedHolding{}
	}
	out := make([]valuation.EnrichedHolding, len(snap.Holdings))
	copy(out, snap.Holdings)
	return out
}

// Assess computes the risk snapshot of holdings.
func (c *Controller) Assess(holdings []valuation.EnrichedHolding) (*analytics.RiskSnapshot, error) {
	risk, err := c.model.Assess(holdings)
	if errors.Is(err, analytics.ErrInsufficientData) {
		return nil, apperrors.ErrInsufficientData
	}
	return risk, err
}

// Risk assesses the current snapshot.
func (c *Controller) Risk() (*analytics.RiskSnapshot, error) {
	return c.Assess(c.Holdings())
}

// Distribution of the current snapshot.
func (c *Controller) Distribution() analytics.Distribution {
	return analytics.Distribute(c.Holdings())
}

// Summary of the current snapshot.
func (c *Controller) Summary() analytics.Summary {
	return analytics.Summarize(c.Holdings())
}

// Performers of the current snapshot.
func (c *Controller) Performers() analytics.Performers {
	return analytics.RankPerformers(c.Holdings())
}

// Compare fetches two portfolios concurrently, values each independently and
// compares them. Either fetch failing fails the comparison.
func (c *Controller) Compare(ctx context.Context, clientA, clientB string) (*analytics.Comparison, error) {
	var (
		wg         sync.WaitGroup
		snapA      *Snapshot
		snapB      *Snapshot
		errA, errB error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		snapA, errA = c.Portfolio(ctx, clientA)
	}()
	go func() {
		defer wg.Done()
		snapB, errB = c.Portfolio(ctx, clientB)
	}()
	wg.Wait()

	if errA != nil {
		return nil, errA
	}
	if errB != nil {
		return nil, errB
	}

	cmp := c.model.Compare(clientA, snapA.Holdings, clientB, snapB.Holdings)
	return &cmp, nil
}

// PriceHistory returns the recorded series of symbol. When the backend has
// none, or fails, a synthetic weekly series is generated around base; a
// non-positive base falls back to the symbol's current price in the snapshot.
// The boolean reports whether the series is synthetic.
func (c *Controller) PriceHistory(ctx context.Context, symbol, priceRange string, base float64) (*valuation.Series, bool, error) {
	series, err := c.backend.PriceSeries(ctx, symbol, priceRange)
	if err == nil && series != nil && len(series.Prices) > 0 {
		return series, false, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrPriceSeriesNotFound) {
		c.log.Warnw("price series unavailable, using synthetic series", "symbol", symbol, "error", err)
	}

	if !(base > 0) {
		base = c.snapshotPrice(symbol)
	}

	c.srcMu.Lock()
	synthetic := valuation.SyntheticWeeklySeries(base, 0, c.src)
	c.srcMu.Unlock()
	return &synthetic, true, nil
}

func (c *Controller) snapshotPrice(symbol string) float64 {
	for _, h := range c.Holdings() {
		if strings.EqualFold(h.Asset.Symbol, symbol) && h.CurrentPrice > 0 {
			return h.CurrentPrice
		}
	}
	return defaultSeriesBase
}

// Sell closes a holding and records the realized trade. A nil customPrice
// sells at the current price shown in the snapshot, or at a fresh feed price
// when the holding is not part of it. An invalid custom price is rejected
// before the backend is called.
func (c *Controller) Sell(ctx context.Context, holdingID string, customPrice *float64) (*analytics.Trade, error) {
	if customPrice != nil && (!(*customPrice > 0) || math.IsInf(*customPrice, 0)) {
		return nil, apperrors.ErrInvalidSellPrice
	}

	var price float64
	switch shown, ok := c.shownPrice(holdingID); {
	case customPrice != nil:
		price = *customPrice
	case ok:
		price = shown
	default:
		raw, err := c.backend.Holding(ctx, holdingID)
		if err != nil {
			c.log.Errorw("failed to look up holding", "holding_id", holdingID, "error", err)
			return nil, err
		}
		price = c.feed.Next(raw)
	}

	closed, err := c.backend.CloseHolding(ctx, holdingID, price)
	if err != nil {
		c.log.Errorw("failed to close holding", "holding_id", holdingID, "error", err)
		return nil, err
	}

	trade := analytics.NewSellTrade(c.now(), closed.Asset.Symbol, closed.Quantity, closed.AvgBuyPrice, price)

	if err := c.history.Append(ctx, trade); err != nil {
		c.log.Errorw("holding closed but trade not recorded",
			"holding_id", holdingID, "symbol", trade.Symbol, "profit", trade.Profit, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("record trade: %w", err))
	}

	c.dropFromSnapshot(holdingID)
	c.log.Infow("holding sold", "holding_id", holdingID, "symbol", trade.Symbol, "qty", trade.Qty, "profit", trade.Profit)
	return &trade, nil
}

func (c *Controller) shownPrice(holdingID string) (float64, bool) {
	for _, h := range c.Holdings() {
		if h.HoldingID == holdingID {
			return h.CurrentPrice, true
		}
	}
	return 0, false
}

func (c *Controller) dropFromSnapshot(holdingID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil {
		return
	}
	kept := make([]valuation.EnrichedHolding, 0, len(c.snap.Holdings))
	for _, h := range c.snap.Holdings {
		if h.HoldingID != holdingID {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(c.snap.Holdings) {
		return
	}
	c.snap = &Snapshot{ClientID: c.snap.ClientID, Holdings: kept, TakenAt: c.snap.TakenAt}
}

// Trades returns the realized trade log, newest first.
func (c *Controller) Trades(ctx context.Context) ([]analytics.Trade, error) {
	trades, err := c.history.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return trades, nil
}

// ClearTrades empties the realized trade log.
func (c *Controller) ClearTrades(ctx context.Context) error {
	if err := c.history.Clear(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Realized aggregates the trade log as of now.
func (c *Controller) Realized(ctx context.Context, now time.Time) (*analytics.RealizedSummary, error) {
	trades, err := c.Trades(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeRealized(trades, now)
	return &summary, nil
}
