package dashboard

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune/internal/analytics"
	apperrors "fortune/internal/errors"
	"fortune/internal/history"
	"fortune/internal/kvstore"
	"fortune/internal/logger"
	"fortune/internal/valuation"
)

func init() {
	logger.Init("test")
}

type fakeBackend struct {
	mu       sync.Mutex
	holdings map[string][]valuation.RawHolding
	series   map[string]*valuation.Series
	fail     error
	closed   []string
	closedAt []float64
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	delay    time.Duration
}

func (f *fakeBackend) Holdings(_ context.Context, clientID string) ([]valuation.RawHolding, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	time.Sleep(f.delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	h, ok := f.holdings[clientID]
	if !ok {
		return nil, apperrors.ErrClientNotFound
	}
	return append([]valuation.RawHolding(nil), h...), nil
}

func (f *fakeBackend) Holding(_ context.Context, holdingID string) (valuation.RawHolding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, hs := range f.holdings {
		for _, h := range hs {
			if h.HoldingID == holdingID {
				return h, nil
			}
		}
	}
	return valuation.RawHolding{}, apperrors.ErrHoldingNotFound
}

func (f *fakeBackend) CloseHolding(_ context.Context, holdingID string, price float64) (valuation.RawHolding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for client, hs := range f.holdings {
		for i, h := range hs {
			if h.HoldingID == holdingID {
				f.holdings[client] = append(hs[:i:i], hs[i+1:]...)
				f.closed = append(f.closed, holdingID)
				f.closedAt = append(f.closedAt, price)
				return h, nil
			}
		}
	}
	return valuation.RawHolding{}, apperrors.ErrHoldingNotFound
}

func (f *fakeBackend) PriceSeries(_ context.Context, symbol, _ string) (*valuation.Series, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if s, ok := f.series[symbol]; ok {
		return s, nil
	}
	return nil, apperrors.ErrPriceSeriesNotFound
}

func raw(id, symbol string, category valuation.Category, qty, avg float64) valuation.RawHolding {
	return valuation.RawHolding{
		HoldingID:   id,
		Quantity:    qty,
		AvgBuyPrice: avg,
		Asset:       valuation.Asset{AssetID: "a-" + symbol, Symbol: symbol, AssetName: symbol, Category: category},
	}
}

var fixedNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

func newController(t *testing.T, backend *fakeBackend, feed valuation.PriceFeed) *Controller {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	log := history.New(kvstore.NewRedisStoreFromClient(client), 0)
	return New(backend, feed, analytics.DefaultRiskModel(), log,
		WithClock(func() time.Time { return fixedNow }),
		WithSeriesSource(rand.NewPCG(7, 7)))
}

func sampleBackend() *fakeBackend {
	return &fakeBackend{
		holdings: map[string][]valuation.RawHolding{
			"c1": {
				raw("h1", "TCS", valuation.CategoryNSE, 10, 100),
				raw("h2", "GOLD", valuation.CategoryCommodity, 5, 100),
			},
			"c2": {
				raw("h3", "SBI_BLUECHIP", valuation.CategoryMF, 20, 50),
			},
			"empty": {},
		},
	}
}

func TestLoadClient(t *testing.T) {
	backend := sampleBackend()
	ctrl := newController(t, backend, valuation.FixedFeed{"TCS": 100, "GOLD": 100})

	assert.Nil(t, ctrl.Current())
	assert.Empty(t, ctrl.Holdings())
	_, err := ctrl.Risk()
	assert.ErrorIs(t, err, apperrors.ErrInsufficientData)

	snap, err := ctrl.LoadClient(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", snap.ClientID)
	assert.Equal(t, fixedNow, snap.TakenAt)
	require.Len(t, ctrl.Holdings(), 2)

	risk, err := ctrl.Risk()
	require.NoError(t, err)
	assert.InDelta(t, 1000.0/1500*1.0+500.0/1500*1.5, risk.Beta, 1e-9)
	assert.Equal(t, analytics.RiskModerate, risk.RiskLevel)

	sum := ctrl.Summary()
	assert.InDelta(t, 1500, sum.MarketValue, 1e-9)
	assert.InDelta(t, 0, sum.UnrealizedPnL, 1e-9)

	dist := ctrl.Distribution()
	assert.Len(t, dist.Neutral, 2)
}

func TestLoadClient_FailureKeepsSnapshot(t *testing.T) {
	backend := sampleBackend()
	ctrl := newController(t, backend, valuation.FixedFeed{})

	_, err := ctrl.LoadClient(context.Background(), "c1")
	require.NoError(t, err)

	_, err = ctrl.LoadClient(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrClientNotFound)
	assert.Equal(t, "c1", ctrl.Current().ClientID)

	backend.fail = errors.New("connection refused")
	_, err = ctrl.LoadClient(context.Background(), "c2")
	assert.Error(t, err)
	assert.Equal(t, "c1", ctrl.Current().ClientID)
}

func TestLoadClient_InvalidHolding(t *testing.T) {
	backend := sampleBackend()
	backend.holdings["bad"] = []valuation.RawHolding{raw("hx", "X", valuation.CategoryNSE, 1, 0)}
	ctrl := newController(t, backend, valuation.FixedFeed{})

	_, err := ctrl.LoadClient(context.Background(), "bad")
	assert.ErrorIs(t, err, apperrors.ErrInvalidHolding)
	assert.Nil(t, ctrl.Current())
}

func TestLoadClient_EmptyPortfolio(t *testing.T) {
	ctrl := newController(t, sampleBackend(), valuation.FixedFeed{})

	_, err := ctrl.LoadClient(context.Background(), "empty")
	require.NoError(t, err)
	_, err = ctrl.Risk()
	assert.ErrorIs(t, err, apperrors.ErrInsufficientData)
	assert.Zero(t, ctrl.Summary().UnrealizedPct)
}

func TestCompare_Concurrent(t *testing.T) {
	backend := sampleBackend()
	backend.delay = 50 * time.Millisecond
	ctrl := newController(t, backend, valuation.FixedFeed{})

	cmp, err := ctrl.Compare(context.Background(), "c1", "c2")
	require.NoError(t, err)
	assert.Equal(t, "c1", cmp.A.Label)
	assert.Equal(t, "c2", cmp.B.Label)
	assert.InDelta(t, 500, cmp.A.CommodityValue, 1e-9)
	assert.InDelta(t, 0.7, cmp.B.Beta, 1e-9)
	assert.Equal(t, int32(2), backend.maxSeen.Load(), "both portfolios fetched together")

	assert.Nil(t, ctrl.Current(), "comparison does not replace the snapshot")
}

func TestCompare_OneSideFails(t *testing.T) {
	ctrl := newController(t, sampleBackend(), valuation.FixedFeed{})

	_, err := ctrl.Compare(context.Background(), "c1", "nobody")
	assert.ErrorIs(t, err, apperrors.ErrClientNotFound)
}

func TestPriceHistory(t *testing.T) {
	backend := sampleBackend()
	backend.series = map[string]*valuation.Series{
		"TCS": {Labels: []string{"2026-05-01"}, Prices: []float64{3900}},
	}
	ctrl := newController(t, backend, valuation.FixedFeed{"GOLD": 2300})
	ctx := context.Background()

	series, synthetic, err := ctrl.PriceHistory(ctx, "TCS", "1M", 0)
	require.NoError(t, err)
	assert.False(t, synthetic)
	assert.Equal(t, []float64{3900}, series.Prices)

	series, synthetic, err = ctrl.PriceHistory(ctx, "INFY", "1M", 1500)
	require.NoError(t, err)
	assert.True(t, synthetic)
	require.Len(t, series.Prices, 12)
	assert.Equal(t, 1500.0, series.Prices[0])
	for _, p := range series.Prices {
		assert.GreaterOrEqual(t, p, 0.1)
	}

	// Without a base the loaded snapshot's price is used.
	_, err = ctrl.LoadClient(ctx, "c1")
	require.NoError(t, err)
	series, synthetic, err = ctrl.PriceHistory(ctx, "gold", "", 0)
	require.NoError(t, err)
	assert.True(t, synthetic)
	assert.Equal(t, 2300.0, series.Prices[0])

	backend.fail = errors.New("timeout")
	series, synthetic, err = ctrl.PriceHistory(ctx, "UNKNOWN", "", 0)
	require.NoError(t, err)
	assert.True(t, synthetic)
	assert.Equal(t, 100.0, series.Prices[0])
}

func TestSell_CustomPrice(t *testing.T) {
	backend := &fakeBackend{holdings: map[string][]valuation.RawHolding{
		"c1": {raw("h1", "TCS", valuation.CategoryNSE, 10, 100), raw("h2", "INFY", valuation.CategoryNSE, 1, 50)},
	}}
	ctrl := newController(t, backend, valuation.FixedFeed{})
	ctx := context.Background()
	_, err := ctrl.LoadClient(ctx, "c1")
	require.NoError(t, err)

	price := 120.0
	trade, err := ctrl.Sell(ctx, "h1", &price)
	require.NoError(t, err)
	assert.InDelta(t, 200, trade.Profit, 1e-9)
	assert.Equal(t, analytics.TradeSell, trade.Type)
	assert.Equal(t, "TCS", trade.Symbol)
	assert.Equal(t, fixedNow, trade.Date)

	assert.Equal(t, []string{"h1"}, backend.closed)
	require.Len(t, ctrl.Holdings(), 1, "sold holding leaves the snapshot")

	trades, err := ctrl.Trades(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	realized, err := ctrl.Realized(ctx, fixedNow)
	require.NoError(t, err)
	assert.InDelta(t, 200, realized.TotalRealized, 1e-9)
	assert.Equal(t, 1, realized.Wins)

	require.NoError(t, ctrl.ClearTrades(ctx))
	trades, err = ctrl.Trades(ctx)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestSell_FeedPrice(t *testing.T) {
	backend := sampleBackend()
	ctrl := newController(t, backend, valuation.FixedFeed{"GOLD": 90})

	trade, err := ctrl.Sell(context.Background(), "h2", nil)
	require.NoError(t, err)
	assert.Equal(t, 90.0, trade.Sell)
	assert.InDelta(t, -50, trade.Profit, 1e-9)
	assert.Equal(t, []float64{90}, backend.closedAt, "backend books the same price")
}

func TestSell_UsesDisplayedPrice(t *testing.T) {
	backend := sampleBackend()
	ctrl := newController(t, backend, valuation.NewSeededNoiseFeed(42))
	ctx := context.Background()

	_, err := ctrl.LoadClient(ctx, "c1")
	require.NoError(t, err)
	var shown valuation.EnrichedHolding
	for _, h := range ctrl.Holdings() {
		if h.HoldingID == "h2" {
			shown = h
		}
	}
	require.Equal(t, "h2", shown.HoldingID)

	trade, err := ctrl.Sell(ctx, "h2", nil)
	require.NoError(t, err)
	assert.Equal(t, shown.CurrentPrice, trade.Sell)
	assert.InDelta(t, shown.PnL, trade.Profit, 1e-9)
	assert.Equal(t, []float64{shown.CurrentPrice}, backend.closedAt)
}

func TestSell_InvalidPriceLeavesStateAlone(t *testing.T) {
	backend := sampleBackend()
	ctrl := newController(t, backend, valuation.FixedFeed{})
	ctx := context.Background()

	for _, p := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		price := p
		_, err := ctrl.Sell(ctx, "h1", &price)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSellPrice, "price %v", p)
	}

	assert.Empty(t, backend.closed)
	trades, err := ctrl.Trades(ctx)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestSell_UnknownHolding(t *testing.T) {
	ctrl := newController(t, sampleBackend(), valuation.FixedFeed{})

	_, err := ctrl.Sell(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, apperrors.ErrHoldingNotFound)
}
