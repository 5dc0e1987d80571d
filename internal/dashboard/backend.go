package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"fortune/internal/services"
	"fortune/internal/valuation"
)

// Backend is the portfolio collaborator the dashboard reads from and trades
// through. *client.Client implements it over HTTP; LocalBackend in process.
type Backend interface {
	Holdings(ctx context.Context, clientID string) ([]valuation.RawHolding, error)
	Holding(ctx context.Context, holdingID string) (valuation.RawHolding, error)
	// CloseHolding closes a position at price and returns it as it was.
	CloseHolding(ctx context.Context, holdingID string, price float64) (valuation.RawHolding, error)
	PriceSeries(ctx context.Context, symbol, priceRange string) (*valuation.Series, error)
}

// LocalBackend serves the dashboard straight from the services layer.
type LocalBackend struct {
	portfolio services.PortfolioServicer
	market    services.MarketServicer
}

// NewLocalBackend creates a LocalBackend.
func NewLocalBackend(portfolio services.PortfolioServicer, market services.MarketServicer) *LocalBackend {
	return &LocalBackend{portfolio: portfolio, market: market}
}

// Holdings implements Backend.
func (b *LocalBackend) Holdings(_ context.Context, clientID string) ([]valuation.RawHolding, error) {
	return b.portfolio.GetHoldings(clientID)
}

// Holding implements Backend.
func (b *LocalBackend) Holding(_ context.Context, holdingID string) (valuation.RawHolding, error) {
	h, err := b.portfolio.GetHolding(holdingID)
	if err != nil {
		return valuation.RawHolding{}, err
	}
	return h.ToRaw(), nil
}

// CloseHolding implements Backend.
func (b *LocalBackend) CloseHolding(_ context.Context, holdingID string, price float64) (valuation.RawHolding, error) {
	p := decimal.NewFromFloat(price)
	h, err := b.portfolio.Close(holdingID, &p)
	if err != nil {
		return valuation.RawHolding{}, err
	}
	return h.ToRaw(), nil
}

// PriceSeries implements Backend.
func (b *LocalBackend) PriceSeries(_ context.Context, symbol, priceRange string) (*valuation.Series, error) {
	return b.market.GetPriceSeries(symbol, priceRange)
}
