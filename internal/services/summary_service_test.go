package services

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fortune/internal/analytics"
	"fortune/internal/models"
	"fortune/internal/testutil"
	"fortune/internal/valuation"
)

func TestLatestPrices(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewMarketService(db)

	gold := testutil.CreateTestAsset(t, db, valuation.CategoryCommodity, 2300)
	tcs := testutil.CreateTestAsset(t, db, valuation.CategoryNSE, 3500)
	testutil.CreateTestAsset(t, db, valuation.CategoryMF, 40)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestPrice(t, db, gold.ID, 2350, base)
	testutil.CreateTestPrice(t, db, gold.ID, 2410, base.Add(24*time.Hour))
	testutil.CreateTestPrice(t, db, tcs.ID, 3600, base)

	feed, err := svc.LatestPrices()
	testutil.AssertNoError(t, err)
	if len(feed) != 2 {
		t.Fatalf("expected prices for 2 assets, got %v", feed)
	}
	testutil.AssertFloat(t, "gold", feed[gold.Symbol], 2410)
	testutil.AssertFloat(t, "tcs", feed[tcs.Symbol], 3600)
}

func newSummaryFixture(t *testing.T) (SummaryServicer, *portfolioService, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	market := NewMarketService(db)
	portfolio := &portfolioService{db: db, now: func() time.Time { return time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC) }}
	svc := NewSummaryService(db, market, NewTransactionService(db))
	return svc, portfolio, func() { testutil.TeardownTestDB(t, db) }
}

func TestClientSummary(t *testing.T) {
	svc, portfolio, done := newSummaryFixture(t)
	defer done()
	db := portfolio.db

	client := testutil.CreateTestClient(t, db)
	stock := testutil.CreateTestAsset(t, db, valuation.CategoryNSE, 100)
	gold := testutil.CreateTestAsset(t, db, valuation.CategoryCommodity, 200)
	testutil.CreateTestHolding(t, db, client.ID, stock.ID, 10, 100)
	testutil.CreateTestHolding(t, db, client.ID, gold.ID, 5, 200)
	testutil.CreateTestPrice(t, db, stock.ID, 130, time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC))

	summary, err := svc.ClientSummary(client.ID)
	testutil.AssertNoError(t, err)

	// stock marked to 130, gold has no price and stays at cost
	testutil.AssertFloat(t, "portfolioValue", summary.PortfolioValue, 2300)
	testutil.AssertFloat(t, "investedAmount", summary.InvestedAmount, 2000)
	testutil.AssertFloat(t, "totalGain", summary.TotalGain, 300)
	testutil.AssertFloat(t, "totalReturns", summary.TotalReturns, 15)
	vol := 1300.0/2300*18 + 1000.0/2300*10
	testutil.AssertFloat(t, "sharpeRatio", summary.SharpeRatio, (15-analytics.RiskFreeRatePct)/vol)
	if summary.AssetCount != 2 || summary.FullName != client.FullName {
		t.Errorf("unexpected summary: %+v", summary)
	}

	_, err = svc.ClientSummary("missing")
	testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
}

func TestClientSummary_EmptyBook(t *testing.T) {
	svc, portfolio, done := newSummaryFixture(t)
	defer done()
	client := testutil.CreateTestClient(t, portfolio.db)

	summary, err := svc.ClientSummary(client.ID)
	testutil.AssertNoError(t, err)
	if summary.PortfolioValue != 0 || summary.TotalReturns != 0 || summary.SharpeRatio != 0 || summary.AssetCount != 0 {
		t.Errorf("expected zero performance, got %+v", summary.ClientPerformance)
	}
}

func TestFirmSummary(t *testing.T) {
	svc, portfolio, done := newSummaryFixture(t)
	defer done()
	db := portfolio.db
	now := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)

	stock := testutil.CreateTestAsset(t, db, valuation.CategoryNSE, 100)
	fund := testutil.CreateTestAsset(t, db, valuation.CategoryMF, 10)
	testutil.CreateTestPrice(t, db, stock.ID, 110, now.Add(-time.Hour))

	var clients []*models.Client
	for i := 0; i < 7; i++ {
		clients = append(clients, testutil.CreateTestClient(t, db))
	}
	// client i holds i+1 shares bought at a falling cost, so later clients
	// have higher returns; the last client holds only the fund.
	for i, c := range clients[:6] {
		cost := decimal.NewFromInt(int64(100 - 5*i))
		_, err := portfolio.Buy(c.ID, stock.ID, decimal.NewFromInt(int64(i+1)), &cost)
		testutil.AssertNoError(t, err)
	}
	_, err := portfolio.Buy(clients[6].ID, fund.ID, decimal.NewFromInt(100), nil)
	testutil.AssertNoError(t, err)

	summary, err := svc.FirmSummary(now)
	testutil.AssertNoError(t, err)

	if summary.ActiveClients != 7 {
		t.Errorf("expected 7 clients, got %d", summary.ActiveClients)
	}
	testutil.AssertFloat(t, "totalAUM", summary.TotalAUM, 110*21+1000)
	if summary.TransactionsToday != 7 {
		t.Errorf("expected 7 transactions today, got %d", summary.TransactionsToday)
	}
	if len(summary.RecentTransactions) != 7 {
		t.Errorf("expected 7 recent transactions, got %d", len(summary.RecentTransactions))
	}

	if len(summary.TopClients) != 5 {
		t.Fatalf("expected top 5 clients, got %d", len(summary.TopClients))
	}
	if summary.TopClients[0].ID != clients[5].ID {
		t.Errorf("expected the cheapest buyer on top, got %s", summary.TopClients[0].FullName)
	}
	for i := 1; i < len(summary.TopClients); i++ {
		if summary.TopClients[i].TotalReturns > summary.TopClients[i-1].TotalReturns {
			t.Errorf("top clients not ordered by returns at %d", i)
		}
	}

	var sum float64
	for _, pct := range summary.AssetAllocation {
		sum += pct
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("allocation should total 100%%, got %v", summary.AssetAllocation)
	}
	testutil.AssertFloat(t, "fund share", summary.AssetAllocation[valuation.CategoryMF], 1000.0/(110*21+1000)*100)
}

func TestFirmSummary_NoClients(t *testing.T) {
	svc, _, done := newSummaryFixture(t)
	defer done()

	summary, err := svc.FirmSummary(time.Now())
	testutil.AssertNoError(t, err)
	if summary.ActiveClients != 0 || summary.TotalAUM != 0 || summary.AvgReturns != 0 {
		t.Errorf("expected zero KPIs, got %+v", summary.FirmKPIs)
	}
	if summary.TopClients == nil || summary.RecentTransactions == nil || summary.AssetAllocation == nil {
		t.Error("expected empty, non-nil collections")
	}
}
