package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fortune/internal/analytics"
	"fortune/internal/assistant"
	"fortune/internal/dashboard"
	"fortune/internal/handlers"
	"fortune/internal/history"
	"fortune/internal/kvstore"
	"fortune/internal/logger"
	"fortune/internal/middleware"
	"fortune/internal/services"
	"fortune/internal/testutil"
	"fortune/internal/validator"
	"fortune/internal/valuation"
	"fortune/internal/watchlist"
)

const testPipelineKey = "pipeline-secret"

// testApp holds the full application stack backed by an in-memory SQLite.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)

	assetService := services.NewAssetService(db)
	clientService := services.NewClientService(db)
	portfolioService := services.NewPortfolioService(db)
	marketService := services.NewMarketService(db)
	auditService := services.NewAuditService(db)
	transactionService := services.NewTransactionService(db)
	summaryService := services.NewSummaryService(db, marketService, transactionService)
	if _, err := assetService.SeedDefaults(); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	store := kvstore.NewSQLStore(db)
	feed := valuation.FixedFeed{"GOLD": 2500, "TCS": 3600}
	ctrl := dashboard.New(dashboard.NewLocalBackend(portfolioService, marketService), feed,
		analytics.DefaultRiskModel(), history.New(store, 0))

	router := NewRouter(Handlers{
		Asset:     handlers.NewAssetHandler(assetService),
		Client:    handlers.NewClientHandler(clientService, auditService),
		Portfolio: handlers.NewPortfolioHandler(portfolioService, ctrl, auditService),
		Dashboard: handlers.NewDashboardHandler(ctrl),
		Market:    handlers.NewMarketHandler(marketService, assetService, ctrl, auditService),
		Watchlist: handlers.NewWatchlistHandler(watchlist.New(store)),
		History:   handlers.NewHistoryHandler(ctrl),
		Chat:      handlers.NewChatHandler(assistant.NewService(nil, ctrl)),
		Ledger:    handlers.NewTransactionHandler(transactionService),
		Summary:   handlers.NewSummaryHandler(summaryService),
	}, Options{PipelineAPIKey: testPipelineKey})

	return &testApp{DB: db, Router: router}
}

func (app *testApp) request(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func (app *testApp) createClient(t *testing.T, email string) string {
	t.Helper()
	rec := app.request("POST", "/api/clients", fmt.Sprintf(`{"fullName":"Test Client","email":%q}`, email), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["client"].(map[string]interface{})["id"].(string)
}

func (app *testApp) assetID(t *testing.T, category string, symbol string) string {
	t.Helper()
	rec := app.request("GET", "/api/assets?category="+category, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list assets failed: %d %s", rec.Code, rec.Body.String())
	}
	for _, a := range parseJSON(t, rec)["data"].([]interface{}) {
		asset := a.(map[string]interface{})
		if asset["symbol"] == symbol {
			return asset["id"].(string)
		}
	}
	t.Fatalf("asset %s not in catalog", symbol)
	return ""
}

func (app *testApp) buy(t *testing.T, clientID, assetID, quantity string) *httptest.ResponseRecorder {
	t.Helper()
	return app.request("POST", "/api/portfolio/buy",
		fmt.Sprintf(`{"clientId":%q,"assetId":%q,"quantity":%s}`, clientID, assetID, quantity), nil)
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPortfolioFlow_BuyValueSell(t *testing.T) {
	app := setupApp(t)
	clientID := app.createClient(t, "flow@test.com")
	gold := app.assetID(t, "COMMODITY", "GOLD")
	tcs := app.assetID(t, "NSE", "TCS")

	// Step 1: buy at reference prices (GOLD 2300, TCS 3900)
	if rec := app.buy(t, clientID, gold, "2"); rec.Code != http.StatusCreated {
		t.Fatalf("buy GOLD: %d %s", rec.Code, rec.Body.String())
	}
	if rec := app.buy(t, clientID, tcs, "1"); rec.Code != http.StatusCreated {
		t.Fatalf("buy TCS: %d %s", rec.Code, rec.Body.String())
	}

	// Step 2: raw holdings come back as a bare array
	rec := app.request("GET", "/api/portfolio/"+clientID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var holdings []valuation.RawHolding
	if err := json.Unmarshal(rec.Body.Bytes(), &holdings); err != nil || len(holdings) != 2 {
		t.Fatalf("expected 2 raw holdings, got %s (%v)", rec.Body.String(), err)
	}

	// Step 3: valuation at GOLD 2500, TCS 3600
	rec = app.request("GET", "/api/portfolio/"+clientID+"/valuation", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["invested"].(float64) != 8500 || summary["mktValue"].(float64) != 8600 {
		t.Errorf("unexpected summary %v", summary)
	}

	// Step 4: risk
	rec = app.request("GET", "/api/portfolio/"+clientID+"/risk", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	risk := parseJSON(t, rec)["risk"].(map[string]interface{})
	if risk["totalValue"].(float64) != 8600 {
		t.Errorf("expected totalValue 8600, got %v", risk["totalValue"])
	}

	// Step 5: sell GOLD at a custom price
	goldHolding := holdings[0].HoldingID
	if holdings[0].Asset.Symbol != "GOLD" {
		goldHolding = holdings[1].HoldingID
	}
	rec = app.request("POST", "/api/portfolio/"+goldHolding+"/sell", `{"price":2400}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	trade := parseJSON(t, rec)["trade"].(map[string]interface{})
	if trade["profit"].(float64) != 200 {
		t.Errorf("expected profit 200, got %v", trade["profit"])
	}

	// Step 6: the trade is in the history and the holding is gone
	rec = app.request("GET", "/api/history", "", nil)
	if n := len(parseJSON(t, rec)["trades"].([]interface{})); n != 1 {
		t.Errorf("expected 1 trade, got %d", n)
	}
	rec = app.request("GET", "/api/history/summary", "", nil)
	if got := parseJSON(t, rec)["summary"].(map[string]interface{})["totalRealized"].(float64); got != 200 {
		t.Errorf("expected 200 realized, got %v", got)
	}
	rec = app.request("POST", "/api/portfolio/"+goldHolding+"/sell", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 selling twice, got %d", rec.Code)
	}

	// Step 7: closing without pricing leaves the history untouched
	rec = app.request("GET", "/api/portfolio/"+clientID, "", nil)
	_ = json.Unmarshal(rec.Body.Bytes(), &holdings)
	rec = app.request("DELETE", "/api/portfolio/"+holdings[0].HoldingID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["holdingId"] != holdings[0].HoldingID {
		t.Errorf("expected the closed raw holding, got %s", rec.Body.String())
	}
	rec = app.request("GET", "/api/history", "", nil)
	if n := len(parseJSON(t, rec)["trades"].([]interface{})); n != 1 {
		t.Errorf("expected history unchanged, got %d trades", n)
	}

	// Step 8: an empty portfolio has no risk
	rec = app.request("GET", "/api/portfolio/"+clientID+"/risk", "", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLedgerAndSummaryFlow(t *testing.T) {
	app := setupApp(t)
	clientID := app.createClient(t, "ledger@test.com")
	gold := app.assetID(t, "COMMODITY", "GOLD")
	tcs := app.assetID(t, "NSE", "TCS")

	app.buy(t, clientID, gold, "2")
	rec := app.buy(t, clientID, tcs, "1")
	tcsHolding := parseJSON(t, rec)["holding"].(map[string]interface{})["id"].(string)

	rec = app.request("GET", "/api/portfolio/holdings/"+tcsHolding, "", nil)
	if rec.Code != http.StatusOK || parseJSON(t, rec)["avgBuyPrice"].(float64) != 3900 {
		t.Fatalf("expected the TCS holding, got %d %s", rec.Code, rec.Body.String())
	}

	// Step 1: a priced close books a SELL at that price
	rec = app.request("DELETE", "/api/portfolio/"+tcsHolding+"?price=4000", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/transactions?clientId="+clientID, "", nil)
	page := parseJSON(t, rec)
	if page["total_items"].(float64) != 3 {
		t.Fatalf("expected 3 ledger entries, got %v", page)
	}
	latest := page["data"].([]interface{})[0].(map[string]interface{})
	if latest["type"] != "SELL" || latest["asset"] != "TCS" {
		t.Errorf("expected the TCS sale first, got %v", latest)
	}

	rec = app.request("GET", "/api/clients/"+clientID+"/transactions", "", nil)
	if n := len(parseJSON(t, rec)["transactions"].([]interface{})); n != 3 {
		t.Errorf("expected 3 client transactions, got %d", n)
	}

	// Step 2: without recorded prices the remaining GOLD stays at cost
	rec = app.request("GET", "/api/clients/"+clientID+"/summary", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["client"].(map[string]interface{})
	if summary["portfolioValue"].(float64) != 4600 || summary["assetCount"].(float64) != 1 || summary["totalReturns"].(float64) != 0 {
		t.Errorf("unexpected client summary %v", summary)
	}

	rec = app.request("GET", "/api/dashboard/summary", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	firm := parseJSON(t, rec)
	if firm["totalAUM"].(float64) != 4600 || firm["activeClients"].(float64) != 1 {
		t.Errorf("unexpected firm summary %v", firm)
	}
	if alloc := firm["assetAllocation"].(map[string]interface{}); alloc["COMMODITY"].(float64) != 100 {
		t.Errorf("expected all value in commodities, got %v", alloc)
	}
	if n := len(firm["recentTransactions"].([]interface{})); n != 3 {
		t.Errorf("expected 3 recent transactions, got %d", n)
	}

	// Step 3: deleting the client removes their book and ledger
	rec = app.request("DELETE", "/api/clients/"+clientID, "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/clients/"+clientID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/transactions", "", nil)
	if parseJSON(t, rec)["total_items"].(float64) != 0 {
		t.Errorf("expected an empty ledger, got %s", rec.Body.String())
	}
	// the email is free again
	app.createClient(t, "ledger@test.com")
}

func TestPortfolioFlow_CategoryLimit(t *testing.T) {
	app := setupApp(t)
	clientID := app.createClient(t, "limit@test.com")
	gold := app.assetID(t, "COMMODITY", "GOLD")

	for i := 0; i < 3; i++ {
		if rec := app.buy(t, clientID, gold, "1"); rec.Code != http.StatusCreated {
			t.Fatalf("buy %d: %d %s", i, rec.Code, rec.Body.String())
		}
	}
	rec := app.buy(t, clientID, gold, "1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "CATEGORY_LIMIT_REACHED" {
		t.Errorf("unexpected error %v", errObj)
	}
}

func TestPortfolioFlow_Compare(t *testing.T) {
	app := setupApp(t)
	a := app.createClient(t, "a@test.com")
	b := app.createClient(t, "b@test.com")
	app.buy(t, a, app.assetID(t, "COMMODITY", "GOLD"), "1")

	rec := app.request("GET", "/api/portfolio/compare?a="+a+"&b="+b, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cmp := parseJSON(t, rec)["comparison"].(map[string]interface{})
	if cmp["a"].(map[string]interface{})["commodityValue"].(float64) != 2500 {
		t.Errorf("unexpected A metrics %v", cmp["a"])
	}
	if cmp["b"].(map[string]interface{})["insufficientData"] != true {
		t.Errorf("expected B to lack data, got %v", cmp["b"])
	}
}

func TestMarketFlow(t *testing.T) {
	app := setupApp(t)
	auth := map[string]string{"X-API-Key": testPipelineKey}

	rec := app.request("GET", "/api/market/prices?symbol=TCS", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before ingestion, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/market/history?symbol=TCS&range=1M", "", nil)
	if rec.Code != http.StatusOK || parseJSON(t, rec)["synthetic"] != true {
		t.Fatalf("expected synthetic history, got %d %s", rec.Code, rec.Body.String())
	}

	body := `{"prices":[{"symbol":"TCS","price":3650,"recorded_at":"` + timeAgo(2) + `"}]}`
	rec = app.request("POST", "/api/pipeline/market/prices", body, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", rec.Code)
	}
	rec = app.request("POST", "/api/pipeline/market/prices", body, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["prices_recorded"].(float64) != 1 {
		t.Errorf("expected 1 recorded, got %s", rec.Body.String())
	}
	rec = app.request("POST", "/api/pipeline/market/prices", body, auth)
	if parseJSON(t, rec)["prices_recorded"].(float64) != 0 {
		t.Errorf("expected duplicate skipped, got %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/market/history?symbol=TCS", "", nil)
	result := parseJSON(t, rec)
	if result["synthetic"] != false || result["prices"].([]interface{})[0].(float64) != 3650 {
		t.Errorf("expected recorded series, got %v", result)
	}
}

func TestWatchlistAndChat(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/watchlist", `{"symbol":"INFY"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/watchlist/INFY", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	clientID := app.createClient(t, "chat@test.com")
	app.buy(t, clientID, app.assetID(t, "NSE", "TCS"), "1")
	rec = app.request("POST", "/api/chat", `{"message":"What is my beta?","clientId":"`+clientID+`"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(parseJSON(t, rec)["response"].(string), "Beta") {
		t.Errorf("expected risk data in the answer, got %s", rec.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	app := setupApp(t)
	limited := NewRouter(Handlers{
		Asset: handlers.NewAssetHandler(services.NewAssetService(app.DB)),
	}, Options{RateLimiter: middleware.NewRateLimiter(1, 1)})

	req := func() int {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, httptest.NewRequest("GET", "/api/assets", nil))
		return rec.Code
	}
	if code := req(); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := req(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
}

func timeAgo(days int) string {
	return time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
}
