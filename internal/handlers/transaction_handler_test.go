package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/pagination"
	"fortune/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	listFn   func(page pagination.PageRequest, clientID string) (*pagination.PageResponse[models.Transaction], error)
	clientFn func(clientID string) ([]models.Transaction, error)
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func (m *mockTransactionService) ListTransactions(page pagination.PageRequest, clientID string) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(page, clientID)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) ClientTransactions(clientID string) ([]models.Transaction, error) {
	if m.clientFn != nil {
		return m.clientFn(clientID)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) RecentTransactions(int) ([]models.Transaction, error) {
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) CountBetween(time.Time, time.Time) (int64, error) {
	return 0, nil
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.GET("/transactions", handler.List)
	r.GET("/clients/:id/transactions", handler.ClientTransactions)
	return r
}

func testTransaction() models.Transaction {
	return models.Transaction{
		Base:       models.Base{ID: "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a8a"},
		Reference:  "TXN-1",
		ClientID:   testClientID,
		ClientName: "Asha Rao",
		HoldingID:  testHoldingID,
		Type:       models.TransactionBuy,
		Symbol:     "TCS",
		Quantity:   decimal.NewFromInt(10),
		Price:      decimal.NewFromInt(3500),
		Amount:     decimal.NewFromInt(35000),
		Status:     models.TransactionSuccess,
	}
}

func TestTransactionHandler_List(t *testing.T) {
	t.Run("filters_by_client", func(t *testing.T) {
		var gotClient string
		var gotPage pagination.PageRequest
		svc := &mockTransactionService{
			listFn: func(page pagination.PageRequest, clientID string) (*pagination.PageResponse[models.Transaction], error) {
				gotClient, gotPage = clientID, page
				resp := pagination.NewPageResponse([]models.Transaction{testTransaction()}, 2, 5, 6)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?clientId="+testClientID+"&page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotClient != testClientID || gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("unexpected arguments %q %+v", gotClient, gotPage)
		}
		data := parseJSON(t, rec)["data"].([]interface{})
		entry := data[0].(map[string]interface{})
		if entry["transactionId"] != "TXN-1" || entry["asset"] != "TCS" || entry["type"] != "BUY" {
			t.Errorf("unexpected entry %v", entry)
		}
	})

	t.Run("all_clients", func(t *testing.T) {
		gotClient := "unset"
		svc := &mockTransactionService{
			listFn: func(_ pagination.PageRequest, clientID string) (*pagination.PageResponse[models.Transaction], error) {
				gotClient = clientID
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotClient != "" {
			t.Errorf("expected no client filter, got %q", gotClient)
		}
	})

	t.Run("returns_400_invalid_client", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?clientId=c1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestTransactionHandler_ClientTransactions(t *testing.T) {
	t.Run("returns_ledger", func(t *testing.T) {
		svc := &mockTransactionService{
			clientFn: func(string) ([]models.Transaction, error) {
				return []models.Transaction{testTransaction()}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/clients/"+testClientID+"/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if txns := parseJSON(t, rec)["transactions"].([]interface{}); len(txns) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(txns))
		}
	})

	t.Run("returns_404", func(t *testing.T) {
		svc := &mockTransactionService{
			clientFn: func(string) ([]models.Transaction, error) { return nil, apperrors.ErrClientNotFound },
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/clients/"+testClientID+"/transactions", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CLIENT_NOT_FOUND")
	})
}
