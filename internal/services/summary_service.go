package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"fortune/internal/analytics"
	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/valuation"
)

const (
	topClientsLimit         = 5
	recentTransactionsLimit = 10
)

// ClientSummary is a client with the performance of their book, marked to the
// latest recorded prices.
type ClientSummary struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	ManagerID string    `json:"managerId,omitempty"`
	JoinDate  time.Time `json:"joinDate"`
	analytics.ClientPerformance
}

// FirmSummary is the relationship-manager landing view across every client.
type FirmSummary struct {
	analytics.FirmKPIs
	TransactionsToday  int64                          `json:"transactionsToday"`
	TopClients         []ClientSummary                `json:"topClients"`
	RecentTransactions []models.Transaction           `json:"recentTransactions"`
	AssetAllocation    map[valuation.Category]float64 `json:"assetAllocation"`
}

type summaryService struct {
	db           *gorm.DB
	market       MarketServicer
	transactions TransactionServicer
}

// NewSummaryService creates a SummaryServicer.
func NewSummaryService(db *gorm.DB, market MarketServicer, transactions TransactionServicer) SummaryServicer {
	return &summaryService{db: db, market: market, transactions: transactions}
}

// ClientSummary measures one client's book.
func (s *summaryService) ClientSummary(clientID string) (*ClientSummary, error) {
	var client models.Client
	if err := s.db.Where("id = ?", clientID).First(&client).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrClientNotFound)
	}
	books, err := s.valuateBooks([]models.Client{client})
	if err != nil {
		return nil, err
	}
	summary := newClientSummary(client, books[client.ID])
	return &summary, nil
}

// ClientSummaries measures every client's book, ordered by name.
func (s *summaryService) ClientSummaries() ([]ClientSummary, error) {
	var clients []models.Client
	if err := s.db.Order("full_name ASC").Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	books, err := s.valuateBooks(clients)
	if err != nil {
		return nil, err
	}

	out := make([]ClientSummary, 0, len(clients))
	for _, c := range clients {
		out = append(out, newClientSummary(c, books[c.ID]))
	}
	return out, nil
}

// FirmSummary aggregates every client as of now. Transactions today are
// counted from midnight in now's location.
func (s *summaryService) FirmSummary(now time.Time) (*FirmSummary, error) {
	var clients []models.Client
	if err := s.db.Order("full_name ASC").Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	books, err := s.valuateBooks(clients)
	if err != nil {
		return nil, err
	}

	summaries := make([]ClientSummary, 0, len(clients))
	perfs := make([]analytics.ClientPerformance, 0, len(clients))
	var all []valuation.EnrichedHolding
	for _, c := range clients {
		cs := newClientSummary(c, books[c.ID])
		summaries = append(summaries, cs)
		perfs = append(perfs, cs.ClientPerformance)
		all = append(all, books[c.ID]...)
	}

	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].TotalReturns > summaries[j].TotalReturns })
	top := summaries[:min(topClientsLimit, len(summaries))]

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.transactions.CountBetween(startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	recent, err := s.transactions.RecentTransactions(recentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &FirmSummary{
		FirmKPIs:           analytics.AggregateFirm(perfs),
		TransactionsToday:  today,
		TopClients:         top,
		RecentTransactions: recent,
		AssetAllocation:    analytics.Allocation(all),
	}, nil
}

// valuateBooks loads the open holdings of clients and marks them to the
// latest recorded prices.
func (s *summaryService) valuateBooks(clients []models.Client) (map[string][]valuation.EnrichedHolding, error) {
	books := make(map[string][]valuation.EnrichedHolding, len(clients))
	if len(clients) == 0 {
		return books, nil
	}

	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	var holdings []models.Holding
	if err := s.db.Preload("Asset").
		Where("client_id IN ?", ids).
		Order("buy_date ASC, id ASC").
		Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	raw := make(map[string][]valuation.RawHolding, len(clients))
	for _, h := range holdings {
		raw[h.ClientID] = append(raw[h.ClientID], h.ToRaw())
	}

	feed, err := s.market.LatestPrices()
	if err != nil {
		return nil, err
	}
	for clientID, rh := range raw {
		enriched, err := valuation.Valuate(rh, feed)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidHolding, err)
		}
		books[clientID] = enriched
	}
	return books, nil
}

func newClientSummary(c models.Client, book []valuation.EnrichedHolding) ClientSummary {
	return ClientSummary{
		ID:                c.ID,
		FullName:          c.FullName,
		Email:             c.Email,
		ManagerID:         c.ManagerID,
		JoinDate:          c.CreatedAt,
		ClientPerformance: analytics.Performance(book),
	}
}
