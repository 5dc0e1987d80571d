// Package client provides an HTTP client for the portfolio API, used by the
// dashboard when it runs apart from the API process.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "fortune/internal/errors"
	"fortune/internal/valuation"
)

// Client talks to the /api routes of a fortune API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client. baseURL is the server root, e.g. http://localhost:8080.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Holdings fetches the raw holdings of a client.
func (c *Client) Holdings(ctx context.Context, clientID string) ([]valuation.RawHolding, error) {
	var holdings []valuation.RawHolding
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/"+url.PathEscape(clientID), nil, &holdings); err != nil {
		return nil, fmt.Errorf("fetching holdings: %w", err)
	}
	if holdings == nil {
		holdings = []valuation.RawHolding{}
	}
	return holdings, nil
}

// Holding fetches one open holding.
func (c *Client) Holding(ctx context.Context, holdingID string) (valuation.RawHolding, error) {
	var holding valuation.RawHolding
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/holdings/"+url.PathEscape(holdingID), nil, &holding); err != nil {
		return valuation.RawHolding{}, fmt.Errorf("fetching holding: %w", err)
	}
	return holding, nil
}

// CloseHolding closes a holding at price and returns it as it was before the
// sale.
func (c *Client) CloseHolding(ctx context.Context, holdingID string, price float64) (valuation.RawHolding, error) {
	q := url.Values{}
	q.Set("price", strconv.FormatFloat(price, 'f', -1, 64))

	var holding valuation.RawHolding
	if err := c.do(ctx, http.MethodDelete, "/api/portfolio/"+url.PathEscape(holdingID), q, &holding); err != nil {
		return valuation.RawHolding{}, fmt.Errorf("closing holding: %w", err)
	}
	return holding, nil
}

// PriceSeries fetches the recorded price series of symbol.
func (c *Client) PriceSeries(ctx context.Context, symbol, priceRange string) (*valuation.Series, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	if priceRange != "" {
		q.Set("range", priceRange)
	}

	var series valuation.Series
	if err := c.do(ctx, http.MethodGet, "/api/market/prices", q, &series); err != nil {
		return nil, fmt.Errorf("fetching price series: %w", err)
	}
	return &series, nil
}

// do sends a request and decodes a 2xx JSON body into out. Error envelopes
// are decoded into *apperrors.AppError so callers can match on the code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Code == "" {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return &apperrors.AppError{
		Code:       envelope.Error.Code,
		Message:    envelope.Error.Message,
		StatusCode: resp.StatusCode,
	}
}
