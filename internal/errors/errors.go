// Package errors provides the structured error type returned by services and
// rendered by handlers. Responses carry a stable code and a safe message;
// the wrapped internal error is only logged.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so wrapped sentinels compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrRateLimited    = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
	ErrInvalidAPIKey  = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// Analytics errors.
var (
	ErrInsufficientData = &AppError{Code: "INSUFFICIENT_DATA", Message: "Not enough portfolio data to compute this metric", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidHolding   = &AppError{Code: "INVALID_HOLDING", Message: "Holding data cannot be valuated", StatusCode: http.StatusUnprocessableEntity}
)

// Client errors.
var (
	ErrClientNotFound = &AppError{Code: "CLIENT_NOT_FOUND", Message: "Client not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A client with this email already exists", StatusCode: http.StatusConflict}
)

// Catalog and portfolio errors.
var (
	ErrAssetNotFound         = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrHoldingNotFound       = &AppError{Code: "HOLDING_NOT_FOUND", Message: "Holding not found", StatusCode: http.StatusNotFound}
	ErrCategoryLimitReached  = &AppError{Code: "CATEGORY_LIMIT_REACHED", Message: "Holding limit reached for this asset category", StatusCode: http.StatusBadRequest}
	ErrInvalidSellPrice      = &AppError{Code: "INVALID_SELL_PRICE", Message: "Sell price must be a positive number", StatusCode: http.StatusBadRequest}
	ErrPriceSeriesNotFound   = &AppError{Code: "PRICE_SERIES_NOT_FOUND", Message: "No recorded prices for this symbol", StatusCode: http.StatusNotFound}
	ErrWatchlistDuplicate    = &AppError{Code: "WATCHLIST_DUPLICATE", Message: "Symbol is already on the watchlist", StatusCode: http.StatusConflict}
	ErrWatchlistItemNotFound = &AppError{Code: "WATCHLIST_ITEM_NOT_FOUND", Message: "Symbol is not on the watchlist", StatusCode: http.StatusNotFound}
)
