package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fortune/internal/errors"
	"fortune/internal/models"
	"fortune/internal/valuation"
)

// DefaultPriceRange is used when a series request names no range.
const DefaultPriceRange = "3M"

const seriesLabelLayout = "2006-01-02"

// RangeStart returns the first instant covered by a price range ending at now.
// Unknown ranges fall back to DefaultPriceRange.
func RangeStart(priceRange string, now time.Time) time.Time {
	switch strings.ToUpper(priceRange) {
	case "1W":
		return now.AddDate(0, 0, -7)
	case "1M":
		return now.AddDate(0, -1, 0)
	case "6M":
		return now.AddDate(0, -6, 0)
	case "1Y":
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -3, 0)
	}
}

// marketService handles recorded market prices.
type marketService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMarketService creates a new MarketServicer.
func NewMarketService(db *gorm.DB) MarketServicer {
	return &marketService{db: db, now: time.Now}
}

// RecordPrices stores price observations, skipping duplicates of the same
// asset and timestamp. It returns the number of rows inserted.
func (s *marketService) RecordPrices(prices []PriceInput) (int, error) {
	if len(prices) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Prices array is empty")
	}

	count := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		assetIDs := make(map[string]string)
		for _, p := range prices {
			if !p.Price.IsPositive() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must be positive for "+p.Symbol)
			}
			symbol := strings.ToUpper(p.Symbol)
			assetID, ok := assetIDs[symbol]
			if !ok {
				var asset models.Asset
				if err := tx.Where("symbol = ?", symbol).First(&asset).Error; err != nil {
					return notFoundOr(err, apperrors.WithMessage(apperrors.ErrAssetNotFound, "Unknown symbol "+symbol))
				}
				assetID = asset.ID
				assetIDs[symbol] = assetID
			}

			ap := models.AssetPrice{
				AssetID:    assetID,
				Price:      p.Price,
				RecordedAt: p.RecordedAt.UTC(),
			}
			result := tx.Omit(clause.Associations).Where("asset_id = ? AND recorded_at = ?", ap.AssetID, ap.RecordedAt).FirstOrCreate(&ap)
			if result.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
			}
			if result.RowsAffected > 0 {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetPriceSeries returns the recorded prices of symbol within the range,
// oldest first, labelled by date.
func (s *marketService) GetPriceSeries(symbol, priceRange string) (*valuation.Series, error) {
	var asset models.Asset
	if err := s.db.Where("symbol = ?", strings.ToUpper(strings.TrimSpace(symbol))).First(&asset).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrAssetNotFound)
	}

	now := s.now().UTC()
	var rows []models.AssetPrice
	if err := s.db.Where("asset_id = ? AND recorded_at >= ? AND recorded_at <= ?", asset.ID, RangeStart(priceRange, now), now).
		Order("recorded_at ASC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrPriceSeriesNotFound
	}

	series := &valuation.Series{
		Labels: make([]string, 0, len(rows)),
		Prices: make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		series.Labels = append(series.Labels, r.RecordedAt.Format(seriesLabelLayout))
		series.Prices = append(series.Prices, r.Price.InexactFloat64())
	}
	return series, nil
}

// LatestPrices returns the most recent recorded price of every asset that has
// one, keyed by symbol. Assets without recorded prices are absent, so the
// feed prices them at their average buy price.
func (s *marketService) LatestPrices() (valuation.FixedFeed, error) {
	var rows []struct {
		Symbol string
		Price  decimal.Decimal
	}
	if err := s.db.Table("asset_prices").
		Select("assets.symbol AS symbol, asset_prices.price AS price").
		Joins("JOIN assets ON assets.id = asset_prices.asset_id").
		Where("asset_prices.recorded_at = (?)",
			s.db.Table("asset_prices AS latest").
				Select("MAX(latest.recorded_at)").
				Where("latest.asset_id = asset_prices.asset_id")).
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	feed := make(valuation.FixedFeed, len(rows))
	for _, r := range rows {
		feed[r.Symbol] = r.Price.InexactFloat64()
	}
	return feed, nil
}
