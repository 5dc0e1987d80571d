package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fortune/internal/errors"
	"fortune/internal/logger"
	"fortune/internal/models"
	"fortune/internal/pagination"
	"fortune/internal/valuation"
)

// defaultCatalog is seeded into an empty database: five NSE equities, five
// mutual funds and three commodities.
var defaultCatalog = []struct {
	symbol, name, description string
	category                  valuation.Category
	price                     string
}{
	{"RELIANCE", "Reliance Industries", "Oil, Gas, and Telecom giant", valuation.CategoryNSE, "2850"},
	{"TCS", "Tata Consultancy Services", "IT Services", valuation.CategoryNSE, "3900"},
	{"HDFCBANK", "HDFC Bank", "Banking and Finance", valuation.CategoryNSE, "1650"},
	{"INFY", "Infosys", "IT Services", valuation.CategoryNSE, "1500"},
	{"ICICIBANK", "ICICI Bank", "Banking and Finance", valuation.CategoryNSE, "1100"},

	{"SBI_BLUECHIP", "SBI Bluechip Fund", "Large Cap Fund", valuation.CategoryMF, "85"},
	{"HDFC_BALANCED", "HDFC Balanced Advantage", "Hybrid Fund", valuation.CategoryMF, "450"},
	{"AXIS_LONGTERM", "Axis Long Term Equity", "ELSS Tax Saver", valuation.CategoryMF, "95"},
	{"ICICI_TECH", "ICICI Prudential Technology", "Sectoral IT Fund", valuation.CategoryMF, "190"},
	{"MOTILAL_MIDCAP", "Motilal Oswal Midcap", "Mid Cap Fund", valuation.CategoryMF, "110"},

	{"GOLD", "Gold 24k", "Precious Metal", valuation.CategoryCommodity, "2300"},
	{"SILVER", "Silver", "Precious Metal", valuation.CategoryCommodity, "28"},
	{"COPPER", "Copper", "Industrial Metal", valuation.CategoryCommodity, "4.5"},
}

// assetService handles the asset catalog.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// CreateAsset adds an asset to the catalog. Symbols are stored upper-case.
func (s *assetService) CreateAsset(
	symbol, name string,
	category valuation.Category,
	description string,
	referencePrice decimal.Decimal,
) (*models.Asset, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	category = category.Normalize()
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category is required")
	}
	if !referencePrice.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Reference price must be positive")
	}

	asset := &models.Asset{
		Symbol:         symbol,
		AssetName:      name,
		Category:       category,
		Description:    description,
		ReferencePrice: referencePrice,
	}
	if err := s.db.Create(asset).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "An asset with this symbol already exists")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// ListAssets returns the catalog ordered by category then symbol, optionally
// filtered by category.
func (s *assetService) ListAssets(page pagination.PageRequest, category valuation.Category) (*pagination.PageResponse[models.Asset], error) {
	query := s.db.Model(&models.Asset{})
	if c := category.Normalize(); c != "" {
		query = query.Where("category = ?", c)
	}

	result, err := pagination.Find[models.Asset](query, page, "category ASC, symbol ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetAsset returns an asset by its ID.
func (s *assetService) GetAsset(id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("id = ?", id).First(&asset).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrAssetNotFound)
	}
	return &asset, nil
}

// GetAssetBySymbol returns an asset by its ticker, ignoring case.
func (s *assetService) GetAssetBySymbol(symbol string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("symbol = ?", strings.ToUpper(strings.TrimSpace(symbol))).First(&asset).Error; err != nil {
		return nil, notFoundOr(err, apperrors.ErrAssetNotFound)
	}
	return &asset, nil
}

// SeedDefaults loads the default catalog into an empty assets table. It is a
// no-op when any asset exists and returns the number of assets inserted.
func (s *assetService) SeedDefaults() (int, error) {
	var count int64
	if err := s.db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		logger.Get().Infow("asset catalog already loaded, skipping seed", "assets", count)
		return 0, nil
	}

	assets := make([]models.Asset, 0, len(defaultCatalog))
	for _, a := range defaultCatalog {
		assets = append(assets, models.Asset{
			Symbol:         a.symbol,
			AssetName:      a.name,
			Category:       a.category,
			Description:    a.description,
			ReferencePrice: decimal.RequireFromString(a.price),
		})
	}
	if err := s.db.Create(&assets).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("seeded asset catalog", "assets", len(assets))
	return len(assets), nil
}
