// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fortune/internal/valuation"
)

var symbolRegex = regexp.MustCompile(`^[A-Za-z0-9_.&-]{1,20}$`)

// PriceRanges are the accepted values of the market history range parameter.
var PriceRanges = []string{"1W", "1M", "3M", "6M", "1Y"}

// ChartTypes are the visualizations the assistant can explain.
var ChartTypes = []string{"bar", "line", "doughnut", "pie"}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_category", validateAssetCategory)
		_ = v.RegisterValidation("symbol", validateSymbol)
		_ = v.RegisterValidation("price_range", validatePriceRange)
		_ = v.RegisterValidation("chart_type", validateChartType)
	}
}

func validateAssetCategory(fl validator.FieldLevel) bool {
	return valuation.Category(fl.Field().String()).Normalize().IsKnown()
}

func validateSymbol(fl validator.FieldLevel) bool {
	return symbolRegex.MatchString(fl.Field().String())
}

func validatePriceRange(fl validator.FieldLevel) bool {
	return IsPriceRange(fl.Field().String())
}

func validateChartType(fl validator.FieldLevel) bool {
	return oneOfFold(fl.Field().String(), ChartTypes)
}

// IsPriceRange reports whether r is one of PriceRanges, ignoring case.
func IsPriceRange(r string) bool {
	return oneOfFold(r, PriceRanges)
}

func oneOfFold(s string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return true
		}
	}
	return false
}
