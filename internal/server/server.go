// Package server assembles the HTTP API.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fortune/internal/docs" // swagger docs
	"fortune/internal/handlers"
	"fortune/internal/middleware"
)

// Handlers are the route handlers of the API.
type Handlers struct {
	Asset     *handlers.AssetHandler
	Client    *handlers.ClientHandler
	Portfolio *handlers.PortfolioHandler
	Dashboard *handlers.DashboardHandler
	Market    *handlers.MarketHandler
	Watchlist *handlers.WatchlistHandler
	History   *handlers.HistoryHandler
	Chat      *handlers.ChatHandler
	Ledger    *handlers.TransactionHandler
	Summary   *handlers.SummaryHandler
}

// Options configure the middleware stack.
type Options struct {
	PipelineAPIKey string
	// RateLimiter is applied to /api when set.
	RateLimiter *middleware.RateLimiter
	Swagger     bool
}

// NewRouter wires every route onto a new engine.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging("/api/health"))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")
	api.GET("/health", handlers.Health)
	if opts.RateLimiter != nil {
		api.Use(middleware.RateLimit(opts.RateLimiter))
	}

	assets := api.Group("/assets")
	assets.GET("", h.Asset.ListAssets)
	assets.GET("/:id", h.Asset.GetAsset)
	assets.POST("", h.Asset.CreateAsset)

	clients := api.Group("/clients")
	clients.GET("", h.Client.ListClients)
	clients.POST("", h.Client.CreateClient)
	clients.GET("/summaries", h.Summary.Clients)
	clients.GET("/:id", h.Client.GetClient)
	clients.DELETE("/:id", h.Client.DeleteClient)
	clients.GET("/:id/summary", h.Summary.Client)
	clients.GET("/:id/transactions", h.Ledger.ClientTransactions)

	api.GET("/transactions", h.Ledger.List)
	api.GET("/dashboard/summary", h.Summary.Firm)

	portfolio := api.Group("/portfolio")
	portfolio.GET("/compare", h.Dashboard.Compare)
	portfolio.POST("/buy", h.Portfolio.Buy)
	portfolio.GET("/holdings/:holdingId", h.Portfolio.GetHolding)
	portfolio.GET("/:clientId", h.Portfolio.GetHoldings)
	portfolio.GET("/:clientId/valuation", h.Dashboard.Valuation)
	portfolio.GET("/:clientId/risk", h.Dashboard.Risk)
	portfolio.GET("/:clientId/distribution", h.Dashboard.Distribution)
	portfolio.DELETE("/:holdingId", h.Portfolio.Close)
	portfolio.POST("/:holdingId/sell", h.Portfolio.Sell)

	market := api.Group("/market")
	market.GET("/prices", h.Market.GetPriceSeries)
	market.GET("/history", h.Market.GetPriceHistory)

	pipeline := api.Group("/pipeline", middleware.PipelineAuthMiddleware(opts.PipelineAPIKey))
	pipeline.POST("/market/prices", h.Market.RecordPrices)

	watchlist := api.Group("/watchlist")
	watchlist.GET("", h.Watchlist.List)
	watchlist.POST("", h.Watchlist.Add)
	watchlist.DELETE("/:symbol", h.Watchlist.Remove)

	history := api.Group("/history")
	history.GET("", h.History.List)
	history.DELETE("", h.History.Clear)
	history.GET("/summary", h.History.Summary)

	api.POST("/chat", h.Chat.Chat)

	return router
}
