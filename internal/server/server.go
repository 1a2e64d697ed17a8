// Package server wires handlers, middleware and documentation into a gin
// router.
package server

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ledgerly/internal/docs" // registers the swagger document

	"ledgerly/internal/config"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/handlers"
	"ledgerly/internal/ledger"
	"ledgerly/internal/middleware"
)

// Options configures NewRouter.
type Options struct {
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
	// Now overrides the clock used for month-relative views.
	Now handlers.Clock
}

// OptionsFromConfig builds router options from application config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{AllowedOrigins: cfg.CORSAllowedOrigins}
}

// NewRouter builds the HTTP API over the given ledger.
func NewRouter(ledgerService ledger.Servicer, opts Options) *gin.Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	budgetHandler := handlers.NewBudgetHandler(ledgerService, now)
	loanHandler := handlers.NewLoanHandler(ledgerService)
	analyticsHandler := handlers.NewAnalyticsHandler(ledgerService, now)
	insightHandler := handlers.NewInsightHandler(ledgerService, now)
	categoryHandler := handlers.NewCategoryHandler(ledgerService)
	exportHandler := handlers.NewExportHandler(ledgerService, now)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	v1.POST("/payables/:id/settle", transactionHandler.SettlePayable)
	v1.POST("/receivables/:id/settle", transactionHandler.SettleReceivable)

	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	v1.GET("/loans", loanHandler.GetLoans)

	v1.GET("/dashboard/summary", analyticsHandler.GetSummary)
	analytics := v1.Group("/analytics")
	analytics.GET("/income-vs-expense", analyticsHandler.GetIncomeVsExpense)
	analytics.GET("/expense-by-category", analyticsHandler.GetExpenseByCategory)
	analytics.GET("/cash-flow", analyticsHandler.GetCashFlow)

	insights := v1.Group("/insights")
	insights.GET("", insightHandler.GetReport)
	insights.GET("/alerts", insightHandler.GetAlerts)
	insights.GET("/savings", insightHandler.GetSavings)
	insights.GET("/investments", insightHandler.GetInvestments)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/suggested", categoryHandler.GetSuggestedCategories)
	categories.GET("/budget", categoryHandler.GetBudgetCategories)
	v1.GET("/transaction-types", categoryHandler.GetTransactionTypes)

	exports := v1.Group("/export")
	exports.GET("/transactions.csv", exportHandler.ExportCSV)
	exports.GET("/transactions.xlsx", exportHandler.ExportXLSX)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
