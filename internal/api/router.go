package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/michaels22/GestorTechPlay/internal/api/handler"
	"github.com/michaels22/GestorTechPlay/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	ledgerHandler *handler.LedgerHandler,
	transactionHandler *handler.TransactionHandler,
) {
	// CorrelationID must run first so the recovery and request logs can
	// carry the id
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Unified ledger
		v1.GET("/ledger", ledgerHandler.Get)

		// Custom transaction mutations; ownership is recorded, so the
		// identity header is required here
		transactions := v1.Group("/transactions")
		transactions.Use(middleware.Identity())
		{
			transactions.POST("", transactionHandler.Create)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
