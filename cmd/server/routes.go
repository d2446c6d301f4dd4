package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"cardwallet.backend/internal/interfaces/http/handlers"
	"cardwallet.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	walletHandler      *handlers.WalletHandler
	payoutHandler      *handlers.PayoutHandler
	cardHandler        *handlers.CardHandler
	cardPoolHandler    *handlers.CardPoolHandler
	etransferHandler   *handlers.EtransferHandler
	billPaymentHandler *handlers.BillPaymentHandler
	sessionHandler     *handlers.SessionHandler
	sessionAuth        gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "cardwallet-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Session routes (access-code bootstrap is public, logout is not)
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", d.sessionHandler.CreateSession)
			sessions.DELETE("", d.sessionAuth, d.sessionHandler.DeleteSession)
		}

		// Payout routes (admin sessions only)
		payouts := v1.Group("/payouts")
		payouts.Use(d.sessionAuth, middleware.RequireAdmin())
		{
			payouts.POST("", d.payoutHandler.CreatePayout)
			payouts.GET("/:id", d.payoutHandler.GetPayout)
		}

		// Wallet routes (admin sessions only)
		wallets := v1.Group("/wallets")
		wallets.Use(d.sessionAuth, middleware.RequireAdmin())
		{
			wallets.POST("", d.walletHandler.AddWallet)
			wallets.POST("/fund", d.walletHandler.FundWallet)
			wallets.GET("/:id", d.walletHandler.GetWallet)
			wallets.DELETE("/:id", d.walletHandler.DeactivateWallet)
			wallets.GET("/:id/activity", d.walletHandler.GetWalletActivity)
		}

		stores := v1.Group("/stores")
		stores.Use(d.sessionAuth, middleware.RequireAdmin())
		{
			stores.GET("/:id/wallets", d.walletHandler.ListStoreWallets)
			stores.GET("/:id/balance", d.walletHandler.GetStoreBalance)
		}

		// Card routes (customer sessions)
		cards := v1.Group("/cards")
		cards.Use(d.sessionAuth)
		{
			cards.POST("/activate", d.cardHandler.ActivateCard)
			cards.GET("/status", d.cardHandler.GetCardStatus)
			cards.PUT("/status", d.cardHandler.ChangeCardStatus)
			cards.GET("/balance", d.cardHandler.GetCardBalance)
			cards.POST("/transfer", d.cardHandler.TransferFunds)
		}

		// E-transfer routes (customer sessions)
		etransfers := v1.Group("/etransfers")
		etransfers.Use(d.sessionAuth)
		{
			etransfers.POST("", d.etransferHandler.SendEtransfer)
			etransfers.GET("", d.etransferHandler.ListEtransfers)
			etransfers.POST("/recipients", d.etransferHandler.CreateRecipient)
			etransfers.GET("/recipients", d.etransferHandler.ListRecipients)
			etransfers.PUT("/recipients/:id", d.etransferHandler.UpdateRecipient)
			etransfers.DELETE("/recipients/:id", d.etransferHandler.DeactivateRecipient)
		}

		// Bill payment routes (customer sessions)
		billPayments := v1.Group("/bill-payments")
		billPayments.Use(d.sessionAuth)
		{
			billPayments.POST("", d.billPaymentHandler.CreateBillPayment)
			billPayments.GET("", d.billPaymentHandler.ListBillPayments)
			billPayments.GET("/payees/search", d.billPaymentHandler.SearchPayees)
			billPayments.POST("/payees", d.billPaymentHandler.AddPayee)
			billPayments.GET("/payees", d.billPaymentHandler.ListPayees)
			billPayments.PUT("/payees/:id", d.billPaymentHandler.UpdatePayeeAccount)
			billPayments.DELETE("/payees/:id", d.billPaymentHandler.DeactivatePayee)
		}

		// Admin routes (proxy pool management)
		admin := v1.Group("/admin")
		admin.Use(d.sessionAuth, middleware.RequireAdmin())
		{
			admin.POST("/clients/:id/card-proxies", d.cardPoolHandler.LoadProxies)
			admin.GET("/clients/:id/card-proxies", d.cardPoolHandler.ViewPool)
			admin.POST("/customers/:id/access-codes", d.sessionHandler.IssueAccessCode)
		}
	}
}
