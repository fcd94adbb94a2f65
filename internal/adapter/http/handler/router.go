package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightning-wallet-daemon/internal/adapter/http/middleware"
	"lightning-wallet-daemon/internal/core/ports"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Lifecycle  ports.WalletLifecycle
	Account    ports.NodeAccount
	Fiat       ports.FiatAccount
	Aggregate  ports.AggregateStore
	Exchange   ports.Exchange
	Channels   ports.ChannelManager
	Onboarding ports.Onboarding
	Screens    *ScreenTracker

	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/healthz", HealthCheck(deps.HealthCheckers...))

	wallet := NewWalletHandler(deps.Lifecycle, deps.Logger)
	account := NewAccountHandler(deps.Account, deps.Fiat, deps.Aggregate, deps.Logger)
	trade := NewTradeHandler(deps.Exchange, deps.Logger)
	channel := NewChannelHandler(deps.Channels, deps.Logger)
	system := NewSystemHandler(deps.Lifecycle, deps.Onboarding, deps.Screens, deps.Logger)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", system.Status)
		v1.POST("/onboarding/stage", system.SetStage)
		v1.PUT("/navigation", system.SetNavigation)

		v1.POST("/wallet", wallet.Create)
		v1.POST("/wallet/probe", wallet.Probe)
		v1.POST("/wallet/init", wallet.Init)
		v1.POST("/wallet/unlock", wallet.Unlock)
		v1.POST("/wallet/sync", wallet.Sync)
		v1.DELETE("/wallet", wallet.Reset)

		v1.GET("/balances", account.Balances)
		v1.GET("/transactions", account.Transactions)
		v1.POST("/transactions/send", account.SendCoins)
		v1.POST("/addresses", account.NewAddress)
		v1.POST("/invoices", account.AddInvoice)
		v1.POST("/invoices/settled", account.SettledInvoice)
		v1.GET("/invoices/alert", account.Alert)
		v1.DELETE("/invoices/alert", account.ClearAlert)
		v1.POST("/payments", account.Pay)
		v1.POST("/payments/decode", account.Decode)

		v1.GET("/quotes", trade.Quote)
		v1.POST("/quotes", trade.RequestQuote)
		v1.POST("/quotes/execute", trade.Execute)
		v1.DELETE("/quotes", trade.ResetQuote)

		v1.POST("/channels/connect", channel.Connect)
		v1.POST("/channels/open", channel.Open)
		v1.GET("/channels/status", channel.Status)
		v1.GET("/peers", channel.Peers)
	}

	return r
}
