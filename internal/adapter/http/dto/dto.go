// Package dto defines the request and response shapes of the local API.
package dto

import (
	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
)

// StatusResponse is the full daemon status snapshot.
type StatusResponse struct {
	Lifecycle ports.LifecycleStatus  `json:"lifecycle"`
	Stage     domain.OnboardingStage `json:"stage"`
}

// CreateWalletResponse returns the freshly generated seed phrase.
type CreateWalletResponse struct {
	Mnemonic []string `json:"mnemonic"`
}

// SyncResponse reports one chain-sync pass.
type SyncResponse struct {
	Synced        bool    `json:"synced"`
	PercentSynced float64 `json:"percent_synced"`
}

// BalancesResponse carries both account balances plus display conversions.
type BalancesResponse struct {
	Bitcoin  domain.Balance `json:"bitcoin"`
	Fiat     domain.Balance `json:"fiat"`
	TotalUSD float64        `json:"total_usd"`
	TotalBTC float64        `json:"total_btc"`
}

// TransactionsResponse is the merged per-account history.
type TransactionsResponse struct {
	Bitcoin []domain.HistoryEntry `json:"bitcoin"`
	Fiat    []domain.HistoryEntry `json:"fiat"`
}

// NewAddressResponse carries a fresh on-chain receive address.
type NewAddressResponse struct {
	Address string `json:"address"`
}

// AddInvoiceRequest creates a receive invoice.
type AddInvoiceRequest struct {
	Value  int64  `json:"value" binding:"required,gt=0"`
	Memo   string `json:"memo"`
	Expiry int64  `json:"expiry" binding:"omitempty,gt=0"`
}

// AddInvoiceResponse carries the created invoice.
type AddInvoiceResponse struct {
	PaymentRequest string `json:"payment_request"`
	RHash          string `json:"r_hash"`
}

// SettledInvoiceRequest reports an invoice settlement event.
type SettledInvoiceRequest struct {
	Invoice domain.Invoice `json:"invoice" binding:"required"`
}

// DecodeRequest decodes a payment request.
type DecodeRequest struct {
	PaymentRequest string `json:"payment_request" binding:"required"`
}

// PayRequest pays a lightning invoice.
type PayRequest struct {
	PaymentRequest string `json:"payment_request" binding:"required"`
}

// PayResponse reports the payment outcome.
type PayResponse struct {
	Success bool `json:"success"`
}

// SendCoinsRequest broadcasts an on-chain send.
type SendCoinsRequest struct {
	Address string `json:"address" binding:"required"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
}

// SendCoinsResponse carries the broadcast txid.
type SendCoinsResponse struct {
	Txid string `json:"txid"`
}

// QuoteRequest asks for a trade quote.
type QuoteRequest struct {
	Side      domain.Side `json:"side" binding:"required"`
	SatAmount int64       `json:"sat_amount" binding:"omitempty,gt=0"`
}

// ExecuteQuoteRequest settles the held quote.
type ExecuteQuoteRequest struct {
	Side domain.Side `json:"side" binding:"required"`
}

// ExecuteQuoteResponse reports the trade outcome.
type ExecuteQuoteResponse struct {
	Success bool `json:"success"`
}

// NavigationRequest reports the client's active screen.
type NavigationRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// StageRequest advances the onboarding stage.
type StageRequest struct {
	Stage domain.OnboardingStage `json:"stage" binding:"required"`
}

// AlertResponse reports whether an in-screen settlement alert is pending.
type AlertResponse struct {
	Alert bool `json:"alert"`
}

// ChannelStatusResponse summarizes first-channel readiness.
type ChannelStatusResponse struct {
	Status domain.ChannelStatus `json:"status"`
}
