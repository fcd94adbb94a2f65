package ports

import (
	"context"

	"lightning-wallet-daemon/internal/core/domain"
)

// FunctionCaller invokes the remote ledger backend's callable functions.
// Wire names: quoteLNDBTC, buyLNDBTC, sendPubKey, openChannel,
// getFiatBalances.
type FunctionCaller interface {
	QuoteTrade(ctx context.Context, req QuoteTradeRequest) (*QuoteTradeReply, error)
	ExecuteBuy(ctx context.Context, req BuyRequest) (bool, error)
	SendPubKey(ctx context.Context, pubkey, network string) error
	OpenChannel(ctx context.Context) error
	FiatBalances(ctx context.Context) (int64, error)
}

// DocumentStore reads and writes backend documents. Paths used:
// users/{uid}, global/price, global/info.
type DocumentStore interface {
	GetDocument(ctx context.Context, path string, out any) error
	SetDocument(ctx context.Context, path string, fields map[string]any, merge bool) error
}

// AuthSession identifies the backend user this daemon acts for.
type AuthSession interface {
	UserID(ctx context.Context) (string, error)
}

// QuoteTradeRequest asks the backend for a price commitment. Exactly one of
// SatAmount (sell) or Invoice (buy) is set.
type QuoteTradeRequest struct {
	Side      domain.Side `json:"side"`
	SatAmount int64       `json:"sat_amount,omitempty"`
	Invoice   string      `json:"invoice,omitempty"`
}

// QuoteTradeReply is the backend's signed quote.
type QuoteTradeReply struct {
	Side      domain.Side `json:"side"`
	SatPrice  float64     `json:"sat_price"`
	Signature string      `json:"signature"`
	Invoice   string      `json:"invoice"`
}

// BuyRequest executes a previously quoted buy.
type BuyRequest struct {
	Side      domain.Side `json:"side"`
	Invoice   string      `json:"invoice"`
	SatPrice  float64     `json:"sat_price"`
	Signature string      `json:"signature"`
}

// UserDocument is the users/{uid} document shape this daemon reads and
// merges into.
type UserDocument struct {
	Stage        domain.OnboardingStage   `json:"stage"`
	Transactions []domain.FiatTransaction `json:"transactions"`
}

// PriceDocument is the global/price document.
type PriceDocument struct {
	BTC float64 `json:"BTC"`
}

// InfoDocument is the global/info document with the service node's peer
// coordinates.
type InfoDocument struct {
	Lightning LightningPeerInfo `json:"lightning"`
}

type LightningPeerInfo struct {
	Pubkey string `json:"pubkey"`
	Host   string `json:"host"`
}
