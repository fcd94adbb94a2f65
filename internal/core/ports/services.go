package ports

import (
	"context"

	"lightning-wallet-daemon/internal/core/domain"
)

// WalletLifecycle drives node wallet existence, unlock and chain-sync
// progress. State only moves forward; Reset is the single way back.
type WalletLifecycle interface {
	// ProbeWalletExists issues an idempotent GenSeed probe and interprets
	// the node's refusal signals.
	ProbeWalletExists(ctx context.Context) (bool, error)
	// CreateWallet generates a seed and persists it before returning.
	CreateWallet(ctx context.Context) ([]string, error)
	// InitializeWallet creates the node wallet from the stored seed with a
	// fresh random password, then completes the unlock.
	InitializeWallet(ctx context.Context) error
	// Unlock submits the stored password and completes the unlock.
	Unlock(ctx context.Context) error
	// SyncToChain runs one getInfo pass, updating node info and sync
	// progress. Returns whether the node reports itself synced.
	SyncToChain(ctx context.Context) (bool, error)
	// SendPubKey announces the node's identity to the backend.
	SendPubKey(ctx context.Context) error
	// Reset returns to the no-wallet state.
	Reset()

	Status() LifecycleStatus
}

// LifecycleStatus is a read snapshot of the lifecycle state.
type LifecycleStatus struct {
	State         domain.WalletState `json:"state"`
	WalletExists  bool               `json:"wallet_exists"`
	Info          domain.NodeInfo    `json:"info"`
	StartHeight   *int32             `json:"start_height,omitempty"`
	BestHeight    *int32             `json:"best_height,omitempty"`
	PercentSynced float64            `json:"percent_synced"`
}

// NodeAccount reconciles the node-side account: balances, the three record
// sets, and the operations that act on them. Invoice and payment refreshes
// swallow failures (the prior snapshot stays in place); balance and
// transaction refreshes surface them.
type NodeAccount interface {
	RefreshBalance(ctx context.Context) (int64, error)
	RefreshTransactions(ctx context.Context) error
	RefreshInvoices(ctx context.Context)
	RefreshPayments(ctx context.Context)
	// RefreshAll runs balance, transactions, invoices, payments in order.
	RefreshAll(ctx context.Context) error

	Balance() domain.Balance
	Currency() domain.CurrencyType
	// History projects the unified transaction history as of now
	// (epoch seconds).
	History(now int64) []domain.HistoryEntry

	NewAddress(ctx context.Context) (string, error)
	AddInvoice(ctx context.Context, req AddInvoiceRequest) (*AddInvoiceReply, error)
	DecodePayReq(ctx context.Context, payReq string) (*domain.DecodedPaymentRequest, error)
	SendCoins(ctx context.Context, addr string, amount int64) (string, error)
	// PayInvoice pays a payment request over the payment stream, bounded
	// by the configured local timeout.
	PayInvoice(ctx context.Context, paymentRequest string) (bool, error)

	// NotifyIncomingPayment reacts to a settled invoice: an in-screen
	// alert when the receive screen is active, a notification otherwise.
	NotifyIncomingPayment(ctx context.Context, invoice *domain.Invoice) error
	ReceiveScreenAlert() bool
	ClearReceiveScreenAlert()
	OnChainAddress() string
}

// Exchange manages the trade quote lifecycle.
type Exchange interface {
	RequestQuote(ctx context.Context, side domain.Side, satAmount int64) (domain.Quote, error)
	ExecuteBuy(ctx context.Context) (bool, error)
	ExecuteSell(ctx context.Context) (bool, error)
	Quote() domain.Quote
	Reset()
}

// Rates is the exchange-rate snapshot.
type Rates interface {
	// Refresh updates the snapshot; failures are logged and swallowed,
	// keeping the prior snapshot.
	Refresh(ctx context.Context)
	Rate(currency domain.CurrencyType) float64
}

// FiatAccount mirrors the backend fiat account. All refreshes are
// best-effort.
type FiatAccount interface {
	RefreshBalance(ctx context.Context)
	RefreshTransactions(ctx context.Context)
	Refresh(ctx context.Context)
	Balance() domain.Balance
	Currency() domain.CurrencyType
	Transactions() []domain.HistoryEntry
}

// Onboarding owns the persisted onboarding stage. Every mutation saves
// through the backend document store.
type Onboarding interface {
	SetStage(ctx context.Context, stage domain.OnboardingStage) error
	Stage() domain.OnboardingStage
}

// ChannelManager handles peering and channels with the service node.
type ChannelManager interface {
	ConnectPeer(ctx context.Context) error
	ListPeers(ctx context.Context) ([]Peer, error)
	PendingChannels(ctx context.Context) (*PendingChannelsReply, error)
	ListChannels(ctx context.Context) (*ListChannelsReply, error)
	FirstChannelStatus(ctx context.Context) (domain.ChannelStatus, error)
	OpenChannel(ctx context.Context) error
}

// AggregateStore composes the accounts, rates and lifecycle into the
// consistent snapshot clients read.
type AggregateStore interface {
	// UpdateBalances refreshes rates, then the fiat balance, then the
	// node balance, sequentially.
	UpdateBalances(ctx context.Context) error
	// UpdateTransactions refreshes the fiat and node transaction lists,
	// sequentially.
	UpdateTransactions(ctx context.Context) error
	// BalanceInCurrency converts an account's native balance into the
	// requested display currency; AccountTypeAll sums both accounts.
	BalanceInCurrency(account domain.AccountType, currency domain.CurrencyType) float64
}
