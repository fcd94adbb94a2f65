package ports

import (
	"context"

	"lightning-wallet-daemon/internal/core/domain"
)

// NodeTransport is the command surface of the wallet node, reached through
// an RPC bridge. GenSeed, InitWallet and UnlockWallet run against the
// unlocker service; everything else requires an unlocked wallet. Adapters
// translate the node's error strings into apperror codes (NODE_002 wallet
// already exists, NODE_003 unlocker closed).
type NodeTransport interface {
	// Unlocker-phase commands.
	GenSeed(ctx context.Context) (*GenSeedReply, error)
	InitWallet(ctx context.Context, req InitWalletRequest) error
	UnlockWallet(ctx context.Context, req UnlockWalletRequest) error

	// Unary wallet commands.
	GetInfo(ctx context.Context) (*GetInfoReply, error)
	NewAddress(ctx context.Context, addrType int32) (string, error)
	DecodePayReq(ctx context.Context, payReq string) (*domain.DecodedPaymentRequest, error)
	AddInvoice(ctx context.Context, req AddInvoiceRequest) (*AddInvoiceReply, error)
	WalletBalance(ctx context.Context) (*WalletBalanceReply, error)
	ChannelBalance(ctx context.Context) (*ChannelBalanceReply, error)
	ListTransactions(ctx context.Context) ([]domain.OnChainTransaction, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	SendCoins(ctx context.Context, addr string, amount int64) (string, error)
	ConnectPeer(ctx context.Context, pubkey, host string) error
	ListPeers(ctx context.Context) ([]Peer, error)
	PendingChannels(ctx context.Context) (*PendingChannelsReply, error)
	ListChannels(ctx context.Context) (*ListChannelsReply, error)

	// SendPayment opens the bidirectional payment stream.
	SendPayment(ctx context.Context) (PaymentStream, error)
}

// PaymentStream is one in-flight sendPayment exchange.
type PaymentStream interface {
	Send(req PaymentStreamRequest) error
	Recv() (*PaymentStreamResult, error)
	Close() error
}

// GenSeedReply carries a freshly generated wallet seed.
type GenSeedReply struct {
	CipherSeedMnemonic []string `json:"cipher_seed_mnemonic"`
}

// InitWalletRequest creates the wallet from a seed. WalletPassword is
// hex-encoded.
type InitWalletRequest struct {
	WalletPassword     string   `json:"wallet_password"`
	CipherSeedMnemonic []string `json:"cipher_seed_mnemonic"`
}

type UnlockWalletRequest struct {
	WalletPassword string `json:"wallet_password"`
}

// GetInfoReply is the node's getInfo response.
type GetInfoReply struct {
	Version       string      `json:"version"`
	IdentityPubkey string     `json:"identity_pubkey"`
	SyncedToChain bool        `json:"synced_to_chain"`
	BlockHeight   int32       `json:"block_height"`
	Chains        []NodeChain `json:"chains"`
}

type NodeChain struct {
	Chain   string `json:"chain"`
	Network string `json:"network"`
}

type AddInvoiceRequest struct {
	Value   int64  `json:"value"`
	Memo    string `json:"memo"`
	Expiry  int64  `json:"expiry"`
	Private bool   `json:"private"`
}

type AddInvoiceReply struct {
	RHash          string `json:"r_hash"`
	PaymentRequest string `json:"payment_request"`
}

type WalletBalanceReply struct {
	ConfirmedBalance   int64 `json:"confirmed_balance"`
	UnconfirmedBalance int64 `json:"unconfirmed_balance"`
}

type ChannelBalanceReply struct {
	Balance            int64 `json:"balance"`
	PendingOpenBalance int64 `json:"pending_open_balance"`
}

type Peer struct {
	Pubkey  string `json:"pub_key"`
	Address string `json:"address"`
}

type PendingChannelsReply struct {
	PendingOpenChannels []PendingChannel `json:"pending_open_channels"`
}

type PendingChannel struct {
	RemoteNodePub string `json:"remote_node_pub"`
	Capacity      int64  `json:"capacity"`
}

type ListChannelsReply struct {
	Channels []Channel `json:"channels"`
}

type Channel struct {
	RemotePubkey  string `json:"remote_pubkey"`
	Capacity      int64  `json:"capacity"`
	LocalBalance  int64  `json:"local_balance"`
	RemoteBalance int64  `json:"remote_balance"`
	Active        bool   `json:"active"`
}

type PaymentStreamRequest struct {
	PaymentRequest string `json:"payment_request"`
}

type PaymentStreamResult struct {
	PaymentError    string `json:"payment_error"`
	PaymentPreimage string `json:"payment_preimage"`
}
