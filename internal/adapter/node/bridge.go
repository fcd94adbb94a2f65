// Package node implements ports.NodeTransport against the lightning node's
// HTTP RPC bridge. Unary commands are POSTed to /unary/{command}, the
// pre-unlock commands to /unlocker/{command}, and streaming commands run
// over a websocket at /stream/{command}.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	phaseUnary    = "unary"
	phaseUnlocker = "unlocker"
)

// Bridge talks to the node RPC bridge.
type Bridge struct {
	baseURL string
	client  *http.Client
	dialer  *websocket.Dialer
	log     zerolog.Logger
}

// NewBridge creates a Bridge for the given base URL.
func NewBridge(baseURL string, timeout time.Duration, log zerolog.Logger) *Bridge {
	return &Bridge{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		dialer: &websocket.Dialer{
			HandshakeTimeout: timeout,
		},
		log: log,
	}
}

// errorReply is the bridge's error payload.
type errorReply struct {
	Error string `json:"error"`
}

// call POSTs one command and decodes the reply into out (which may be nil).
func (b *Bridge) call(ctx context.Context, phase, command string, args, out any) error {
	body := []byte("{}")
	if args != nil {
		var err error
		body, err = json.Marshal(args)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("encoding %s args: %w", command, err))
		}
	}

	url := fmt.Sprintf("%s/%s/%s", b.baseURL, phase, command)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return apperror.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return apperror.ErrNodeCommand(command, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrNodeCommand(command, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var reply errorReply
		if err := json.Unmarshal(data, &reply); err != nil || reply.Error == "" {
			reply.Error = strings.TrimSpace(string(data))
		}
		return mapBridgeError(command, reply.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperror.ErrDecoding(command+" reply", err)
	}
	return nil
}

// mapBridgeError classifies the node's error strings. The unlocker refuses
// GenSeed with "wallet already exists" once a wallet was created, and all
// unlocker commands with a "closed" transport error once the wallet is
// unlocked and the unlocker service has shut down.
func mapBridgeError(command, message string) error {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "wallet already exists"):
		return apperror.ErrWalletExistsSignal()
	case strings.Contains(lower, "closed"):
		return apperror.ErrUnlockerClosed()
	default:
		return apperror.ErrNodeCommand(command, fmt.Errorf("%s", message))
	}
}

// ---- unlocker phase ----

func (b *Bridge) GenSeed(ctx context.Context) (*ports.GenSeedReply, error) {
	var reply struct {
		CipherSeedMnemonic []string `json:"cipher_seed_mnemonic"`
	}
	if err := b.call(ctx, phaseUnlocker, "GenSeed", nil, &reply); err != nil {
		return nil, err
	}
	return &ports.GenSeedReply{CipherSeedMnemonic: reply.CipherSeedMnemonic}, nil
}

func (b *Bridge) InitWallet(ctx context.Context, req ports.InitWalletRequest) error {
	args := struct {
		WalletPassword     string   `json:"wallet_password"`
		CipherSeedMnemonic []string `json:"cipher_seed_mnemonic"`
	}{req.WalletPassword, req.CipherSeedMnemonic}
	return b.call(ctx, phaseUnlocker, "InitWallet", args, nil)
}

func (b *Bridge) UnlockWallet(ctx context.Context, req ports.UnlockWalletRequest) error {
	args := struct {
		WalletPassword string `json:"wallet_password"`
	}{req.WalletPassword}
	return b.call(ctx, phaseUnlocker, "UnlockWallet", args, nil)
}

// ---- unary phase ----

func (b *Bridge) GetInfo(ctx context.Context) (*ports.GetInfoReply, error) {
	var reply struct {
		Version        string    `json:"version"`
		IdentityPubkey string    `json:"identity_pubkey"`
		SyncedToChain  bool      `json:"synced_to_chain"`
		BlockHeight    flexInt32 `json:"block_height"`
		Chains         []struct {
			Chain   string `json:"chain"`
			Network string `json:"network"`
		} `json:"chains"`
	}
	if err := b.call(ctx, phaseUnary, "getInfo", nil, &reply); err != nil {
		return nil, err
	}

	out := &ports.GetInfoReply{
		Version:        reply.Version,
		IdentityPubkey: reply.IdentityPubkey,
		SyncedToChain:  reply.SyncedToChain,
		BlockHeight:    int32(reply.BlockHeight),
	}
	for _, c := range reply.Chains {
		out.Chains = append(out.Chains, ports.NodeChain{Chain: c.Chain, Network: c.Network})
	}
	return out, nil
}

func (b *Bridge) NewAddress(ctx context.Context, addrType int32) (string, error) {
	args := struct {
		Type int32 `json:"type"`
	}{addrType}
	var reply struct {
		Address string `json:"address"`
	}
	if err := b.call(ctx, phaseUnary, "NewAddress", args, &reply); err != nil {
		return "", err
	}
	return reply.Address, nil
}

func (b *Bridge) DecodePayReq(ctx context.Context, payReq string) (*domain.DecodedPaymentRequest, error) {
	args := struct {
		PayReq string `json:"pay_req"`
	}{payReq}
	var reply struct {
		Destination string    `json:"destination"`
		PaymentHash string    `json:"payment_hash"`
		NumSatoshis flexInt64 `json:"num_satoshis"`
		Timestamp   flexInt64 `json:"timestamp"`
		Expiry      flexInt64 `json:"expiry"`
		Description string    `json:"description"`
	}
	if err := b.call(ctx, phaseUnary, "decodePayReq", args, &reply); err != nil {
		return nil, err
	}
	return &domain.DecodedPaymentRequest{
		Destination: reply.Destination,
		PaymentHash: reply.PaymentHash,
		NumSatoshis: int64(reply.NumSatoshis),
		Timestamp:   int64(reply.Timestamp),
		Expiry:      int64(reply.Expiry),
		Description: reply.Description,
	}, nil
}

func (b *Bridge) AddInvoice(ctx context.Context, req ports.AddInvoiceRequest) (*ports.AddInvoiceReply, error) {
	args := struct {
		Value   int64  `json:"value"`
		Memo    string `json:"memo"`
		Expiry  int64  `json:"expiry"`
		Private bool   `json:"private"`
	}{req.Value, req.Memo, req.Expiry, req.Private}
	var reply struct {
		RHash          string `json:"r_hash"`
		PaymentRequest string `json:"payment_request"`
	}
	if err := b.call(ctx, phaseUnary, "addInvoice", args, &reply); err != nil {
		return nil, err
	}
	return &ports.AddInvoiceReply{RHash: reply.RHash, PaymentRequest: reply.PaymentRequest}, nil
}

func (b *Bridge) WalletBalance(ctx context.Context) (*ports.WalletBalanceReply, error) {
	var reply struct {
		ConfirmedBalance   flexInt64 `json:"confirmed_balance"`
		UnconfirmedBalance flexInt64 `json:"unconfirmed_balance"`
	}
	if err := b.call(ctx, phaseUnary, "WalletBalance", nil, &reply); err != nil {
		return nil, err
	}
	return &ports.WalletBalanceReply{
		ConfirmedBalance:   int64(reply.ConfirmedBalance),
		UnconfirmedBalance: int64(reply.UnconfirmedBalance),
	}, nil
}

func (b *Bridge) ChannelBalance(ctx context.Context) (*ports.ChannelBalanceReply, error) {
	var reply struct {
		Balance            flexInt64 `json:"balance"`
		PendingOpenBalance flexInt64 `json:"pending_open_balance"`
	}
	if err := b.call(ctx, phaseUnary, "ChannelBalance", nil, &reply); err != nil {
		return nil, err
	}
	return &ports.ChannelBalanceReply{
		Balance:            int64(reply.Balance),
		PendingOpenBalance: int64(reply.PendingOpenBalance),
	}, nil
}

func (b *Bridge) ListTransactions(ctx context.Context) ([]domain.OnChainTransaction, error) {
	var reply struct {
		Transactions []wireTransaction `json:"transactions"`
	}
	if err := b.call(ctx, phaseUnary, "getTransactions", nil, &reply); err != nil {
		return nil, err
	}

	out := make([]domain.OnChainTransaction, 0, len(reply.Transactions))
	for _, tx := range reply.Transactions {
		out = append(out, tx.toDomain())
	}
	return out, nil
}

func (b *Bridge) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var reply struct {
		Invoices []wireInvoice `json:"invoices"`
	}
	if err := b.call(ctx, phaseUnary, "listInvoices", nil, &reply); err != nil {
		return nil, err
	}

	out := make([]domain.Invoice, 0, len(reply.Invoices))
	for _, inv := range reply.Invoices {
		out = append(out, inv.toDomain())
	}
	return out, nil
}

func (b *Bridge) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var reply struct {
		Payments []wirePayment `json:"payments"`
	}
	if err := b.call(ctx, phaseUnary, "listPayments", nil, &reply); err != nil {
		return nil, err
	}

	out := make([]domain.Payment, 0, len(reply.Payments))
	for _, p := range reply.Payments {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (b *Bridge) SendCoins(ctx context.Context, addr string, amount int64) (string, error) {
	args := struct {
		Addr   string `json:"addr"`
		Amount int64  `json:"amount"`
	}{addr, amount}
	var reply struct {
		Txid string `json:"txid"`
	}
	if err := b.call(ctx, phaseUnary, "sendCoins", args, &reply); err != nil {
		return "", err
	}
	return reply.Txid, nil
}

func (b *Bridge) ConnectPeer(ctx context.Context, pubkey, host string) error {
	args := struct {
		Addr struct {
			Pubkey string `json:"pubkey"`
			Host   string `json:"host"`
		} `json:"addr"`
	}{}
	args.Addr.Pubkey = pubkey
	args.Addr.Host = host
	return b.call(ctx, phaseUnary, "connectPeer", args, nil)
}

func (b *Bridge) ListPeers(ctx context.Context) ([]ports.Peer, error) {
	var reply struct {
		Peers []struct {
			PubKey  string `json:"pub_key"`
			Address string `json:"address"`
		} `json:"peers"`
	}
	if err := b.call(ctx, phaseUnary, "listPeers", nil, &reply); err != nil {
		return nil, err
	}

	out := make([]ports.Peer, 0, len(reply.Peers))
	for _, p := range reply.Peers {
		out = append(out, ports.Peer{Pubkey: p.PubKey, Address: p.Address})
	}
	return out, nil
}

func (b *Bridge) PendingChannels(ctx context.Context) (*ports.PendingChannelsReply, error) {
	var reply struct {
		PendingOpenChannels []struct {
			RemoteNodePub string    `json:"remote_node_pub"`
			Capacity      flexInt64 `json:"capacity"`
		} `json:"pending_open_channels"`
	}
	if err := b.call(ctx, phaseUnary, "pendingChannels", nil, &reply); err != nil {
		return nil, err
	}

	out := &ports.PendingChannelsReply{}
	for _, c := range reply.PendingOpenChannels {
		out.PendingOpenChannels = append(out.PendingOpenChannels, ports.PendingChannel{
			RemoteNodePub: c.RemoteNodePub,
			Capacity:      int64(c.Capacity),
		})
	}
	return out, nil
}

func (b *Bridge) ListChannels(ctx context.Context) (*ports.ListChannelsReply, error) {
	var reply struct {
		Channels []struct {
			RemotePubkey  string    `json:"remote_pubkey"`
			Capacity      flexInt64 `json:"capacity"`
			LocalBalance  flexInt64 `json:"local_balance"`
			RemoteBalance flexInt64 `json:"remote_balance"`
			Active        bool      `json:"active"`
		} `json:"channels"`
	}
	if err := b.call(ctx, phaseUnary, "listChannels", nil, &reply); err != nil {
		return nil, err
	}

	out := &ports.ListChannelsReply{}
	for _, c := range reply.Channels {
		out.Channels = append(out.Channels, ports.Channel{
			RemotePubkey:  c.RemotePubkey,
			Capacity:      int64(c.Capacity),
			LocalBalance:  int64(c.LocalBalance),
			RemoteBalance: int64(c.RemoteBalance),
			Active:        c.Active,
		})
	}
	return out, nil
}

// ---- streaming phase ----

// SendPayment dials the sendPayment websocket stream.
func (b *Bridge) SendPayment(ctx context.Context) (ports.PaymentStream, error) {
	wsURL := httpToWS(b.baseURL) + "/stream/sendPayment"
	conn, resp, err := b.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, apperror.ErrNodeCommand("sendPayment", fmt.Errorf("dialing stream: %w", err))
	}
	return &paymentStream{conn: conn}, nil
}

type paymentStream struct {
	conn *websocket.Conn
}

func (s *paymentStream) Send(req ports.PaymentStreamRequest) error {
	if err := s.conn.WriteJSON(req); err != nil {
		return apperror.ErrNodeCommand("sendPayment", fmt.Errorf("writing stream: %w", err))
	}
	return nil
}

func (s *paymentStream) Recv() (*ports.PaymentStreamResult, error) {
	var result struct {
		PaymentError    string `json:"payment_error"`
		PaymentPreimage string `json:"payment_preimage"`
	}
	if err := s.conn.ReadJSON(&result); err != nil {
		return nil, apperror.ErrNodeCommand("sendPayment", fmt.Errorf("reading stream: %w", err))
	}
	return &ports.PaymentStreamResult{
		PaymentError:    result.PaymentError,
		PaymentPreimage: result.PaymentPreimage,
	}, nil
}

func (s *paymentStream) Close() error {
	return s.conn.Close()
}

func httpToWS(url string) string {
	switch {
	case strings.HasPrefix(url, "https://"):
		return "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		return "ws://" + strings.TrimPrefix(url, "http://")
	default:
		return url
	}
}
