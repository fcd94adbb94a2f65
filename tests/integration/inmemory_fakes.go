// Package integration wires real services against in-memory node and
// backend fakes, exercising the flows end to end without a live node.
package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"
)

// fakeNode is an in-memory wallet node. It enforces the unlocker phase
// ordering the real node does: unlocker commands fail once the wallet is
// unlocked, wallet commands fail until it is.
type fakeNode struct {
	mu sync.Mutex

	walletExists bool
	unlocked     bool
	password     string
	seed         []string

	bestHeight   int32
	syncedHeight int32
	network      string

	balances     ports.WalletBalanceReply
	channelFunds ports.ChannelBalanceReply
	transactions []domain.OnChainTransaction
	invoices     []domain.Invoice
	payments     []domain.Payment
	peers        []ports.Peer
	pending      []ports.PendingChannel
	channels     []ports.Channel

	invoiceSeq   int
	paymentError string // next sendPayment outcome
	decodeTable  map[string]domain.DecodedPaymentRequest

	unaryCalls map[string]int
}

func newFakeNode() *fakeNode {
	return &fakeNode{
		network:     "testnet",
		bestHeight:  200,
		decodeTable: map[string]domain.DecodedPaymentRequest{},
		unaryCalls:  map[string]int{},
	}
}

func (n *fakeNode) count(command string) {
	n.unaryCalls[command]++
}

func (n *fakeNode) GenSeed(ctx context.Context) (*ports.GenSeedReply, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.unlocked {
		return nil, apperror.ErrUnlockerClosed()
	}
	if n.walletExists {
		return nil, apperror.ErrWalletExistsSignal()
	}
	n.seed = strings.Fields("abandon ability able about above absent absorb abstract absurd abuse access accident")
	return &ports.GenSeedReply{CipherSeedMnemonic: n.seed}, nil
}

func (n *fakeNode) InitWallet(ctx context.Context, req ports.InitWalletRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.walletExists {
		return apperror.ErrWalletExistsSignal()
	}
	n.walletExists = true
	n.unlocked = true
	n.password = req.WalletPassword
	return nil
}

func (n *fakeNode) UnlockWallet(ctx context.Context, req ports.UnlockWalletRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.walletExists {
		return apperror.ErrNodeCommand("UnlockWallet", fmt.Errorf("no wallet"))
	}
	if req.WalletPassword != n.password {
		return apperror.ErrNodeCommand("UnlockWallet", fmt.Errorf("invalid passphrase"))
	}
	n.unlocked = true
	return nil
}

func (n *fakeNode) requireUnlocked() error {
	if !n.unlocked {
		return apperror.ErrNodeCommand("wallet", fmt.Errorf("wallet locked"))
	}
	return nil
}

func (n *fakeNode) GetInfo(ctx context.Context) (*ports.GetInfoReply, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	n.count("getInfo")
	return &ports.GetInfoReply{
		Version:        "0.10.0-beta commit=v0.10.0-beta",
		IdentityPubkey: "02fakepubkey",
		SyncedToChain:  n.syncedHeight >= n.bestHeight,
		BlockHeight:    n.syncedHeight,
		Chains:         []ports.NodeChain{{Chain: "bitcoin", Network: n.network}},
	}, nil
}

func (n *fakeNode) NewAddress(ctx context.Context, addrType int32) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return "", err
	}
	return "tb1qfakeaddress", nil
}

func (n *fakeNode) DecodePayReq(ctx context.Context, payReq string) (*domain.DecodedPaymentRequest, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	decoded, ok := n.decodeTable[payReq]
	if !ok {
		return nil, apperror.ErrNodeCommand("decodePayReq", fmt.Errorf("unknown invoice"))
	}
	return &decoded, nil
}

func (n *fakeNode) AddInvoice(ctx context.Context, req ports.AddInvoiceRequest) (*ports.AddInvoiceReply, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	n.invoiceSeq++
	now := time.Now().Unix()
	payReq := fmt.Sprintf("lntb1fake%d", n.invoiceSeq)
	n.decodeTable[payReq] = domain.DecodedPaymentRequest{
		Destination: "02fakepubkey",
		PaymentHash: fmt.Sprintf("hash%d", n.invoiceSeq),
		NumSatoshis: req.Value,
		Timestamp:   now,
		Expiry:      req.Expiry,
		Description: req.Memo,
	}
	n.invoices = append(n.invoices, domain.Invoice{
		Memo:           req.Memo,
		Value:          req.Value,
		CreationDate:   now,
		Expiry:         req.Expiry,
		PaymentRequest: payReq,
		Private:        req.Private,
	})
	return &ports.AddInvoiceReply{
		RHash:          fmt.Sprintf("hash%d", n.invoiceSeq),
		PaymentRequest: payReq,
	}, nil
}

func (n *fakeNode) WalletBalance(ctx context.Context) (*ports.WalletBalanceReply, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	n.count("WalletBalance")
	reply := n.balances
	return &reply, nil
}

func (n *fakeNode) ChannelBalance(ctx context.Context) (*ports.ChannelBalanceReply, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	reply := n.channelFunds
	return &reply, nil
}

func (n *fakeNode) ListTransactions(ctx context.Context) ([]domain.OnChainTransaction, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	n.count("getTransactions")
	return append([]domain.OnChainTransaction(nil), n.transactions...), nil
}

func (n *fakeNode) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	n.count("listInvoices")
	return append([]domain.Invoice(nil), n.invoices...), nil
}

func (n *fakeNode) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	n.count("listPayments")
	return append([]domain.Payment(nil), n.payments...), nil
}

func (n *fakeNode) SendCoins(ctx context.Context, addr string, amount int64) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return "", err
	}
	return "faketxid", nil
}

func (n *fakeNode) ConnectPeer(ctx context.Context, pubkey, host string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return err
	}
	n.peers = append(n.peers, ports.Peer{Pubkey: pubkey, Address: host})
	return nil
}

func (n *fakeNode) ListPeers(ctx context.Context) ([]ports.Peer, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Peer(nil), n.peers...), nil
}

func (n *fakeNode) PendingChannels(ctx context.Context) (*ports.PendingChannelsReply, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return &ports.PendingChannelsReply{PendingOpenChannels: n.pending}, nil
}

func (n *fakeNode) ListChannels(ctx context.Context) (*ports.ListChannelsReply, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return &ports.ListChannelsReply{Channels: n.channels}, nil
}

func (n *fakeNode) SendPayment(ctx context.Context) (ports.PaymentStream, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.requireUnlocked(); err != nil {
		return nil, err
	}
	return &fakePaymentStream{node: n}, nil
}

type fakePaymentStream struct {
	node *fakeNode
}

func (s *fakePaymentStream) Send(req ports.PaymentStreamRequest) error {
	return nil
}

func (s *fakePaymentStream) Recv() (*ports.PaymentStreamResult, error) {
	s.node.mu.Lock()
	failure := s.node.paymentError
	s.node.mu.Unlock()
	if failure != "" {
		return &ports.PaymentStreamResult{PaymentError: failure}, nil
	}
	return &ports.PaymentStreamResult{PaymentPreimage: "deadbeef"}, nil
}

func (s *fakePaymentStream) Close() error {
	return nil
}

// fakeBackend is an in-memory ledger backend: function calls plus a
// document tree keyed by path.
type fakeBackend struct {
	mu sync.Mutex

	documents   map[string]json.RawMessage
	fiatBalance int64
	satPrice    float64
	buys        []ports.BuyRequest
	pubkeys     map[string]string
	openCalls   int

	// node lets quoteLNDBTC mint the sell-side invoice the way the real
	// broker does, with the price in the description.
	node *fakeNode
}

func newFakeBackend(node *fakeNode) *fakeBackend {
	return &fakeBackend{
		documents: map[string]json.RawMessage{},
		satPrice:  0.0001,
		pubkeys:   map[string]string{},
		node:      node,
	}
}

func (b *fakeBackend) setDocument(path string, doc any) {
	raw, _ := json.Marshal(doc)
	b.mu.Lock()
	b.documents[path] = raw
	b.mu.Unlock()
}

func (b *fakeBackend) QuoteTrade(ctx context.Context, req ports.QuoteTradeRequest) (*ports.QuoteTradeReply, error) {
	b.mu.Lock()
	price := b.satPrice
	b.mu.Unlock()

	reply := &ports.QuoteTradeReply{
		Side:      req.Side,
		SatPrice:  price,
		Signature: "sig",
	}
	switch req.Side {
	case domain.SideBuy:
		reply.Invoice = req.Invoice
	case domain.SideSell:
		invoice, err := b.node.AddInvoice(ctx, ports.AddInvoiceRequest{
			Value:  req.SatAmount,
			Memo:   fmt.Sprintf("Sell BTC at: %g", price),
			Expiry: 30,
		})
		if err != nil {
			return nil, err
		}
		reply.Invoice = invoice.PaymentRequest
	}
	return reply, nil
}

func (b *fakeBackend) ExecuteBuy(ctx context.Context, req ports.BuyRequest) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buys = append(b.buys, req)
	return true, nil
}

func (b *fakeBackend) SendPubKey(ctx context.Context, pubkey, network string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pubkeys[network] = pubkey
	return nil
}

func (b *fakeBackend) OpenChannel(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.openCalls++
	b.node.pending = append(b.node.pending, ports.PendingChannel{
		RemoteNodePub: "03servicenode",
		Capacity:      100000,
	})
	return nil
}

func (b *fakeBackend) FiatBalances(ctx context.Context) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fiatBalance, nil
}

func (b *fakeBackend) GetDocument(ctx context.Context, path string, out any) error {
	b.mu.Lock()
	raw, ok := b.documents[path]
	b.mu.Unlock()
	if !ok {
		return apperror.ErrDocumentRead(path, fmt.Errorf("document not found"))
	}
	return json.Unmarshal(raw, out)
}

func (b *fakeBackend) SetDocument(ctx context.Context, path string, fields map[string]any, merge bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc := map[string]any{}
	if merge {
		if raw, ok := b.documents[path]; ok {
			if err := json.Unmarshal(raw, &doc); err != nil {
				return apperror.ErrDocumentWrite(path, err)
			}
		}
	}
	for k, v := range fields {
		doc[k] = v
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return apperror.ErrDocumentWrite(path, err)
	}
	b.documents[path] = raw
	return nil
}

// fakeSession is a fixed authenticated user.
type fakeSession struct {
	uid string
}

func (s *fakeSession) UserID(ctx context.Context) (string, error) {
	if s.uid == "" {
		return "", apperror.ErrConfig("user id not configured")
	}
	return s.uid, nil
}

// memKeyStore is an in-memory ports.SecureKeyStore.
type memKeyStore struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemKeyStore() *memKeyStore {
	return &memKeyStore{items: map[string]string{}}
}

func (s *memKeyStore) GetItem(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[key], nil
}

func (s *memKeyStore) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// fixedOracle reports a constant best height.
type fixedOracle struct {
	height int32
}

func (o *fixedOracle) BestHeight(ctx context.Context) (int32, error) {
	return o.height, nil
}

// recordingNotifier captures notifications.
type recordingNotifier struct {
	mu     sync.Mutex
	bodies []string
}

func (n *recordingNotifier) Notify(ctx context.Context, title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bodies = append(n.bodies, body)
	return nil
}

// staticScreen is a fixed navigation position.
type staticScreen struct {
	screen string
}

func (s *staticScreen) CurrentScreen() string {
	return s.screen
}
