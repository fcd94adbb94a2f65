package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReceiveScreenName is the screen on which an incoming-payment banner is
// suppressed in favour of an in-screen alert.
const ReceiveScreenName = "receiveBitcoin"

// defaultInvoiceExpiry is applied when a caller does not set one.
const defaultInvoiceExpiry = 172800

// NodeAccountService implements ports.NodeAccount on top of the node
// transport. It is the bitcoin side of the ledger; FiatService is the other.
type NodeAccountService struct {
	node       ports.NodeTransport
	notifier   ports.Notifier
	nav        ports.NavigationState
	payTimeout time.Duration
	log        zerolog.Logger

	mu                 sync.Mutex
	balance            domain.Balance
	transactions       []domain.OnChainTransaction
	invoices           []domain.Invoice
	payments           []domain.Payment
	onChainAddress     string
	lastInvoice        string
	receiveScreenAlert bool
}

// NewNodeAccountService creates a new NodeAccountService.
func NewNodeAccountService(
	node ports.NodeTransport,
	notifier ports.Notifier,
	nav ports.NavigationState,
	payTimeout time.Duration,
	log zerolog.Logger,
) *NodeAccountService {
	return &NodeAccountService{
		node:       node,
		notifier:   notifier,
		nav:        nav,
		payTimeout: payTimeout,
		log:        log,
	}
}

// RefreshBalance combines the on-chain and channel balances into one pair.
// Confirmed channel liquidity counts as confirmed; pending-open as unconfirmed.
func (s *NodeAccountService) RefreshBalance(ctx context.Context) (int64, error) {
	onchain, err := s.node.WalletBalance(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("wallet balance fetch failed")
		return 0, apperror.ErrBalanceFetch(err)
	}
	channel, err := s.node.ChannelBalance(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("channel balance fetch failed")
		return 0, apperror.ErrBalanceFetch(err)
	}

	s.mu.Lock()
	s.balance = domain.Balance{
		Confirmed:   onchain.ConfirmedBalance + channel.Balance,
		Unconfirmed: onchain.UnconfirmedBalance + channel.PendingOpenBalance,
	}
	total := s.balance.Total()
	s.mu.Unlock()

	return total, nil
}

// RefreshTransactions replaces the on-chain transaction set wholesale.
func (s *NodeAccountService) RefreshTransactions(ctx context.Context) error {
	txs, err := s.node.ListTransactions(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("transaction list fetch failed")
		return fmt.Errorf("listing transactions: %w", err)
	}
	s.mu.Lock()
	s.transactions = txs
	s.mu.Unlock()
	return nil
}

// RefreshInvoices replaces the invoice set. Fetch failures are logged and
// swallowed; the previous set stays visible.
func (s *NodeAccountService) RefreshInvoices(ctx context.Context) {
	invoices, err := s.node.ListInvoices(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("invoice list fetch failed")
		return
	}
	s.mu.Lock()
	s.invoices = invoices
	s.mu.Unlock()
}

// RefreshPayments replaces the payment set. Same swallow policy as invoices.
func (s *NodeAccountService) RefreshPayments(ctx context.Context) {
	payments, err := s.node.ListPayments(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("payment list fetch failed")
		return
	}
	s.mu.Lock()
	s.payments = payments
	s.mu.Unlock()
}

// RefreshAll runs one full refresh pass. Balance and transaction failures
// surface; invoice and payment failures do not.
func (s *NodeAccountService) RefreshAll(ctx context.Context) error {
	if _, err := s.RefreshBalance(ctx); err != nil {
		return err
	}
	if err := s.RefreshTransactions(ctx); err != nil {
		return err
	}
	s.RefreshInvoices(ctx)
	s.RefreshPayments(ctx)
	return nil
}

// Balance returns the current combined balance.
func (s *NodeAccountService) Balance() domain.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Currency reports the account's native unit.
func (s *NodeAccountService) Currency() domain.CurrencyType {
	return domain.CurrencyBTC
}

// History merges transactions, unexpired or settled invoices, and payments
// into one date-ordered view.
func (s *NodeAccountService) History(now int64) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.MergeHistory(s.transactions, s.invoices, s.payments, now)
}

// NewAddress asks the node for a fresh witness-pubkey-hash address and
// remembers it.
func (s *NodeAccountService) NewAddress(ctx context.Context) (string, error) {
	address, err := s.node.NewAddress(ctx, 0)
	if err != nil {
		s.log.Error().Err(err).Msg("new address fetch failed")
		return "", fmt.Errorf("getting new address: %w", err)
	}
	s.mu.Lock()
	s.onChainAddress = address
	s.mu.Unlock()
	return address, nil
}

// OnChainAddress returns the last generated on-chain address.
func (s *NodeAccountService) OnChainAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onChainAddress
}

// AddInvoice creates an invoice. Invoices default to a 48h expiry and are
// always private (route hints for our unannounced channels).
func (s *NodeAccountService) AddInvoice(ctx context.Context, req ports.AddInvoiceRequest) (*ports.AddInvoiceReply, error) {
	if req.Expiry == 0 {
		req.Expiry = defaultInvoiceExpiry
	}
	req.Private = true

	reply, err := s.node.AddInvoice(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Msg("add invoice failed")
		return nil, fmt.Errorf("adding invoice: %w", err)
	}

	s.mu.Lock()
	s.lastInvoice = reply.PaymentRequest
	s.mu.Unlock()
	return reply, nil
}

// DecodePayReq decodes a payment request via the node.
func (s *NodeAccountService) DecodePayReq(ctx context.Context, payReq string) (*domain.DecodedPaymentRequest, error) {
	decoded, err := s.node.DecodePayReq(ctx, payReq)
	if err != nil {
		s.log.Error().Err(err).Msg("payment request decode failed")
		return nil, fmt.Errorf("decoding payment request: %w", err)
	}
	return decoded, nil
}

// SendCoins broadcasts an on-chain send and returns the txid.
func (s *NodeAccountService) SendCoins(ctx context.Context, addr string, amount int64) (string, error) {
	txid, err := s.node.SendCoins(ctx, addr, amount)
	if err != nil {
		s.log.Error().Err(err).Msg("on-chain send failed")
		return "", fmt.Errorf("sending coins: %w", err)
	}
	return txid, nil
}

// PayInvoice pays a lightning invoice over the payment stream, bounded by
// the configured timeout. On timeout the attempt counts as failed locally
// even if the node later settles it.
func (s *NodeAccountService) PayInvoice(ctx context.Context, payReq string) (bool, error) {
	stream, err := s.node.SendPayment(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("opening payment stream failed")
		return false, fmt.Errorf("opening payment stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Send(ports.PaymentStreamRequest{PaymentRequest: payReq}); err != nil {
		s.log.Error().Err(err).Msg("sending payment request failed")
		return false, fmt.Errorf("sending payment: %w", err)
	}

	type recvResult struct {
		result *ports.PaymentStreamResult
		err    error
	}
	results := make(chan recvResult, 1)
	go func() {
		result, err := stream.Recv()
		results <- recvResult{result, err}
	}()

	timer := time.NewTimer(s.payTimeout)
	defer timer.Stop()

	select {
	case r := <-results:
		if r.err != nil {
			s.log.Error().Err(r.err).Msg("payment stream receive failed")
			return false, fmt.Errorf("receiving payment result: %w", r.err)
		}
		if r.result.PaymentError != "" {
			s.log.Warn().Str("reason", r.result.PaymentError).Msg("payment rejected")
			return false, apperror.ErrPaymentRejected(r.result.PaymentError)
		}
		return true, nil
	case <-timer.C:
		s.log.Warn().Dur("timeout", s.payTimeout).Msg("payment timed out locally")
		return false, apperror.ErrPaymentTimeout()
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// NotifyIncomingPayment handles a settled-invoice event. A settlement of
// the invoice we most recently created is surfaced as an in-screen alert
// when the user is already on the receive screen; everything else becomes
// a notification.
func (s *NodeAccountService) NotifyIncomingPayment(ctx context.Context, invoice *domain.Invoice) error {
	if invoice == nil || !invoice.Settled {
		return nil
	}

	s.mu.Lock()
	matchesLast := s.lastInvoice != "" && invoice.PaymentRequest == s.lastInvoice
	notify := true
	if matchesLast {
		s.lastInvoice = ""
		if s.nav.CurrentScreen() == ReceiveScreenName {
			s.receiveScreenAlert = true
			notify = false
		}
	}
	s.mu.Unlock()

	if !notify {
		return nil
	}
	body := fmt.Sprintf("You just received %d sats", invoice.Value)
	if err := s.notifier.Notify(ctx, "Payment received", body); err != nil {
		s.log.Warn().Err(err).Msg("payment notification failed")
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}

// ReceiveScreenAlert reports whether an in-screen settlement alert is pending.
func (s *NodeAccountService) ReceiveScreenAlert() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receiveScreenAlert
}

// ClearReceiveScreenAlert acknowledges the in-screen alert.
func (s *NodeAccountService) ClearReceiveScreenAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receiveScreenAlert = false
}
