package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	// defaultQuoteAmount is used when the caller does not name an amount.
	defaultQuoteAmount = 1000
	// buyInvoiceExpiry keeps the receiving invoice alive just long enough
	// for the broker to quote against it.
	buyInvoiceExpiry = 30
	buyInvoiceMemo   = "Buy BTC"
)

// ExchangeService implements ports.Exchange. It holds at most one live
// quote; a new request or a reset replaces it wholesale.
type ExchangeService struct {
	caller  ports.FunctionCaller
	account ports.NodeAccount
	log     zerolog.Logger
	now     func() time.Time

	mu    sync.Mutex
	quote domain.Quote
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(caller ports.FunctionCaller, account ports.NodeAccount, log zerolog.Logger) *ExchangeService {
	svc := &ExchangeService{
		caller:  caller,
		account: account,
		log:     log,
		now:     time.Now,
	}
	svc.quote.Reset()
	return svc
}

// RequestQuote asks the broker to price a trade. A buy quote is priced
// against a short-lived invoice we create; a sell quote comes back as a
// broker invoice whose description carries the price.
func (s *ExchangeService) RequestQuote(ctx context.Context, side domain.Side, satAmount int64) (domain.Quote, error) {
	if !side.Valid() {
		return domain.Quote{}, apperror.Validation(fmt.Sprintf("unknown trade side %q", side))
	}
	if satAmount <= 0 {
		satAmount = defaultQuoteAmount
	}

	req := ports.QuoteTradeRequest{Side: side}
	switch side {
	case domain.SideBuy:
		reply, err := s.account.AddInvoice(ctx, ports.AddInvoiceRequest{
			Value:  satAmount,
			Memo:   buyInvoiceMemo,
			Expiry: buyInvoiceExpiry,
		})
		if err != nil {
			return domain.Quote{}, fmt.Errorf("creating buy invoice: %w", err)
		}
		req.Invoice = reply.PaymentRequest
	case domain.SideSell:
		req.SatAmount = satAmount
	}

	reply, err := s.caller.QuoteTrade(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("side", string(side)).Msg("quote request failed")
		return domain.Quote{}, fmt.Errorf("requesting quote: %w", err)
	}

	decoded, err := s.account.DecodePayReq(ctx, reply.Invoice)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("decoding quote invoice: %w", err)
	}

	quote := domain.Quote{
		Side:      reply.Side,
		SatPrice:  reply.SatPrice,
		SatAmount: decoded.NumSatoshis,
		ValidUntil: decoded.Timestamp + decoded.Expiry,
		Signature: reply.Signature,
		Invoice:   reply.Invoice,
	}
	if side == domain.SideSell {
		price, perr := priceFromDescription(decoded.Description)
		if perr != nil {
			return domain.Quote{}, apperror.ErrDecoding("quote invoice description", perr)
		}
		quote.SatPrice = price
	}

	s.mu.Lock()
	s.quote = quote
	s.mu.Unlock()

	s.log.Info().
		Str("side", string(quote.Side)).
		Int64("sat_amount", quote.SatAmount).
		Float64("sat_price", quote.SatPrice).
		Int64("valid_until", quote.ValidUntil).
		Msg("quote accepted")
	return quote, nil
}

// ExecuteBuy settles the held buy quote through the broker. The broker
// pays the invoice the quote was priced against.
func (s *ExchangeService) ExecuteBuy(ctx context.Context) (bool, error) {
	quote := s.Quote()
	if err := quote.Validate(domain.SideBuy, s.now().Unix()); err != nil {
		s.log.Warn().Err(err).Msg("buy rejected")
		return false, err
	}

	accepted, err := s.caller.ExecuteBuy(ctx, ports.BuyRequest{
		Side:      quote.Side,
		Invoice:   quote.Invoice,
		SatPrice:  quote.SatPrice,
		Signature: quote.Signature,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("buy execution failed")
		return false, fmt.Errorf("executing buy: %w", err)
	}
	return accepted, nil
}

// ExecuteSell settles the held sell quote by paying the broker's invoice.
func (s *ExchangeService) ExecuteSell(ctx context.Context) (bool, error) {
	quote := s.Quote()
	if err := quote.Validate(domain.SideSell, s.now().Unix()); err != nil {
		s.log.Warn().Err(err).Msg("sell rejected")
		return false, err
	}

	success, err := s.account.PayInvoice(ctx, quote.Invoice)
	if err != nil {
		s.log.Error().Err(err).Msg("sell payment failed")
		return false, fmt.Errorf("paying sell invoice: %w", err)
	}
	return success, nil
}

// Quote returns the held quote.
func (s *ExchangeService) Quote() domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote
}

// Reset invalidates the held quote.
func (s *ExchangeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quote.Reset()
}

// priceFromDescription extracts the sat price from a sell-quote invoice
// description of the form "<text>: <price>".
func priceFromDescription(description string) (float64, error) {
	parts := strings.SplitN(description, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("no price separator in %q", description)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing price from %q: %w", description, err)
	}
	return price, nil
}
