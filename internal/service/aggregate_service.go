package service

import (
	"context"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"

	"github.com/rs/zerolog"
)

// AggregateService implements ports.AggregateStore across the two accounts
// and the rate snapshot.
type AggregateService struct {
	rates ports.Rates
	fiat  ports.FiatAccount
	node  ports.NodeAccount
	log   zerolog.Logger
}

// NewAggregateService creates a new AggregateService.
func NewAggregateService(rates ports.Rates, fiat ports.FiatAccount, node ports.NodeAccount, log zerolog.Logger) *AggregateService {
	return &AggregateService{
		rates: rates,
		fiat:  fiat,
		node:  node,
		log:   log,
	}
}

// UpdateBalances refreshes rates, the fiat balance and the node balance in
// that order. Only the node fetch can fail the pass.
func (s *AggregateService) UpdateBalances(ctx context.Context) error {
	s.rates.Refresh(ctx)
	s.fiat.RefreshBalance(ctx)
	if _, err := s.node.RefreshBalance(ctx); err != nil {
		return err
	}
	return nil
}

// UpdateTransactions refreshes the fiat then the node transaction sets.
func (s *AggregateService) UpdateTransactions(ctx context.Context) error {
	s.fiat.RefreshTransactions(ctx)
	return s.node.RefreshTransactions(ctx)
}

// BalanceInCurrency converts account balances into the requested display
// currency via the fiat snapshot rates.
func (s *AggregateService) BalanceInCurrency(account domain.AccountType, currency domain.CurrencyType) float64 {
	target := s.rates.Rate(currency)
	if target == 0 {
		return 0
	}

	switch account {
	case domain.AccountTypeBitcoin:
		return s.accountValue(s.node.Balance(), s.node.Currency()) / target
	case domain.AccountTypeFiat:
		return s.accountValue(s.fiat.Balance(), s.fiat.Currency()) / target
	case domain.AccountTypeAll:
		return (s.accountValue(s.node.Balance(), s.node.Currency()) +
			s.accountValue(s.fiat.Balance(), s.fiat.Currency())) / target
	default:
		return 0
	}
}

// accountValue is the fiat value of a balance in its native unit.
func (s *AggregateService) accountValue(balance domain.Balance, currency domain.CurrencyType) float64 {
	return float64(balance.Total()) * s.rates.Rate(currency)
}
