package service

import (
	"context"
	"sync"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"

	"github.com/rs/zerolog"
)

// FiatService implements ports.FiatAccount against the backend. Every
// refresh is best-effort: on failure the prior snapshot stays visible.
type FiatService struct {
	caller ports.FunctionCaller
	docs   ports.DocumentStore
	auth   ports.AuthSession
	log    zerolog.Logger

	mu           sync.Mutex
	balance      domain.Balance
	transactions []domain.FiatTransaction
}

// NewFiatService creates a new FiatService.
func NewFiatService(caller ports.FunctionCaller, docs ports.DocumentStore, auth ports.AuthSession, log zerolog.Logger) *FiatService {
	return &FiatService{
		caller: caller,
		docs:   docs,
		auth:   auth,
		log:    log,
	}
}

// RefreshBalance pulls the backend fiat balance. The backend reports only
// settled funds, so the unconfirmed side stays zero.
func (s *FiatService) RefreshBalance(ctx context.Context) {
	balance, err := s.caller.FiatBalances(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fiat balance fetch failed")
		return
	}
	s.mu.Lock()
	s.balance = domain.Balance{Confirmed: balance}
	s.mu.Unlock()
}

// RefreshTransactions reads the user document and replaces the fiat
// transaction set.
func (s *FiatService) RefreshTransactions(ctx context.Context) {
	uid, err := s.auth.UserID(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("resolving user for fiat transactions failed")
		return
	}

	var doc ports.UserDocument
	if err := s.docs.GetDocument(ctx, "users/"+uid, &doc); err != nil {
		s.log.Error().Err(err).Msg("user document fetch failed")
		return
	}
	s.mu.Lock()
	s.transactions = doc.Transactions
	s.mu.Unlock()
}

// Refresh runs balance then transactions.
func (s *FiatService) Refresh(ctx context.Context) {
	s.RefreshBalance(ctx)
	s.RefreshTransactions(ctx)
}

// Balance returns the current fiat balance.
func (s *FiatService) Balance() domain.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Currency reports the account's native unit.
func (s *FiatService) Currency() domain.CurrencyType {
	return domain.CurrencyUSD
}

// Transactions projects the fiat records into history entries. Fiat
// records are always complete by the time the backend lists them.
func (s *FiatService) Transactions() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]domain.HistoryEntry, 0, len(s.transactions))
	for _, tx := range s.transactions {
		entries = append(entries, domain.HistoryEntry{
			Name:   tx.Name,
			Icon:   tx.Icon,
			Amount: tx.Amount,
			Date:   tx.Date,
			Status: domain.HistoryStatusComplete,
		})
	}
	return entries
}
