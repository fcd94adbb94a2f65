package service

import (
	"context"
	"sync"
	"time"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"

	"github.com/rs/zerolog"
)

// priceDocumentPath is the backend document carrying the fiat price of
// one satoshi.
const priceDocumentPath = "global/price"

// defaultBTCRate is the bootstrap rate used until the first successful
// refresh.
const defaultBTCRate = 0.0001

// RateService implements ports.Rates. The fiat unit is the identity rate;
// the satoshi rate comes from the backend price document, fronted by an
// optional cache.
type RateService struct {
	docs     ports.DocumentStore
	cache    ports.RateCache
	cacheTTL time.Duration
	log      zerolog.Logger

	mu  sync.RWMutex
	btc float64
}

// NewRateService creates a new RateService. cache may be nil.
func NewRateService(docs ports.DocumentStore, cache ports.RateCache, cacheTTL time.Duration, log zerolog.Logger) *RateService {
	return &RateService{
		docs:     docs,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
		btc:      defaultBTCRate,
	}
}

// Refresh updates the satoshi rate. Failures keep the prior snapshot.
func (s *RateService) Refresh(ctx context.Context) {
	if s.cache != nil {
		rate, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("rate cache read failed")
		} else if ok {
			s.setBTC(rate)
			return
		}
	}

	var doc ports.PriceDocument
	if err := s.docs.GetDocument(ctx, priceDocumentPath, &doc); err != nil {
		s.log.Error().Err(err).Msg("price document fetch failed")
		return
	}
	s.setBTC(doc.BTC)

	if s.cache != nil {
		if err := s.cache.Set(ctx, doc.BTC, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("rate cache write failed")
		}
	}
}

// Rate returns the fiat value of one unit of the given currency.
func (s *RateService) Rate(currency domain.CurrencyType) float64 {
	switch currency {
	case domain.CurrencyUSD:
		return 1
	case domain.CurrencyBTC:
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.btc
	default:
		return 0
	}
}

func (s *RateService) setBTC(rate float64) {
	s.mu.Lock()
	s.btc = rate
	s.mu.Unlock()
}
