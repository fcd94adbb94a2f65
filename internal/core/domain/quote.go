package domain

import (
	"math"

	"lightning-wallet-daemon/pkg/apperror"
)

// Side is the direction of a trade from the user's perspective.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Valid reports whether s is a known trade side.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Quote is a time-bounded price commitment for a buy/sell trade.
// It is consumed or expires; it is never auto-cleared.
type Quote struct {
	Side       Side    `json:"side"`
	SatPrice   float64 `json:"sat_price"` // fiat per satoshi
	SatAmount  int64   `json:"sat_amount"`
	ValidUntil int64   `json:"valid_until"` // epoch seconds
	Signature  string  `json:"signature,omitempty"`
	Invoice    string  `json:"invoice,omitempty"`
}

// Reset clears the quote to its no-active-quote sentinel. The side is kept;
// a reset quote always fails validation as expired.
func (q *Quote) Reset() {
	q.SatPrice = math.NaN()
	q.SatAmount = 0
	q.ValidUntil = 0
	q.Signature = ""
	q.Invoice = ""
}

// Active reports whether the quote holds a requested, not-yet-reset price.
func (q Quote) Active() bool {
	return q.Invoice != "" && !math.IsNaN(q.SatPrice)
}

// Validate checks that the quote matches the requested side and has not
// expired at now. Pure precondition check, no mutation.
func (q Quote) Validate(side Side, now int64) error {
	if q.Side != side {
		return apperror.ErrSideMismatch(string(side), string(q.Side))
	}
	if now > q.ValidUntil {
		return apperror.ErrQuoteExpired(q.ValidUntil, now)
	}
	return nil
}
