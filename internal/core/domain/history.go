package domain

import (
	"fmt"
	"sort"
)

// History entry statuses.
const (
	HistoryStatusConfirmed   = "confirmed"
	HistoryStatusUnconfirmed = "unconfirmed"
	HistoryStatusComplete    = "complete"
	HistoryStatusInProgress  = "in-progress"
)

// History entry icons, matching what clients render for each settlement kind.
const (
	iconReceived  = "ios-download"
	iconSent      = "ios-exit"
	iconLightning = "ios-thunderstorm"
)

// HistoryEntry is one row of the unified transaction history projection.
type HistoryEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Amount   int64  `json:"amount"`
	Date     int64  `json:"date"`
	Status   string `json:"status"`
	Preimage string `json:"preimage,omitempty"`
	Memo     string `json:"memo,omitempty"`
}

// ProjectOnChain maps an on-chain transaction to a history entry.
func ProjectOnChain(tx OnChainTransaction) HistoryEntry {
	name, icon := "Sent", iconSent
	if tx.Amount > 0 {
		name, icon = "Received", iconReceived
	}

	status := HistoryStatusConfirmed
	if !tx.Confirmed() {
		status = HistoryStatusUnconfirmed
	}

	return HistoryEntry{
		ID:     tx.TxHash,
		Name:   name,
		Icon:   icon,
		Amount: tx.Amount,
		Date:   tx.Timestamp,
		Status: status,
	}
}

// ProjectInvoice maps an invoice to a history entry.
func ProjectInvoice(inv Invoice) HistoryEntry {
	name := "Waiting for payment"
	status := HistoryStatusInProgress
	if inv.Settled {
		status = HistoryStatusComplete
		name = "Payment received"
		if inv.Memo != "" {
			name = inv.Memo
		}
	}

	return HistoryEntry{
		ID:       inv.Hash,
		Name:     name,
		Icon:     iconLightning,
		Amount:   inv.Value,
		Date:     inv.CreationDate,
		Status:   status,
		Preimage: inv.Preimage,
		Memo:     inv.Memo,
	}
}

// ProjectPayment maps an outgoing payment to a history entry.
func ProjectPayment(p Payment) HistoryEntry {
	name := fmt.Sprintf("Paid invoice %s", p.Hash)
	if len(p.Hash) >= 15 {
		name = fmt.Sprintf("Paid invoice %s...%s", p.Hash[:7], p.Hash[len(p.Hash)-8:])
	}

	return HistoryEntry{
		ID:       p.Hash,
		Name:     name,
		Icon:     iconLightning,
		Amount:   p.Value,
		Date:     p.CreationDate,
		Status:   HistoryStatusComplete,
		Preimage: p.Preimage,
	}
}

// MergeHistory builds the unified history: on-chain transactions, invoices
// that are settled or not yet expired at now, and payments, ordered by
// ascending date. Ties keep input order (on-chain, then invoices, then
// payments) — a weak ordering, not a strict total order.
func MergeHistory(txs []OnChainTransaction, invoices []Invoice, payments []Payment, now int64) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(txs)+len(invoices)+len(payments))

	for _, tx := range txs {
		entries = append(entries, ProjectOnChain(tx))
	}
	for _, inv := range invoices {
		if inv.Expired(now) {
			continue
		}
		entries = append(entries, ProjectInvoice(inv))
	}
	for _, p := range payments {
		entries = append(entries, ProjectPayment(p))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries
}
