package node

import (
	"bytes"
	"fmt"
	"strconv"

	"lightning-wallet-daemon/internal/core/domain"
)

// The bridge serializes 64-bit satoshi amounts and unix timestamps as JSON
// strings. flexInt64 and flexInt32 accept either form.
type flexInt64 int64

func (v *flexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing %q as int64: %w", data, err)
	}
	*v = flexInt64(n)
	return nil
}

type flexInt32 int32

func (v *flexInt32) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("parsing %q as int32: %w", data, err)
	}
	*v = flexInt32(n)
	return nil
}

type wireTransaction struct {
	TxHash           string     `json:"tx_hash"`
	Amount           flexInt64  `json:"amount"`
	NumConfirmations *flexInt32 `json:"num_confirmations"`
	BlockHash        *string    `json:"block_hash"`
	BlockHeight      *flexInt32 `json:"block_height"`
	TimeStamp        flexInt64  `json:"time_stamp"`
	DestAddresses    []string   `json:"dest_addresses"`
	TotalFees        *string    `json:"total_fees"`
	RawTxHex         string     `json:"raw_tx_hex"`
}

func (tx wireTransaction) toDomain() domain.OnChainTransaction {
	out := domain.OnChainTransaction{
		TxHash:        tx.TxHash,
		Amount:        int64(tx.Amount),
		BlockHash:     tx.BlockHash,
		Timestamp:     int64(tx.TimeStamp),
		DestAddresses: tx.DestAddresses,
		TotalFees:     tx.TotalFees,
		RawTxHex:      tx.RawTxHex,
	}
	if tx.NumConfirmations != nil {
		n := int32(*tx.NumConfirmations)
		out.NumConfirmations = &n
	}
	if tx.BlockHeight != nil {
		h := int32(*tx.BlockHeight)
		out.BlockHeight = &h
	}
	return out
}

type wireInvoice struct {
	Memo           string    `json:"memo"`
	RPreimage      string    `json:"r_preimage"`
	RHash          string    `json:"r_hash"`
	Value          flexInt64 `json:"value"`
	Settled        bool      `json:"settled"`
	State          flexInt32 `json:"state"`
	CreationDate   flexInt64 `json:"creation_date"`
	Expiry         flexInt64 `json:"expiry"`
	SettleDate     flexInt64 `json:"settle_date"`
	PaymentRequest string    `json:"payment_request"`
	Private        bool      `json:"private"`
	AmtPaidSat     flexInt64 `json:"amt_paid_sat"`
}

func (inv wireInvoice) toDomain() domain.Invoice {
	return domain.Invoice{
		Memo:           inv.Memo,
		Preimage:       inv.RPreimage,
		Hash:           inv.RHash,
		Value:          int64(inv.Value),
		Settled:        inv.Settled,
		State:          int32(inv.State),
		CreationDate:   int64(inv.CreationDate),
		Expiry:         int64(inv.Expiry),
		SettleDate:     int64(inv.SettleDate),
		PaymentRequest: inv.PaymentRequest,
		Private:        inv.Private,
		AmountPaid:     int64(inv.AmtPaidSat),
	}
}

type wirePayment struct {
	PaymentHash     string     `json:"payment_hash"`
	Value           flexInt64  `json:"value"`
	Fee             *flexInt64 `json:"fee"`
	CreationDate    flexInt64  `json:"creation_date"`
	Path            []string   `json:"path"`
	Status          flexInt32  `json:"status"`
	PaymentRequest  string     `json:"payment_request"`
	PaymentPreimage string     `json:"payment_preimage"`
}

func (p wirePayment) toDomain() domain.Payment {
	out := domain.Payment{
		Hash:           p.PaymentHash,
		Value:          int64(p.Value),
		CreationDate:   int64(p.CreationDate),
		Path:           p.Path,
		Status:         int32(p.Status),
		PaymentRequest: p.PaymentRequest,
		Preimage:       p.PaymentPreimage,
	}
	if p.Fee != nil {
		fee := int64(*p.Fee)
		out.Fee = &fee
	}
	return out
}
