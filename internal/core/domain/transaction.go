package domain

// OnChainTransaction is a wallet-relevant bitcoin transaction as reported by
// the node. Immutable once confirmed; confirmations only grow.
type OnChainTransaction struct {
	TxHash           string   `json:"tx_hash"`
	Amount           int64    `json:"amount"` // satoshis, negative = sent
	NumConfirmations *int32   `json:"num_confirmations,omitempty"`
	BlockHash        *string  `json:"block_hash,omitempty"`
	BlockHeight      *int32   `json:"block_height,omitempty"`
	Timestamp        int64    `json:"timestamp"`
	DestAddresses    []string `json:"dest_addresses"`
	TotalFees        *string  `json:"total_fees,omitempty"` // only set when sending
	RawTxHex         string   `json:"raw_tx_hex"`
}

// confirmedThreshold is the confirmation count at which an on-chain
// transaction is displayed as final.
const confirmedThreshold = 3

// Confirmed reports whether the transaction has enough confirmations.
func (t OnChainTransaction) Confirmed() bool {
	return t.NumConfirmations == nil || *t.NumConfirmations >= confirmedThreshold
}

// Invoice is a Lightning invoice issued by this wallet. Settlement is
// terminal; expiry is derived from creation date and never deletes the
// record.
type Invoice struct {
	Memo           string `json:"memo"`
	Preimage       string `json:"preimage"`
	Hash           string `json:"hash"`
	Value          int64  `json:"value"`
	Settled        bool   `json:"settled"`
	State          int32  `json:"state"`
	CreationDate   int64  `json:"creation_date"`
	Expiry         int64  `json:"expiry"` // seconds after creation
	SettleDate     int64  `json:"settle_date"`
	PaymentRequest string `json:"payment_request"`
	Private        bool   `json:"private"`
	AmountPaid     int64  `json:"amount_paid"`
}

// Expired reports whether an unsettled invoice has passed its expiry.
// Settled invoices never expire.
func (i Invoice) Expired(now int64) bool {
	if i.Settled {
		return false
	}
	return now > i.CreationDate+i.Expiry
}

// Payment is an outgoing Lightning payment. Immutable once its status is
// terminal.
type Payment struct {
	Hash           string   `json:"hash"`
	Value          int64    `json:"value"`
	Fee            *int64   `json:"fee,omitempty"`
	CreationDate   int64    `json:"creation_date"`
	Path           []string `json:"path"`
	Status         int32    `json:"status"`
	PaymentRequest string   `json:"payment_request"`
	Preimage       string   `json:"preimage"`
}

// FiatTransaction is a ledger entry from the fiat backend account.
type FiatTransaction struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Amount   int64  `json:"amount"`
	Date     int64  `json:"date"`
	Cashback *int64 `json:"cashback,omitempty"`
}

// DecodedPaymentRequest is the relevant subset of a decoded BOLT11 payment
// request.
type DecodedPaymentRequest struct {
	Destination string `json:"destination"`
	PaymentHash string `json:"payment_hash"`
	NumSatoshis int64  `json:"num_satoshis"`
	Timestamp   int64  `json:"timestamp"`
	Expiry      int64  `json:"expiry"`
	Description string `json:"description"`
}
