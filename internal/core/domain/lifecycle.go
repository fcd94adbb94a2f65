package domain

import "math"

// WalletState is the node wallet lifecycle. Transitions only move forward;
// the only way back is a full reset to WalletStateNoWallet.
type WalletState string

const (
	WalletStateNoWallet      WalletState = "no_wallet"
	WalletStateSeedGenerated WalletState = "seed_generated"
	WalletStateInitialized   WalletState = "initialized"
	WalletStateUnlocked      WalletState = "unlocked"
	WalletStateSyncingChain  WalletState = "syncing_chain"
	WalletStateSynced        WalletState = "synced"
)

var walletStateRank = map[WalletState]int{
	WalletStateNoWallet:      0,
	WalletStateSeedGenerated: 1,
	WalletStateInitialized:   2,
	WalletStateUnlocked:      3,
	WalletStateSyncingChain:  4,
	WalletStateSynced:        5,
}

// CanTransition reports whether moving to next is a forward progression.
// Skipping states is allowed (an already-unlocked wallet jumps straight
// past seed generation).
func (s WalletState) CanTransition(next WalletState) bool {
	return walletStateRank[next] > walletStateRank[s]
}

// NodeInfo is the node's self-reported status from the getInfo command.
type NodeInfo struct {
	Version       string `json:"version"`
	Pubkey        string `json:"pubkey"`
	Network       string `json:"network"`
	BlockHeight   int32  `json:"block_height"`
	SyncedToChain bool   `json:"synced_to_chain"`
}

// SyncProgress approximates chain-sync completion as a value in [0, 1],
// rounded to three decimals. Unknown heights yield 0; a best height at or
// below the start height yields 1.
func SyncProgress(startHeight, bestHeight *int32, currentHeight int32) float64 {
	if startHeight == nil || bestHeight == nil {
		return 0
	}
	if *bestHeight <= *startHeight {
		return 1
	}

	p := float64(currentHeight-*startHeight) / float64(*bestHeight-*startHeight)
	p = math.Round(p*1000) / 1000

	if math.IsNaN(p) {
		return 0
	}
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
