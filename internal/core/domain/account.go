package domain

// AccountType identifies which wallet account a value refers to.
type AccountType string

const (
	AccountTypeBitcoin AccountType = "bitcoin"
	AccountTypeFiat    AccountType = "fiat"
	AccountTypeAll     AccountType = "all"
)

// CurrencyType is a display or native currency.
type CurrencyType string

const (
	CurrencyUSD CurrencyType = "USD"
	CurrencyBTC CurrencyType = "BTC"
)

// Balance is an account balance split into confirmed and unconfirmed
// minor units (satoshis for the node account, cents for fiat).
type Balance struct {
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
}

// Total is the spendable-plus-pending balance.
func (b Balance) Total() int64 {
	return b.Confirmed + b.Unconfirmed
}

// ChannelStatus describes progress of the first payment channel.
type ChannelStatus string

const (
	ChannelStatusNone    ChannelStatus = "noChannel"
	ChannelStatusPending ChannelStatus = "pending"
	ChannelStatusOpened  ChannelStatus = "opened"
)

// OnboardingStage is the persisted onboarding progress marker. The daemon
// treats it as mostly opaque; the backend document is the source of truth.
type OnboardingStage string

const (
	StageStart         OnboardingStage = "start"
	StageWalletCreated OnboardingStage = "walletCreated"
	StageChannelOpened OnboardingStage = "channelOpened"
	StageComplete      OnboardingStage = "complete"
)
