package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/internal/service"
)

type daemon struct {
	node     *fakeNode
	backend  *fakeBackend
	keys     *memKeyStore
	notifier *recordingNotifier

	lifecycle  *service.LifecycleService
	account    *service.NodeAccountService
	rates      *service.RateService
	fiat       *service.FiatService
	aggregate  *service.AggregateService
	exchange   *service.ExchangeService
	channels   *service.ChannelService
	onboarding *service.OnboardingService
}

func newDaemon(t *testing.T) *daemon {
	t.Helper()
	log := zerolog.Nop()

	node := newFakeNode()
	backend := newFakeBackend(node)
	keys := newMemKeyStore()
	notifier := &recordingNotifier{}
	session := &fakeSession{uid: "user-1"}
	oracle := &fixedOracle{height: 200}
	nav := &staticScreen{screen: "home"}

	backend.setDocument("global/price", ports.PriceDocument{BTC: 0.0001})
	backend.setDocument("global/info", ports.InfoDocument{
		Lightning: ports.LightningPeerInfo{Pubkey: "03servicenode", Host: "10.0.0.5:9735"},
	})

	d := &daemon{node: node, backend: backend, keys: keys, notifier: notifier}
	d.account = service.NewNodeAccountService(node, notifier, nav, time.Second, log)
	d.lifecycle = service.NewLifecycleService(node, keys, oracle, backend, d.account, true, log)
	d.rates = service.NewRateService(backend, nil, 0, log)
	d.fiat = service.NewFiatService(backend, backend, session, log)
	d.aggregate = service.NewAggregateService(d.rates, d.fiat, d.account, log)
	d.exchange = service.NewExchangeService(backend, d.account, log)
	d.channels = service.NewChannelService(node, backend, backend, d.lifecycle, log)
	d.onboarding = service.NewOnboardingService(backend, session, log)
	return d
}

// bringUp walks a fresh daemon through create, init and sync.
func (d *daemon) bringUp(t *testing.T, ctx context.Context) {
	t.Helper()

	exists, err := d.lifecycle.ProbeWalletExists(ctx)
	require.NoError(t, err)
	require.False(t, exists)

	mnemonic, err := d.lifecycle.CreateWallet(ctx)
	require.NoError(t, err)
	require.Len(t, mnemonic, 12)

	require.NoError(t, d.lifecycle.InitializeWallet(ctx))

	d.node.mu.Lock()
	d.node.syncedHeight = d.node.bestHeight
	d.node.mu.Unlock()

	synced, err := d.lifecycle.SyncToChain(ctx)
	require.NoError(t, err)
	require.True(t, synced)
}

func TestLifecycle_FreshWalletToSynced(t *testing.T) {
	ctx := context.Background()
	d := newDaemon(t)

	d.node.balances = ports.WalletBalanceReply{ConfirmedBalance: 1500, UnconfirmedBalance: 100}
	d.node.channelFunds = ports.ChannelBalanceReply{Balance: 250, PendingOpenBalance: 50}

	d.bringUp(t, ctx)

	status := d.lifecycle.Status()
	assert.Equal(t, domain.WalletStateSynced, status.State)
	assert.True(t, status.WalletExists)
	assert.Equal(t, "testnet", status.Info.Network)
	assert.InDelta(t, 1.0, status.PercentSynced, 1e-9)

	// InitializeWallet completed the unlock: exactly one full refresh ran.
	d.node.mu.Lock()
	defer d.node.mu.Unlock()
	assert.Equal(t, 1, d.node.unaryCalls["WalletBalance"])
	assert.Equal(t, 1, d.node.unaryCalls["listInvoices"])
	assert.Equal(t, 1, d.node.unaryCalls["listPayments"])

	assert.Equal(t, domain.Balance{Confirmed: 1750, Unconfirmed: 150}, d.account.Balance())
}

func TestLifecycle_SeedSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	d := newDaemon(t)
	d.bringUp(t, ctx)

	seed, err := d.keys.GetItem(ctx, ports.SecretKeySeed)
	require.NoError(t, err)
	assert.NotEmpty(t, seed)

	password, err := d.keys.GetItem(ctx, ports.SecretKeyPassword)
	require.NoError(t, err)
	assert.Len(t, password, 48)
	assert.Equal(t, d.node.password, password)

	// A second daemon against the same node and key store probes, finds
	// the wallet, and unlocks with the stored password.
	d.node.mu.Lock()
	d.node.unlocked = false
	d.node.mu.Unlock()

	log := zerolog.Nop()
	account2 := service.NewNodeAccountService(d.node, d.notifier, &staticScreen{}, time.Second, log)
	lifecycle2 := service.NewLifecycleService(d.node, d.keys, &fixedOracle{height: 200}, d.backend, account2, true, log)

	exists, err := lifecycle2.ProbeWalletExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, lifecycle2.Unlock(ctx))
	assert.Equal(t, domain.WalletStateSynced, lifecycle2.Status().State)
}

func TestLifecycle_ProbeAfterUnlockTreatsClosedAsUnlocked(t *testing.T) {
	ctx := context.Background()
	d := newDaemon(t)
	d.bringUp(t, ctx)

	// The unlocker is closed now; a re-probe must not disturb the state.
	exists, err := d.lifecycle.ProbeWalletExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, domain.WalletStateSynced, d.lifecycle.Status().State)
}

func TestLifecycle_SendPubKeyAnnouncesIdentity(t *testing.T) {
	ctx := context.Background()
	d := newDaemon(t)
	d.bringUp(t, ctx)

	require.NoError(t, d.lifecycle.SendPubKey(ctx))

	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()
	assert.Equal(t, "02fakepubkey", d.backend.pubkeys["testnet"])
}

func TestChannels_ConnectAndOpenFirstChannel(t *testing.T) {
	ctx := context.Background()
	d := newDaemon(t)

	// Peering before sync is refused.
	err := d.channels.ConnectPeer(ctx)
	require.Error(t, err)

	d.bringUp(t, ctx)

	require.NoError(t, d.channels.ConnectPeer(ctx))
	peers, err := d.channels.ListPeers(ctx)
	require.NoError(t, err)
	require.Len(t, peers, 1)
	assert.Equal(t, "03servicenode", peers[0].Pubkey)

	status, err := d.channels.FirstChannelStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelStatusNone, status)

	require.NoError(t, d.channels.OpenChannel(ctx))
	status, err = d.channels.FirstChannelStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelStatusPending, status)
}

func TestOnboarding_StagePersistsAcrossDaemons(t *testing.T) {
	ctx := context.Background()
	d := newDaemon(t)

	assert.Equal(t, domain.StageStart, d.onboarding.Stage())
	require.NoError(t, d.onboarding.SetStage(ctx, domain.StageWalletCreated))

	onboarding2 := service.NewOnboardingService(d.backend, &fakeSession{uid: "user-1"}, zerolog.Nop())
	onboarding2.Load(ctx)
	assert.Equal(t, domain.StageWalletCreated, onboarding2.Stage())
}
