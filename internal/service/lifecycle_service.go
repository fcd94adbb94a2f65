package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/rs/zerolog"
)

// walletPasswordBytes is the entropy of the generated wallet password.
const walletPasswordBytes = 24

// LifecycleService implements ports.WalletLifecycle.
type LifecycleService struct {
	node     ports.NodeTransport
	keystore ports.SecureKeyStore
	oracle   ports.HeightOracle
	caller   ports.FunctionCaller
	account  ports.NodeAccount
	log      zerolog.Logger

	// closedMeansUnlocked treats the unlocker's "closed" signal as an
	// already-unlocked wallet during the existence probe. The node does
	// not document this equivalence, hence the switch.
	closedMeansUnlocked bool

	mu            sync.Mutex
	state         domain.WalletState
	walletExists  bool
	info          domain.NodeInfo
	startHeight   *int32
	bestHeight    *int32
	percentSynced float64
}

// NewLifecycleService creates a new LifecycleService.
func NewLifecycleService(
	node ports.NodeTransport,
	keystore ports.SecureKeyStore,
	oracle ports.HeightOracle,
	caller ports.FunctionCaller,
	account ports.NodeAccount,
	closedMeansUnlocked bool,
	log zerolog.Logger,
) *LifecycleService {
	return &LifecycleService{
		node:                node,
		keystore:            keystore,
		oracle:              oracle,
		caller:              caller,
		account:             account,
		closedMeansUnlocked: closedMeansUnlocked,
		log:                 log,
		state:               domain.WalletStateNoWallet,
	}
}

// ProbeWalletExists issues an idempotent GenSeed against the unlocker and
// interprets the refusal signals. The "closed" signal is assumed to mean
// the wallet is already unlocked when the policy allows it.
func (s *LifecycleService) ProbeWalletExists(ctx context.Context) (bool, error) {
	_, err := s.node.GenSeed(ctx)
	if err == nil {
		s.setWalletExists(false)
		return false, nil
	}

	switch apperror.Code(err) {
	case apperror.CodeWalletExists:
		s.setWalletExists(true)
		return true, nil
	case apperror.CodeUnlockerClosed:
		s.setWalletExists(true)
		if s.closedMeansUnlocked {
			if cerr := s.completeUnlock(ctx); cerr != nil {
				s.log.Error().Err(cerr).Msg("unlock completion after closed probe failed")
			}
		}
		return true, nil
	default:
		s.log.Error().Err(err).Msg("wallet existence probe failed")
		return false, fmt.Errorf("probing wallet existence: %w", err)
	}
}

// CreateWallet generates a fresh seed and persists it before returning.
// The wallet is not created on the node until InitializeWallet.
func (s *LifecycleService) CreateWallet(ctx context.Context) ([]string, error) {
	if s.WalletExists() {
		return nil, apperror.ErrWalletAlreadyExists()
	}

	reply, err := s.node.GenSeed(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("generating seed failed")
		return nil, fmt.Errorf("generating seed: %w", err)
	}

	if err := s.keystore.SetItem(ctx, ports.SecretKeySeed, strings.Join(reply.CipherSeedMnemonic, " ")); err != nil {
		return nil, apperror.ErrKeyStore(fmt.Errorf("persisting seed: %w", err))
	}

	s.advance(domain.WalletStateSeedGenerated)
	return reply.CipherSeedMnemonic, nil
}

// InitializeWallet creates the node wallet from the stored seed under a
// fresh random password, persists the password, then completes the unlock.
func (s *LifecycleService) InitializeWallet(ctx context.Context) error {
	if s.WalletExists() {
		return apperror.ErrWalletAlreadyExists()
	}

	password, err := newWalletPassword()
	if err != nil {
		return apperror.InternalError(fmt.Errorf("generating wallet password: %w", err))
	}

	seed, err := s.keystore.GetItem(ctx, ports.SecretKeySeed)
	if err != nil {
		return apperror.ErrKeyStore(fmt.Errorf("reading seed: %w", err))
	}
	if seed == "" {
		return apperror.ErrNoSeed()
	}

	err = s.node.InitWallet(ctx, ports.InitWalletRequest{
		WalletPassword:     password,
		CipherSeedMnemonic: strings.Fields(seed),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("initializing wallet failed")
		return fmt.Errorf("initializing wallet: %w", err)
	}

	if err := s.keystore.SetItem(ctx, ports.SecretKeyPassword, password); err != nil {
		return apperror.ErrKeyStore(fmt.Errorf("persisting password: %w", err))
	}

	s.setWalletExists(true)
	s.advance(domain.WalletStateInitialized)

	return s.completeUnlock(ctx)
}

// Unlock submits the stored password to the node. On failure the state is
// left unchanged; the caller may retry.
func (s *LifecycleService) Unlock(ctx context.Context) error {
	password, err := s.keystore.GetItem(ctx, ports.SecretKeyPassword)
	if err != nil {
		return apperror.ErrKeyStore(fmt.Errorf("reading password: %w", err))
	}

	if err := s.node.UnlockWallet(ctx, ports.UnlockWalletRequest{WalletPassword: password}); err != nil {
		s.log.Error().Err(err).Msg("unlocking wallet failed")
		return fmt.Errorf("unlocking wallet: %w", err)
	}

	return s.completeUnlock(ctx)
}

// completeUnlock runs after the wallet opens: mark unlocked, take a
// getInfo pass, then refresh balances and the transaction sets once.
// Failures here never roll the lifecycle state back.
func (s *LifecycleService) completeUnlock(ctx context.Context) error {
	s.advance(domain.WalletStateUnlocked)

	if _, err := s.SyncToChain(ctx); err != nil {
		s.log.Error().Err(err).Msg("node info fetch after unlock failed")
		return nil
	}

	if err := s.account.RefreshAll(ctx); err != nil {
		s.log.Error().Err(err).Msg("refresh after unlock failed")
	}
	return nil
}

// SyncToChain runs one getInfo pass. The first pass pins the start height
// and asks the oracle for the best known height; the oracle is best-effort.
func (s *LifecycleService) SyncToChain(ctx context.Context) (bool, error) {
	reply, err := s.node.GetInfo(ctx)
	if err != nil {
		return false, fmt.Errorf("getting node info: %w", err)
	}

	info := domain.NodeInfo{
		Version:       firstField(reply.Version),
		Pubkey:        reply.IdentityPubkey,
		BlockHeight:   reply.BlockHeight,
		SyncedToChain: reply.SyncedToChain,
	}
	if len(reply.Chains) > 0 {
		info.Network = reply.Chains[0].Network
	}

	s.mu.Lock()
	s.info = info
	if s.startHeight == nil {
		start := reply.BlockHeight
		s.startHeight = &start
		s.mu.Unlock()

		if best, oerr := s.oracle.BestHeight(ctx); oerr != nil {
			s.log.Warn().Err(oerr).Msg("best height oracle unavailable")
		} else {
			s.mu.Lock()
			s.bestHeight = &best
			s.mu.Unlock()
		}
		s.mu.Lock()
	}
	s.percentSynced = domain.SyncProgress(s.startHeight, s.bestHeight, reply.BlockHeight)
	s.mu.Unlock()

	if reply.SyncedToChain {
		s.advance(domain.WalletStateSynced)
		s.log.Info().Int32("height", reply.BlockHeight).Msg("chain sync complete")
	} else {
		s.advance(domain.WalletStateSyncingChain)
	}

	return reply.SyncedToChain, nil
}

// SendPubKey announces the node identity to the backend.
func (s *LifecycleService) SendPubKey(ctx context.Context) error {
	s.mu.Lock()
	pubkey, network := s.info.Pubkey, s.info.Network
	s.mu.Unlock()

	if err := s.caller.SendPubKey(ctx, pubkey, network); err != nil {
		s.log.Error().Err(err).Msg("sending pubkey to backend failed")
		return fmt.Errorf("sending pubkey: %w", err)
	}
	return nil
}

// Reset returns to the no-wallet state. The only rollback transition.
func (s *LifecycleService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.WalletStateNoWallet
	s.walletExists = false
	s.info = domain.NodeInfo{}
	s.startHeight = nil
	s.bestHeight = nil
	s.percentSynced = 0
}

// Status returns a read snapshot of the lifecycle.
func (s *LifecycleService) Status() ports.LifecycleStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.LifecycleStatus{
		State:         s.state,
		WalletExists:  s.walletExists,
		Info:          s.info,
		StartHeight:   s.startHeight,
		BestHeight:    s.bestHeight,
		PercentSynced: s.percentSynced,
	}
}

// WalletExists reports whether a node wallet is known to exist.
func (s *LifecycleService) WalletExists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.walletExists
}

// advance moves the lifecycle forward. Backward moves are ignored.
func (s *LifecycleService) advance(next domain.WalletState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.CanTransition(next) {
		return
	}
	s.log.Debug().Str("from", string(s.state)).Str("to", string(next)).Msg("wallet state transition")
	s.state = next
}

func (s *LifecycleService) setWalletExists(exists bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walletExists = exists
}

func newWalletPassword() (string, error) {
	buf := make([]byte, walletPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// firstField returns the first whitespace-separated token ("0.17.0-beta
// commit=v0.17.0" -> "0.17.0-beta").
func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}
