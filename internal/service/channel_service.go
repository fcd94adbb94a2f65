package service

import (
	"context"
	"fmt"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/rs/zerolog"
)

// infoDocumentPath is the backend document with the service node's peer
// coordinates.
const infoDocumentPath = "global/info"

// ChannelService implements ports.ChannelManager against the service node.
type ChannelService struct {
	node      ports.NodeTransport
	docs      ports.DocumentStore
	caller    ports.FunctionCaller
	lifecycle ports.WalletLifecycle
	log       zerolog.Logger
}

// NewChannelService creates a new ChannelService.
func NewChannelService(
	node ports.NodeTransport,
	docs ports.DocumentStore,
	caller ports.FunctionCaller,
	lifecycle ports.WalletLifecycle,
	log zerolog.Logger,
) *ChannelService {
	return &ChannelService{
		node:      node,
		docs:      docs,
		caller:    caller,
		lifecycle: lifecycle,
		log:       log,
	}
}

// ConnectPeer dials the service node at the coordinates published in the
// backend info document. Requires a synced chain.
func (s *ChannelService) ConnectPeer(ctx context.Context) error {
	if s.lifecycle.Status().State != domain.WalletStateSynced {
		return apperror.ErrNotSynced()
	}

	var doc ports.InfoDocument
	if err := s.docs.GetDocument(ctx, infoDocumentPath, &doc); err != nil {
		s.log.Error().Err(err).Msg("info document fetch failed")
		return fmt.Errorf("reading peer info: %w", err)
	}

	if err := s.node.ConnectPeer(ctx, doc.Lightning.Pubkey, doc.Lightning.Host); err != nil {
		// Usually "already connected"; the peering goal is met either way.
		s.log.Warn().Err(err).Str("pubkey", doc.Lightning.Pubkey).Msg("peer connect reported an error")
	}
	return nil
}

// ListPeers returns the node's current peers.
func (s *ChannelService) ListPeers(ctx context.Context) ([]ports.Peer, error) {
	peers, err := s.node.ListPeers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("peer list fetch failed")
		return nil, fmt.Errorf("listing peers: %w", err)
	}
	return peers, nil
}

// PendingChannels returns channels still confirming.
func (s *ChannelService) PendingChannels(ctx context.Context) (*ports.PendingChannelsReply, error) {
	reply, err := s.node.PendingChannels(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("pending channels fetch failed")
		return nil, fmt.Errorf("listing pending channels: %w", err)
	}
	return reply, nil
}

// ListChannels returns open channels.
func (s *ChannelService) ListChannels(ctx context.Context) (*ports.ListChannelsReply, error) {
	reply, err := s.node.ListChannels(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("channel list fetch failed")
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	return reply, nil
}

// FirstChannelStatus summarizes channel readiness: open beats pending
// beats none.
func (s *ChannelService) FirstChannelStatus(ctx context.Context) (domain.ChannelStatus, error) {
	open, err := s.ListChannels(ctx)
	if err != nil {
		return domain.ChannelStatusNone, err
	}
	if len(open.Channels) > 0 {
		return domain.ChannelStatusOpened, nil
	}

	pending, err := s.PendingChannels(ctx)
	if err != nil {
		return domain.ChannelStatusNone, err
	}
	if len(pending.PendingOpenChannels) > 0 {
		return domain.ChannelStatusPending, nil
	}
	return domain.ChannelStatusNone, nil
}

// OpenChannel asks the backend to open an inbound channel to us.
func (s *ChannelService) OpenChannel(ctx context.Context) error {
	if err := s.caller.OpenChannel(ctx); err != nil {
		s.log.Error().Err(err).Msg("channel open request failed")
		return fmt.Errorf("requesting channel open: %w", err)
	}
	return nil
}
