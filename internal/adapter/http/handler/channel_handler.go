package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightning-wallet-daemon/internal/adapter/http/dto"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/response"
)

// ChannelHandler exposes peering and channel operations.
type ChannelHandler struct {
	channels ports.ChannelManager
	log      zerolog.Logger
}

func NewChannelHandler(channels ports.ChannelManager, log zerolog.Logger) *ChannelHandler {
	return &ChannelHandler{channels: channels, log: log}
}

// Connect handles POST /channels/connect.
func (h *ChannelHandler) Connect(c *gin.Context) {
	if err := h.channels.ConnectPeer(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"connected": true})
}

// Open handles POST /channels/open.
func (h *ChannelHandler) Open(c *gin.Context) {
	if err := h.channels.OpenChannel(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"requested": true})
}

// Status handles GET /channels/status.
func (h *ChannelHandler) Status(c *gin.Context) {
	status, err := h.channels.FirstChannelStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ChannelStatusResponse{Status: status})
}

// Peers handles GET /peers.
func (h *ChannelHandler) Peers(c *gin.Context) {
	peers, err := h.channels.ListPeers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"peers": peers})
}
