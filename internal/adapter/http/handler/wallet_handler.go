package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightning-wallet-daemon/internal/adapter/http/dto"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/response"
)

// WalletHandler exposes the wallet lifecycle operations.
type WalletHandler struct {
	lifecycle ports.WalletLifecycle
	log       zerolog.Logger
}

func NewWalletHandler(lifecycle ports.WalletLifecycle, log zerolog.Logger) *WalletHandler {
	return &WalletHandler{lifecycle: lifecycle, log: log}
}

// Probe handles POST /wallet/probe.
func (h *WalletHandler) Probe(c *gin.Context) {
	exists, err := h.lifecycle.ProbeWalletExists(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"wallet_exists": exists})
}

// Create handles POST /wallet.
func (h *WalletHandler) Create(c *gin.Context) {
	mnemonic, err := h.lifecycle.CreateWallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.CreateWalletResponse{Mnemonic: mnemonic})
}

// Init handles POST /wallet/init.
func (h *WalletHandler) Init(c *gin.Context) {
	if err := h.lifecycle.InitializeWallet(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.lifecycle.Status())
}

// Unlock handles POST /wallet/unlock.
func (h *WalletHandler) Unlock(c *gin.Context) {
	if err := h.lifecycle.Unlock(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.lifecycle.Status())
}

// Sync handles POST /wallet/sync.
func (h *WalletHandler) Sync(c *gin.Context) {
	synced, err := h.lifecycle.SyncToChain(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SyncResponse{
		Synced:        synced,
		PercentSynced: h.lifecycle.Status().PercentSynced,
	})
}

// Reset handles DELETE /wallet.
func (h *WalletHandler) Reset(c *gin.Context) {
	h.lifecycle.Reset()
	response.OK(c, h.lifecycle.Status())
}
