package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightning-wallet-daemon/internal/adapter/http/dto"
	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"
	"lightning-wallet-daemon/pkg/response"
)

// TradeHandler exposes the quote lifecycle.
type TradeHandler struct {
	exchange ports.Exchange
	log      zerolog.Logger
}

func NewTradeHandler(exchange ports.Exchange, log zerolog.Logger) *TradeHandler {
	return &TradeHandler{exchange: exchange, log: log}
}

// RequestQuote handles POST /quotes.
func (h *TradeHandler) RequestQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	quote, err := h.exchange.RequestQuote(c.Request.Context(), req.Side, req.SatAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, quote)
}

// Execute handles POST /quotes/execute. The held quote must match the
// requested side.
func (h *TradeHandler) Execute(c *gin.Context) {
	var req dto.ExecuteQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var (
		ok  bool
		err error
	)
	switch req.Side {
	case domain.SideBuy:
		ok, err = h.exchange.ExecuteBuy(c.Request.Context())
	case domain.SideSell:
		ok, err = h.exchange.ExecuteSell(c.Request.Context())
	default:
		response.Error(c, apperror.Validation("side must be buy or sell"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExecuteQuoteResponse{Success: ok})
}

// Quote handles GET /quotes.
func (h *TradeHandler) Quote(c *gin.Context) {
	response.OK(c, h.exchange.Quote())
}

// ResetQuote handles DELETE /quotes.
func (h *TradeHandler) ResetQuote(c *gin.Context) {
	h.exchange.Reset()
	response.OK(c, gin.H{"reset": true})
}
