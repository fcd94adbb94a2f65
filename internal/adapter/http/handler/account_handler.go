package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightning-wallet-daemon/internal/adapter/http/dto"
	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"
	"lightning-wallet-daemon/pkg/response"
)

// AccountHandler exposes balances, history and the node account operations.
type AccountHandler struct {
	account   ports.NodeAccount
	fiat      ports.FiatAccount
	aggregate ports.AggregateStore
	log       zerolog.Logger
}

func NewAccountHandler(
	account ports.NodeAccount,
	fiat ports.FiatAccount,
	aggregate ports.AggregateStore,
	log zerolog.Logger,
) *AccountHandler {
	return &AccountHandler{account: account, fiat: fiat, aggregate: aggregate, log: log}
}

// Balances handles GET /balances. It refreshes rates and both accounts,
// then returns the snapshot with display conversions.
func (h *AccountHandler) Balances(c *gin.Context) {
	if err := h.aggregate.UpdateBalances(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalancesResponse{
		Bitcoin:  h.account.Balance(),
		Fiat:     h.fiat.Balance(),
		TotalUSD: h.aggregate.BalanceInCurrency(domain.AccountTypeAll, domain.CurrencyUSD),
		TotalBTC: h.aggregate.BalanceInCurrency(domain.AccountTypeAll, domain.CurrencyBTC),
	})
}

// Transactions handles GET /transactions.
func (h *AccountHandler) Transactions(c *gin.Context) {
	if err := h.aggregate.UpdateTransactions(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TransactionsResponse{
		Bitcoin: h.account.History(time.Now().Unix()),
		Fiat:    h.fiat.Transactions(),
	})
}

// NewAddress handles POST /addresses.
func (h *AccountHandler) NewAddress(c *gin.Context) {
	addr, err := h.account.NewAddress(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewAddressResponse{Address: addr})
}

// AddInvoice handles POST /invoices.
func (h *AccountHandler) AddInvoice(c *gin.Context) {
	var req dto.AddInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	reply, err := h.account.AddInvoice(c.Request.Context(), ports.AddInvoiceRequest{
		Value:  req.Value,
		Memo:   req.Memo,
		Expiry: req.Expiry,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.AddInvoiceResponse{
		PaymentRequest: reply.PaymentRequest,
		RHash:          reply.RHash,
	})
}

// SettledInvoice handles POST /invoices/settled, the node's settlement
// callback.
func (h *AccountHandler) SettledInvoice(c *gin.Context) {
	var req dto.SettledInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := h.account.NotifyIncomingPayment(c.Request.Context(), &req.Invoice); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AlertResponse{Alert: h.account.ReceiveScreenAlert()})
}

// Alert handles GET /invoices/alert.
func (h *AccountHandler) Alert(c *gin.Context) {
	response.OK(c, dto.AlertResponse{Alert: h.account.ReceiveScreenAlert()})
}

// ClearAlert handles DELETE /invoices/alert.
func (h *AccountHandler) ClearAlert(c *gin.Context) {
	h.account.ClearReceiveScreenAlert()
	response.OK(c, dto.AlertResponse{Alert: false})
}

// Decode handles POST /payments/decode.
func (h *AccountHandler) Decode(c *gin.Context) {
	var req dto.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	decoded, err := h.account.DecodePayReq(c.Request.Context(), req.PaymentRequest)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, decoded)
}

// Pay handles POST /payments.
func (h *AccountHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	ok, err := h.account.PayInvoice(c.Request.Context(), req.PaymentRequest)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PayResponse{Success: ok})
}

// SendCoins handles POST /transactions/send.
func (h *AccountHandler) SendCoins(c *gin.Context) {
	var req dto.SendCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	txid, err := h.account.SendCoins(c.Request.Context(), req.Address, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SendCoinsResponse{Txid: txid})
}
