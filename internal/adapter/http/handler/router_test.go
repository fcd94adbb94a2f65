package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/internal/core/ports/mocks"
	"lightning-wallet-daemon/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerTestDeps struct {
	ctrl       *gomock.Controller
	lifecycle  *mocks.MockWalletLifecycle
	account    *mocks.MockNodeAccount
	fiat       *mocks.MockFiatAccount
	aggregate  *mocks.MockAggregateStore
	exchange   *mocks.MockExchange
	channels   *mocks.MockChannelManager
	onboarding *mocks.MockOnboarding
	screens    *ScreenTracker
	router     *gin.Engine
}

func setupRouter(t *testing.T) *routerTestDeps {
	ctrl := gomock.NewController(t)
	d := &routerTestDeps{
		ctrl:       ctrl,
		lifecycle:  mocks.NewMockWalletLifecycle(ctrl),
		account:    mocks.NewMockNodeAccount(ctrl),
		fiat:       mocks.NewMockFiatAccount(ctrl),
		aggregate:  mocks.NewMockAggregateStore(ctrl),
		exchange:   mocks.NewMockExchange(ctrl),
		channels:   mocks.NewMockChannelManager(ctrl),
		onboarding: mocks.NewMockOnboarding(ctrl),
		screens:    NewScreenTracker(),
	}
	d.router = SetupRouter(RouterDeps{
		Lifecycle:  d.lifecycle,
		Account:    d.account,
		Fiat:       d.fiat,
		Aggregate:  d.aggregate,
		Exchange:   d.exchange,
		Channels:   d.channels,
		Onboarding: d.onboarding,
		Screens:    d.screens,
		Logger:     zerolog.Nop(),
	})
	return d
}

func (d *routerTestDeps) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

// ==================== Wallet Tests ====================

func TestRouter_CreateWallet(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	mnemonic := []string{"absorb", "shine", "tackle"}
	d.lifecycle.EXPECT().CreateWallet(gomock.Any()).Return(mnemonic, nil)

	w := d.do(t, http.MethodPost, "/api/v1/wallet", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Len(t, data["mnemonic"], 3)
}

func TestRouter_CreateWallet_AlreadyExists(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.lifecycle.EXPECT().CreateWallet(gomock.Any()).Return(nil, apperror.ErrWalletAlreadyExists())

	w := d.do(t, http.MethodPost, "/api/v1/wallet", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "WALLET_001")
}

func TestRouter_ProbeWallet(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.lifecycle.EXPECT().ProbeWalletExists(gomock.Any()).Return(true, nil)

	w := d.do(t, http.MethodPost, "/api/v1/wallet/probe", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["wallet_exists"])
}

func TestRouter_SyncWallet(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.lifecycle.EXPECT().SyncToChain(gomock.Any()).Return(false, nil)
	d.lifecycle.EXPECT().Status().Return(ports.LifecycleStatus{
		State:         domain.WalletStateSyncingChain,
		PercentSynced: 0.5,
	})

	w := d.do(t, http.MethodPost, "/api/v1/wallet/sync", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["synced"])
	assert.InDelta(t, 0.5, data["percent_synced"], 1e-9)
}

// ==================== Account Tests ====================

func TestRouter_Balances(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.aggregate.EXPECT().UpdateBalances(gomock.Any()).Return(nil)
	d.account.EXPECT().Balance().Return(domain.Balance{Confirmed: 1500, Unconfirmed: 250})
	d.fiat.EXPECT().Balance().Return(domain.Balance{Confirmed: 12500})
	d.aggregate.EXPECT().BalanceInCurrency(domain.AccountTypeAll, domain.CurrencyUSD).Return(125.2)
	d.aggregate.EXPECT().BalanceInCurrency(domain.AccountTypeAll, domain.CurrencyBTC).Return(0.0175)

	w := d.do(t, http.MethodGet, "/api/v1/balances", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.InDelta(t, 125.2, data["total_usd"], 1e-9)
}

func TestRouter_Balances_NodeFailure(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.aggregate.EXPECT().UpdateBalances(gomock.Any()).
		Return(apperror.ErrBalanceFetch(errors.New("connection refused")))

	w := d.do(t, http.MethodGet, "/api/v1/balances", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "WALLET_002")
}

func TestRouter_AddInvoice_Defaults(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.account.EXPECT().
		AddInvoice(gomock.Any(), ports.AddInvoiceRequest{Value: 2500, Memo: "coffee"}).
		Return(&ports.AddInvoiceReply{PaymentRequest: "lntb25u1...", RHash: "ab12"}, nil)

	w := d.do(t, http.MethodPost, "/api/v1/invoices", gin.H{"value": 2500, "memo": "coffee"})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "lntb25u1...", data["payment_request"])
}

func TestRouter_AddInvoice_MissingValue(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := d.do(t, http.MethodPost, "/api/v1/invoices", gin.H{"memo": "coffee"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "REQ_001")
}

func TestRouter_Pay(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.account.EXPECT().PayInvoice(gomock.Any(), "lntb1...").Return(true, nil)

	w := d.do(t, http.MethodPost, "/api/v1/payments", gin.H{"payment_request": "lntb1..."})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["success"])
}

func TestRouter_Pay_Timeout(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.account.EXPECT().PayInvoice(gomock.Any(), "lntb1...").Return(false, apperror.ErrPaymentTimeout())

	w := d.do(t, http.MethodPost, "/api/v1/payments", gin.H{"payment_request": "lntb1..."})

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "NODE_004")
}

func TestRouter_SettledInvoice_SetsAlert(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.account.EXPECT().
		NotifyIncomingPayment(gomock.Any(), gomock.Any()).
		Return(nil)
	d.account.EXPECT().ReceiveScreenAlert().Return(true)

	w := d.do(t, http.MethodPost, "/api/v1/invoices/settled", gin.H{
		"invoice": gin.H{"settled": true, "amount_paid": 1000, "payment_request": "lntb1..."},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["alert"])
}

// ==================== Trade Tests ====================

func TestRouter_RequestQuote(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	quote := domain.Quote{
		Side:       domain.SideBuy,
		SatPrice:   0.0001,
		SatAmount:  1000,
		ValidUntil: 1030,
	}
	d.exchange.EXPECT().
		RequestQuote(gomock.Any(), domain.SideBuy, int64(1000)).
		Return(quote, nil)

	w := d.do(t, http.MethodPost, "/api/v1/quotes", gin.H{"side": "buy", "sat_amount": 1000})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_ExecuteQuote_Sell(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.exchange.EXPECT().ExecuteSell(gomock.Any()).Return(true, nil)

	w := d.do(t, http.MethodPost, "/api/v1/quotes/execute", gin.H{"side": "sell"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ExecuteQuote_Expired(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.exchange.EXPECT().ExecuteBuy(gomock.Any()).Return(false, apperror.ErrQuoteExpired(1030, 1031))

	w := d.do(t, http.MethodPost, "/api/v1/quotes/execute", gin.H{"side": "buy"})

	assert.Equal(t, http.StatusGone, w.Code)
	assert.Contains(t, w.Body.String(), "TRADE_002")
}

func TestRouter_ExecuteQuote_UnknownSide(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := d.do(t, http.MethodPost, "/api/v1/quotes/execute", gin.H{"side": "hold"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ==================== System Tests ====================

func TestRouter_Status(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.lifecycle.EXPECT().Status().Return(ports.LifecycleStatus{
		State:        domain.WalletStateSynced,
		WalletExists: true,
	})
	d.onboarding.EXPECT().Stage().Return(domain.StageChannelOpened)

	w := d.do(t, http.MethodGet, "/api/v1/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "channelOpened", data["stage"])
}

func TestRouter_Navigation_UpdatesTracker(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := d.do(t, http.MethodPut, "/api/v1/navigation", gin.H{"screen": "receiveBitcoin"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "receiveBitcoin", d.screens.CurrentScreen())
}

func TestRouter_SetStage_PersistFailure(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.onboarding.EXPECT().
		SetStage(gomock.Any(), domain.StageWalletCreated).
		Return(apperror.ErrDocumentWrite("users/user-1", errors.New("unavailable")))

	w := d.do(t, http.MethodPost, "/api/v1/onboarding/stage", gin.H{"stage": "walletCreated"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "BACK_003")
}

// ==================== Channel Tests ====================

func TestRouter_ChannelStatus(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.channels.EXPECT().FirstChannelStatus(gomock.Any()).Return(domain.ChannelStatusPending, nil)

	w := d.do(t, http.MethodGet, "/api/v1/channels/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "pending", data["status"])
}

func TestRouter_ConnectPeer_NotSynced(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.channels.EXPECT().ConnectPeer(gomock.Any()).Return(apperror.ErrNotSynced())

	w := d.do(t, http.MethodPost, "/api/v1/channels/connect", nil)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Contains(t, w.Body.String(), "WALLET_004")
}

// ==================== Health Tests ====================

func TestHealthCheck_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	node := mocks.NewMockHealthChecker(ctrl)
	node.EXPECT().Healthy(gomock.Any()).Return(nil)
	node.EXPECT().Name().Return("node").AnyTimes()

	r := gin.New()
	r.GET("/healthz", HealthCheck(node))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	node := mocks.NewMockHealthChecker(ctrl)
	node.EXPECT().Healthy(gomock.Any()).Return(nil)
	node.EXPECT().Name().Return("node").AnyTimes()

	redis := mocks.NewMockHealthChecker(ctrl)
	redis.EXPECT().Healthy(gomock.Any()).Return(errors.New("connection refused"))
	redis.EXPECT().Name().Return("redis").AnyTimes()

	r := gin.New()
	r.GET("/healthz", HealthCheck(node, redis))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}
