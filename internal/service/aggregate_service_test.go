package service

import (
	"context"
	"errors"
	"testing"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type aggregateTestDeps struct {
	svc   *AggregateService
	rates *mocks.MockRates
	fiat  *mocks.MockFiatAccount
	node  *mocks.MockNodeAccount
	ctrl  *gomock.Controller
}

func setupAggregateService(t *testing.T) *aggregateTestDeps {
	ctrl := gomock.NewController(t)
	d := &aggregateTestDeps{
		rates: mocks.NewMockRates(ctrl),
		fiat:  mocks.NewMockFiatAccount(ctrl),
		node:  mocks.NewMockNodeAccount(ctrl),
		ctrl:  ctrl,
	}
	d.svc = NewAggregateService(d.rates, d.fiat, d.node, zerolog.Nop())
	return d
}

func TestAggregateService_UpdateBalances_Order(t *testing.T) {
	d := setupAggregateService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	gomock.InOrder(
		d.rates.EXPECT().Refresh(ctx),
		d.fiat.EXPECT().RefreshBalance(ctx),
		d.node.EXPECT().RefreshBalance(ctx).Return(int64(100), nil),
	)

	require.NoError(t, d.svc.UpdateBalances(ctx))
}

func TestAggregateService_UpdateBalances_NodeFailureSurfaces(t *testing.T) {
	d := setupAggregateService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.rates.EXPECT().Refresh(ctx)
	d.fiat.EXPECT().RefreshBalance(ctx)
	d.node.EXPECT().RefreshBalance(ctx).Return(int64(0), errors.New("node down"))

	assert.Error(t, d.svc.UpdateBalances(ctx))
}

func TestAggregateService_UpdateTransactions(t *testing.T) {
	d := setupAggregateService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	gomock.InOrder(
		d.fiat.EXPECT().RefreshTransactions(ctx),
		d.node.EXPECT().RefreshTransactions(ctx).Return(nil),
	)

	require.NoError(t, d.svc.UpdateTransactions(ctx))
}

func TestAggregateService_BalanceInCurrency(t *testing.T) {
	d := setupAggregateService(t)
	defer d.ctrl.Finish()

	// 1 sat = 0.0001 USD; node holds 200k sats, fiat holds 10 USD.
	d.rates.EXPECT().Rate(domain.CurrencyBTC).Return(0.0001).AnyTimes()
	d.rates.EXPECT().Rate(domain.CurrencyUSD).Return(1.0).AnyTimes()
	d.node.EXPECT().Balance().Return(domain.Balance{Confirmed: 200000}).AnyTimes()
	d.node.EXPECT().Currency().Return(domain.CurrencyBTC).AnyTimes()
	d.fiat.EXPECT().Balance().Return(domain.Balance{Confirmed: 10}).AnyTimes()
	d.fiat.EXPECT().Currency().Return(domain.CurrencyUSD).AnyTimes()

	assert.InDelta(t, 20.0, d.svc.BalanceInCurrency(domain.AccountTypeBitcoin, domain.CurrencyUSD), 1e-9)
	assert.InDelta(t, 10.0, d.svc.BalanceInCurrency(domain.AccountTypeFiat, domain.CurrencyUSD), 1e-9)
	assert.InDelta(t, 30.0, d.svc.BalanceInCurrency(domain.AccountTypeAll, domain.CurrencyUSD), 1e-9)
	// The same total expressed in sats.
	assert.InDelta(t, 300000.0, d.svc.BalanceInCurrency(domain.AccountTypeAll, domain.CurrencyBTC), 1e-6)
}

func TestAggregateService_BalanceInCurrency_UnknownTarget(t *testing.T) {
	d := setupAggregateService(t)
	defer d.ctrl.Finish()

	d.rates.EXPECT().Rate(domain.CurrencyType("EUR")).Return(0.0)

	assert.Equal(t, 0.0, d.svc.BalanceInCurrency(domain.AccountTypeAll, domain.CurrencyType("EUR")))
}
