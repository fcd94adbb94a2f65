package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/internal/core/ports/mocks"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type accountTestDeps struct {
	svc      *NodeAccountService
	node     *mocks.MockNodeTransport
	notifier *mocks.MockNotifier
	nav      *mocks.MockNavigationState
	ctrl     *gomock.Controller
}

func setupNodeAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		node:     mocks.NewMockNodeTransport(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		nav:      mocks.NewMockNavigationState(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewNodeAccountService(d.node, d.notifier, d.nav, 50*time.Millisecond, zerolog.Nop())
	return d
}

// ==================== Balances ====================

func TestNodeAccountService_RefreshBalance_CombinesOnChainAndChannels(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().WalletBalance(ctx).Return(&ports.WalletBalanceReply{
		ConfirmedBalance: 1000, UnconfirmedBalance: 200,
	}, nil)
	d.node.EXPECT().ChannelBalance(ctx).Return(&ports.ChannelBalanceReply{
		Balance: 500, PendingOpenBalance: 50,
	}, nil)

	total, err := d.svc.RefreshBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1750), total)
	assert.Equal(t, domain.Balance{Confirmed: 1500, Unconfirmed: 250}, d.svc.Balance())
}

func TestNodeAccountService_RefreshBalance_FailureSurfaces(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().WalletBalance(ctx).Return(nil, errors.New("unavailable"))

	_, err := d.svc.RefreshBalance(ctx)
	assert.Equal(t, "WALLET_002", apperror.Code(err))
	// The previous snapshot is untouched.
	assert.Equal(t, domain.Balance{}, d.svc.Balance())
}

// ==================== Record sets ====================

func TestNodeAccountService_RefreshAll_RunsExactlyOnePass(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().WalletBalance(ctx).Return(&ports.WalletBalanceReply{ConfirmedBalance: 10}, nil).Times(1)
	d.node.EXPECT().ChannelBalance(ctx).Return(&ports.ChannelBalanceReply{}, nil).Times(1)
	d.node.EXPECT().ListTransactions(ctx).Return([]domain.OnChainTransaction{{TxHash: "aa"}}, nil).Times(1)
	d.node.EXPECT().ListInvoices(ctx).Return([]domain.Invoice{{PaymentRequest: "lnbc1"}}, nil).Times(1)
	d.node.EXPECT().ListPayments(ctx).Return([]domain.Payment{{Hash: "ff"}}, nil).Times(1)

	require.NoError(t, d.svc.RefreshAll(ctx))
}

func TestNodeAccountService_RefreshInvoices_FailureKeepsPriorSet(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	now := time.Now().Unix()

	d.node.EXPECT().ListInvoices(ctx).Return([]domain.Invoice{
		{PaymentRequest: "lnbc1", Value: 100, Settled: true, CreationDate: now},
	}, nil)
	d.svc.RefreshInvoices(ctx)
	require.Len(t, d.svc.History(now), 1)

	d.node.EXPECT().ListInvoices(ctx).Return(nil, errors.New("unavailable"))
	d.svc.RefreshInvoices(ctx)
	assert.Len(t, d.svc.History(now), 1)
}

func TestNodeAccountService_RefreshTransactions_FailureSurfaces(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().ListTransactions(ctx).Return(nil, errors.New("unavailable"))
	assert.Error(t, d.svc.RefreshTransactions(ctx))
}

// ==================== Addresses and invoices ====================

func TestNodeAccountService_NewAddress_Remembered(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().NewAddress(ctx, int32(0)).Return("tb1qexample", nil)

	addr, err := d.svc.NewAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tb1qexample", addr)
	assert.Equal(t, "tb1qexample", d.svc.OnChainAddress())
}

func TestNodeAccountService_AddInvoice_DefaultsApplied(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().AddInvoice(ctx, ports.AddInvoiceRequest{
		Value: 2500, Memo: "coffee", Expiry: 172800, Private: true,
	}).Return(&ports.AddInvoiceReply{RHash: "ab", PaymentRequest: "lnbc25"}, nil)

	reply, err := d.svc.AddInvoice(ctx, ports.AddInvoiceRequest{Value: 2500, Memo: "coffee"})
	require.NoError(t, err)
	assert.Equal(t, "lnbc25", reply.PaymentRequest)
}

func TestNodeAccountService_AddInvoice_ExplicitExpiryKept(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().AddInvoice(ctx, ports.AddInvoiceRequest{
		Value: 1000, Memo: "Buy BTC", Expiry: 30, Private: true,
	}).Return(&ports.AddInvoiceReply{PaymentRequest: "lnbc10"}, nil)

	_, err := d.svc.AddInvoice(ctx, ports.AddInvoiceRequest{Value: 1000, Memo: "Buy BTC", Expiry: 30})
	require.NoError(t, err)
}

// ==================== PayInvoice ====================

func TestNodeAccountService_PayInvoice_Success(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	stream := mocks.NewMockPaymentStream(d.ctrl)
	d.node.EXPECT().SendPayment(ctx).Return(stream, nil)
	stream.EXPECT().Send(ports.PaymentStreamRequest{PaymentRequest: "lnbc1"}).Return(nil)
	stream.EXPECT().Recv().Return(&ports.PaymentStreamResult{PaymentPreimage: "deadbeef"}, nil)
	stream.EXPECT().Close().Return(nil)

	success, err := d.svc.PayInvoice(ctx, "lnbc1")
	require.NoError(t, err)
	assert.True(t, success)
}

func TestNodeAccountService_PayInvoice_Rejected(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	stream := mocks.NewMockPaymentStream(d.ctrl)
	d.node.EXPECT().SendPayment(ctx).Return(stream, nil)
	stream.EXPECT().Send(gomock.Any()).Return(nil)
	stream.EXPECT().Recv().Return(&ports.PaymentStreamResult{PaymentError: "no route"}, nil)
	stream.EXPECT().Close().Return(nil)

	success, err := d.svc.PayInvoice(ctx, "lnbc1")
	assert.False(t, success)
	assert.Equal(t, "NODE_005", apperror.Code(err))
}

func TestNodeAccountService_PayInvoice_LocalTimeout(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	stream := mocks.NewMockPaymentStream(d.ctrl)
	d.node.EXPECT().SendPayment(ctx).Return(stream, nil)
	stream.EXPECT().Send(gomock.Any()).Return(nil)
	recvStarted := make(chan struct{})
	release := make(chan struct{})
	stream.EXPECT().Recv().DoAndReturn(func() (*ports.PaymentStreamResult, error) {
		close(recvStarted)
		<-release
		return &ports.PaymentStreamResult{PaymentPreimage: "late"}, nil
	})
	stream.EXPECT().Close().Return(nil)

	success, err := d.svc.PayInvoice(ctx, "lnbc1")
	assert.False(t, success)
	assert.Equal(t, "NODE_004", apperror.Code(err))

	<-recvStarted
	close(release)
}

// ==================== Incoming payment handling ====================

func TestNodeAccountService_NotifyIncomingPayment_UnrelatedInvoiceNotifies(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.notifier.EXPECT().Notify(ctx, "Payment received", "You just received 777 sats").Return(nil)

	err := d.svc.NotifyIncomingPayment(ctx, &domain.Invoice{
		PaymentRequest: "lnbc777", Value: 777, Settled: true,
	})
	require.NoError(t, err)
	assert.False(t, d.svc.ReceiveScreenAlert())
}

func TestNodeAccountService_NotifyIncomingPayment_OnReceiveScreenSetsAlert(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().AddInvoice(ctx, gomock.Any()).Return(&ports.AddInvoiceReply{PaymentRequest: "lnbc42"}, nil)
	_, err := d.svc.AddInvoice(ctx, ports.AddInvoiceRequest{Value: 42})
	require.NoError(t, err)

	d.nav.EXPECT().CurrentScreen().Return(ReceiveScreenName)

	err = d.svc.NotifyIncomingPayment(ctx, &domain.Invoice{
		PaymentRequest: "lnbc42", Value: 42, Settled: true,
	})
	require.NoError(t, err)
	assert.True(t, d.svc.ReceiveScreenAlert())

	d.svc.ClearReceiveScreenAlert()
	assert.False(t, d.svc.ReceiveScreenAlert())
}

func TestNodeAccountService_NotifyIncomingPayment_OffScreenStillNotifies(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.node.EXPECT().AddInvoice(ctx, gomock.Any()).Return(&ports.AddInvoiceReply{PaymentRequest: "lnbc42"}, nil)
	_, err := d.svc.AddInvoice(ctx, ports.AddInvoiceRequest{Value: 42})
	require.NoError(t, err)

	d.nav.EXPECT().CurrentScreen().Return("home")
	d.notifier.EXPECT().Notify(ctx, "Payment received", "You just received 42 sats").Return(nil)

	err = d.svc.NotifyIncomingPayment(ctx, &domain.Invoice{
		PaymentRequest: "lnbc42", Value: 42, Settled: true,
	})
	require.NoError(t, err)
	assert.False(t, d.svc.ReceiveScreenAlert())
}

func TestNodeAccountService_NotifyIncomingPayment_UnsettledIgnored(t *testing.T) {
	d := setupNodeAccountService(t)
	defer d.ctrl.Finish()

	err := d.svc.NotifyIncomingPayment(context.Background(), &domain.Invoice{
		PaymentRequest: "lnbc9", Value: 9, Settled: false,
	})
	require.NoError(t, err)
}
