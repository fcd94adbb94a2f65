package node

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(t *testing.T, handler http.Handler) *Bridge {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBridge(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestBridge_GenSeed(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/unlocker/GenSeed", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"cipher_seed_mnemonic": []string{"absorb", "cactus"},
		})
	}))

	reply, err := b.GenSeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"absorb", "cactus"}, reply.CipherSeedMnemonic)
}

func TestBridge_GenSeed_WalletExistsSignal(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "rpc error: wallet already exists",
		})
	}))

	_, err := b.GenSeed(context.Background())
	assert.Equal(t, apperror.CodeWalletExists, apperror.Code(err))
}

func TestBridge_GenSeed_UnlockerClosed(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "transport: Closed",
		})
	}))

	_, err := b.GenSeed(context.Background())
	assert.Equal(t, apperror.CodeUnlockerClosed, apperror.Code(err))
}

func TestBridge_UnknownErrorMapsToNodeCommand(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "something broke"})
	}))

	_, err := b.GetInfo(context.Background())
	assert.Equal(t, "NODE_001", apperror.Code(err))
}

func TestBridge_InitWallet_SendsSeedAndPassword(t *testing.T) {
	var got struct {
		WalletPassword     string   `json:"wallet_password"`
		CipherSeedMnemonic []string `json:"cipher_seed_mnemonic"`
	}
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/unlocker/InitWallet", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("{}"))
	}))

	err := b.InitWallet(context.Background(), ports.InitWalletRequest{
		WalletPassword:     "aabbcc",
		CipherSeedMnemonic: []string{"absorb", "cactus"},
	})
	require.NoError(t, err)
	assert.Equal(t, "aabbcc", got.WalletPassword)
	assert.Equal(t, []string{"absorb", "cactus"}, got.CipherSeedMnemonic)
}

func TestBridge_GetInfo_NumericStringHeights(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/unary/getInfo", r.URL.Path)
		w.Write([]byte(`{
			"version": "0.10.0-beta commit=v0.10.0",
			"identity_pubkey": "02abcdef",
			"synced_to_chain": true,
			"block_height": "654321",
			"chains": [{"chain": "bitcoin", "network": "testnet"}]
		}`))
	}))

	reply, err := b.GetInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(654321), reply.BlockHeight)
	assert.Equal(t, "testnet", reply.Chains[0].Network)
	assert.True(t, reply.SyncedToChain)
}

func TestBridge_WalletBalance_StringAmounts(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"confirmed_balance": "1500", "unconfirmed_balance": 250}`))
	}))

	reply, err := b.WalletBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1500), reply.ConfirmedBalance)
	assert.Equal(t, int64(250), reply.UnconfirmedBalance)
}

func TestBridge_ListTransactions_OptionalConfirmations(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/unary/getTransactions", r.URL.Path)
		w.Write([]byte(`{"transactions": [
			{"tx_hash": "aa", "amount": "5000", "num_confirmations": 6, "time_stamp": "100"},
			{"tx_hash": "bb", "amount": "-2000", "time_stamp": "200"}
		]}`))
	}))

	txs, err := b.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 2)
	require.NotNil(t, txs[0].NumConfirmations)
	assert.Equal(t, int32(6), *txs[0].NumConfirmations)
	assert.Nil(t, txs[1].NumConfirmations)
	assert.Equal(t, int64(-2000), txs[1].Amount)
}

func TestBridge_DecodePayReq(t *testing.T) {
	b := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var args struct {
			PayReq string `json:"pay_req"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&args))
		assert.Equal(t, "lnbc1", args.PayReq)
		w.Write([]byte(`{
			"destination": "02dest",
			"payment_hash": "ffee",
			"num_satoshis": "1000",
			"timestamp": "1700000000",
			"expiry": "60",
			"description": "Sell BTC at: 0.0001"
		}`))
	}))

	decoded, err := b.DecodePayReq(context.Background(), "lnbc1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), decoded.NumSatoshis)
	assert.Equal(t, int64(1700000000), decoded.Timestamp)
	assert.Equal(t, int64(60), decoded.Expiry)
}

func TestBridge_SendPayment_Stream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stream/sendPayment", r.URL.Path)
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		var req struct {
			PaymentRequest string `json:"payment_request"`
		}
		require.NoError(t, conn.ReadJSON(&req))
		require.Equal(t, "lnbc1", req.PaymentRequest)
		conn.WriteJSON(map[string]string{"payment_preimage": "deadbeef"})
	}))
	defer srv.Close()

	b := NewBridge(srv.URL, 5*time.Second, zerolog.Nop())

	stream, err := b.SendPayment(context.Background())
	require.NoError(t, err)
	defer stream.Close()

	require.NoError(t, stream.Send(ports.PaymentStreamRequest{PaymentRequest: "lnbc1"}))

	result, err := stream.Recv()
	require.NoError(t, err)
	assert.Empty(t, result.PaymentError)
	assert.Equal(t, "deadbeef", result.PaymentPreimage)
}
