package oracle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lightning-wallet-daemon/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockCypher_BestHeight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "BTC.test3", "height": 1654321}`))
	}))
	defer srv.Close()

	o := newBlockCypherAt(srv.URL, zerolog.Nop())

	height, err := o.BestHeight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1654321), height)
}

func TestBlockCypher_BestHeight_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	o := newBlockCypherAt(srv.URL, zerolog.Nop())

	_, err := o.BestHeight(context.Background())
	assert.Error(t, err)
}

func TestNewBlockCypher_Networks(t *testing.T) {
	tests := []struct {
		network string
		wantErr bool
	}{
		{"testnet", false},
		{"mainnet", false},
		{"regtest", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.network, func(t *testing.T) {
			_, err := NewBlockCypher(tt.network, time.Second, zerolog.Nop())
			if tt.wantErr {
				assert.Equal(t, "CFG_001", apperror.Code(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
