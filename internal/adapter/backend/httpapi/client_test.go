package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lightning-wallet-daemon/internal/core/domain"
	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef"

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:     srv.URL,
		AuthSecret:  testSecret,
		UserID:      "user-1",
		TokenExpiry: time.Hour,
		Timeout:     5 * time.Second,
	}, zerolog.Nop())
}

func parseToken(t *testing.T, r *http.Request) jwt.MapClaims {
	t.Helper()
	auth := r.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(auth, "Bearer "))

	token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token.Claims.(jwt.MapClaims)
}

func TestClient_RequestCarriesTokenAndCorrelationID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := parseToken(t, r)
		assert.Equal(t, "user-1", claims["uid"])
		assert.Equal(t, "walletd", claims["iss"])
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`{"balance": 12500}`))
	}))

	balance, err := c.FiatBalances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12500), balance)
}

func TestClient_QuoteTrade(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/quoteLNDBTC", r.URL.Path)
		var req ports.QuoteTradeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.SideSell, req.Side)
		assert.Equal(t, int64(5000), req.SatAmount)

		json.NewEncoder(w).Encode(ports.QuoteTradeReply{
			Side: domain.SideSell, Invoice: "lnbc_broker", Signature: "sig1",
		})
	}))

	reply, err := c.QuoteTrade(context.Background(), ports.QuoteTradeRequest{
		Side: domain.SideSell, SatAmount: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, "lnbc_broker", reply.Invoice)
}

func TestClient_ExecuteBuy(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/buyLNDBTC", r.URL.Path)
		w.Write([]byte(`{"success": true}`))
	}))

	ok, err := c.ExecuteBuy(context.Background(), ports.BuyRequest{Side: domain.SideBuy})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_FunctionFailureMapsToBackendError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	_, err := c.FiatBalances(context.Background())
	assert.Equal(t, "BACK_001", apperror.Code(err))
}

func TestClient_GetDocument(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/documents/global/price", r.URL.Path)
		w.Write([]byte(`{"BTC": 0.00025}`))
	}))

	var doc ports.PriceDocument
	require.NoError(t, c.GetDocument(context.Background(), "global/price", &doc))
	assert.Equal(t, 0.00025, doc.BTC)
}

func TestClient_SetDocument_Merge(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/documents/users/user-1", r.URL.Path)

		var body struct {
			Fields map[string]any `json:"fields"`
			Merge  bool           `json:"merge"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "walletCreated", body.Fields["stage"])
		assert.True(t, body.Merge)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := c.SetDocument(context.Background(), "users/user-1",
		map[string]any{"stage": "walletCreated"}, true)
	require.NoError(t, err)
}

func TestClient_DocumentReadFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	var doc ports.PriceDocument
	err := c.GetDocument(context.Background(), "global/price", &doc)
	assert.Equal(t, "BACK_002", apperror.Code(err))
}

func TestClient_SessionTokenReused(t *testing.T) {
	var tokens []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.Header.Get("Authorization"))
		w.Write([]byte(`{"balance": 1}`))
	}))

	ctx := context.Background()
	_, err := c.FiatBalances(ctx)
	require.NoError(t, err)
	_, err = c.FiatBalances(ctx)
	require.NoError(t, err)

	require.Len(t, tokens, 2)
	assert.Equal(t, tokens[0], tokens[1])
}

func TestClient_EmulatorHostOverridesBaseURL(t *testing.T) {
	c := NewClient(Config{
		BaseURL:      "https://api.example.com",
		EmulatorHost: "localhost:5001",
		AuthSecret:   testSecret,
		UserID:       "user-1",
		TokenExpiry:  time.Hour,
	}, zerolog.Nop())

	assert.Equal(t, "http://localhost:5001", c.baseURL)
}

func TestClient_UserID_Unconfigured(t *testing.T) {
	c := NewClient(Config{AuthSecret: testSecret}, zerolog.Nop())

	_, err := c.UserID(context.Background())
	assert.Equal(t, "CFG_001", apperror.Code(err))
}
