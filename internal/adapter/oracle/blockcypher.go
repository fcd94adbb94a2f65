// Package oracle reports the best known chain height from a public block
// explorer, independent of the node's own view.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lightning-wallet-daemon/pkg/apperror"

	"github.com/rs/zerolog"
)

// Chain endpoints per network.
const (
	testnetChainURL = "https://api.blockcypher.com/v1/btc/test3"
	mainnetChainURL = "https://api.blockcypher.com/v1/btc/main"
)

// BlockCypher implements ports.HeightOracle against the BlockCypher chain
// endpoint.
type BlockCypher struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewBlockCypher creates an oracle for the given bitcoin network. Only
// testnet and mainnet exist; anything else is a configuration error.
func NewBlockCypher(network string, timeout time.Duration, log zerolog.Logger) (*BlockCypher, error) {
	var url string
	switch network {
	case "testnet":
		url = testnetChainURL
	case "mainnet":
		url = mainnetChainURL
	default:
		return nil, apperror.ErrConfig(fmt.Sprintf("unknown bitcoin network %q", network))
	}

	return &BlockCypher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}, nil
}

// newBlockCypherAt is the testable constructor with an explicit URL.
func newBlockCypherAt(url string, log zerolog.Logger) *BlockCypher {
	return &BlockCypher{url: url, client: &http.Client{Timeout: 5 * time.Second}, log: log}
}

// BestHeight fetches the current chain height.
func (o *BlockCypher) BestHeight(ctx context.Context) (int32, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching chain height: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("chain height endpoint returned %d: %s", resp.StatusCode, body)
	}

	var reply struct {
		Height int32 `json:"height"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return 0, fmt.Errorf("decoding chain height: %w", err)
	}
	return reply.Height, nil
}
