package httpapi

import (
	"context"

	"lightning-wallet-daemon/internal/core/ports"
)

// Callable function names on the backend.
const (
	fnQuoteTrade   = "quoteLNDBTC"
	fnExecuteBuy   = "buyLNDBTC"
	fnSendPubKey   = "sendPubKey"
	fnOpenChannel  = "openChannel"
	fnFiatBalances = "getFiatBalances"
)

// QuoteTrade asks the broker to price a trade.
func (c *Client) QuoteTrade(ctx context.Context, req ports.QuoteTradeRequest) (*ports.QuoteTradeReply, error) {
	var reply ports.QuoteTradeReply
	if err := c.callFunction(ctx, fnQuoteTrade, req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ExecuteBuy settles a quoted buy.
func (c *Client) ExecuteBuy(ctx context.Context, req ports.BuyRequest) (bool, error) {
	var reply struct {
		Success bool `json:"success"`
	}
	if err := c.callFunction(ctx, fnExecuteBuy, req, &reply); err != nil {
		return false, err
	}
	return reply.Success, nil
}

// SendPubKey announces the node identity.
func (c *Client) SendPubKey(ctx context.Context, pubkey, network string) error {
	args := struct {
		Pubkey  string `json:"pubkey"`
		Network string `json:"network"`
	}{pubkey, network}
	return c.callFunction(ctx, fnSendPubKey, args, nil)
}

// OpenChannel asks the service node to open an inbound channel.
func (c *Client) OpenChannel(ctx context.Context) error {
	return c.callFunction(ctx, fnOpenChannel, struct{}{}, nil)
}

// FiatBalances returns the settled fiat balance in cents.
func (c *Client) FiatBalances(ctx context.Context) (int64, error) {
	var reply struct {
		Balance int64 `json:"balance"`
	}
	if err := c.callFunction(ctx, fnFiatBalances, struct{}{}, &reply); err != nil {
		return 0, err
	}
	return reply.Balance, nil
}
