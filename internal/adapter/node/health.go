package node

import (
	"context"
	"net/http"
)

// HealthCheck reports bridge reachability. Any HTTP response counts as
// reachable; only transport failures degrade the check.
type HealthCheck struct {
	bridge *Bridge
}

func NewHealthCheck(bridge *Bridge) *HealthCheck {
	return &HealthCheck{bridge: bridge}
}

func (h *HealthCheck) Name() string {
	return "node-bridge"
}

func (h *HealthCheck) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.bridge.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := h.bridge.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
