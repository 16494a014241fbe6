package attendancesdk

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetLiveness reports whether the process is serving requests.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness reports whether the service can reach its database. A degraded
// service answers 503; the decoded body is returned alongside the *APIError
// so callers can inspect the failing check.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &health, http.StatusOK)
	if err == nil {
		return &health, nil
	}

	apiErr, ok := err.(*APIError)
	if !ok || apiErr.StatusCode != http.StatusServiceUnavailable {
		return nil, err
	}
	if jsonErr := json.Unmarshal(apiErr.Body, &health); jsonErr != nil {
		return nil, err
	}
	return &health, err
}
