package dispatchapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"PosBridge/internal/domain/order"
)

// Client posts order payloads to the external endpoint configured per shop.
// It implements order.Deliverer.
type Client struct {
	HTTP *http.Client
}

func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{HTTP: httpClient}
}

// Deliver posts the payload and returns the raw response body of a 2xx
// response. Transport failures, timeouts and non-2xx statuses are reported
// as order.ErrDeliveryFailed; only marshal problems surface as plain errors.
func (c *Client) Deliver(ctx context.Context, endpoint string, timeout time.Duration, payload order.Payload) (string, error) {
	j, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(j))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", order.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: %s: %s", order.ErrDeliveryFailed, resp.Status, string(raw))
	}

	return string(raw), nil
}
