// Package notify calls the stateless notification relay endpoint on behalf of
// the submission pipeline. The caller never waits on delivery semantics beyond
// the relay accepting the payload.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ingcor/backend/internal/model"
)

// ErrNotConfigured is returned when the relay URL or service key is missing.
var ErrNotConfigured = errors.New("notify: relay not configured")

// RelayClient posts validated contact payloads to the notification relay.
type RelayClient struct {
	url        string
	serviceKey string
	httpClient *http.Client
}

// NewRelayClient creates a RelayClient for the given endpoint. serviceKey is
// sent both as the bearer credential and the apikey header.
func NewRelayClient(url, serviceKey string) *RelayClient {
	return &RelayClient{
		url:        url,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// relayPayload is the JSON body the relay endpoint expects.
type relayPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Notify delivers the message payload to the relay endpoint.
func (c *RelayClient) Notify(ctx context.Context, msg *model.ContactMessage) error {
	if c.url == "" || c.serviceKey == "" {
		return ErrNotConfigured
	}

	payload := relayPayload{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
	}
	if msg.Phone != nil {
		payload.Phone = *msg.Phone
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify: relay status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
