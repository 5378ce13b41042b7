// Package telegram provides a lightweight Telegram Bot API client for
// contact notifications. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrNotConfigured is returned when the bot token or chat ID list is missing.
var ErrNotConfigured = errors.New("telegram: not configured")

// ContactMessage is the payload delivered to operators.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Client sends contact notifications to one or more Telegram chats.
type Client struct {
	botToken   string
	chatIDs    []string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. chatIDs is a comma-separated list of chat IDs;
// blank entries are dropped.
func NewClient(botToken, chatIDs string) *Client {
	var ids []string
	for _, id := range strings.Split(chatIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return &Client{
		botToken:   botToken,
		chatIDs:    ids,
		baseURL:    "https://api.telegram.org",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether both credential and destinations are present.
func (c *Client) Configured() bool {
	return c.botToken != "" && len(c.chatIDs) > 0
}

// NotifyContact formats the message and delivers it to every configured chat
// concurrently. Partial delivery failure is tolerated: an error is returned
// only when configuration is missing or no chat could be reached.
func (c *Client) NotifyContact(ctx context.Context, msg ContactMessage) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	text := formatContact(msg)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, chatID := range c.chatIDs {
		wg.Add(1)
		go func(chatID string) {
			defer wg.Done()
			if err := c.sendMessage(ctx, chatID, text); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("chat %s: %w", chatID, err))
				mu.Unlock()
			}
		}(chatID)
	}
	wg.Wait()

	if len(errs) == len(c.chatIDs) {
		return errors.Join(errs...)
	}
	for _, err := range errs {
		slog.Warn("telegram delivery failed for one destination", "error", err)
	}
	return nil
}

// sendMessage posts one sendMessage call to the Bot API.
func (c *Client) sendMessage(ctx context.Context, chatID, text string) error {
	body, err := json.Marshal(map[string]string{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram: sendMessage status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}

// formatContact renders the operator-facing notification text.
func formatContact(msg ContactMessage) string {
	phone := msg.Phone
	if phone == "" {
		phone = "No proporcionado"
	}
	return fmt.Sprintf(`🔔 *Nuevo Mensaje de Contacto*

👤 *Nombre:* %s
📧 *Email:* %s
📱 *Teléfono:* %s

💬 *Mensaje:*
%s

---
_Recibido desde grupoingcorp.vercel.app_`,
		msg.Name, msg.Email, phone, msg.Message)
}
