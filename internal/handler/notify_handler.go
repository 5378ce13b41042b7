package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ingcor/backend/pkg/telegram"
)

// TelegramNotifier is the delivery interface behind the relay endpoint.
// *telegram.Client satisfies it.
type TelegramNotifier interface {
	NotifyContact(ctx context.Context, msg telegram.ContactMessage) error
}

// NotifyHandler exposes the Telegram relay endpoint. The contact form
// orchestrator posts here after a message is persisted; the handler is also
// reachable by other trusted backends that hold the service key, which is
// why it carries its own permissive CORS and key auth instead of the
// session-cookie middleware.
type NotifyHandler struct {
	client     TelegramNotifier
	serviceKey string
}

func NewNotifyHandler(client TelegramNotifier, serviceKey string) *NotifyHandler {
	return &NotifyHandler{client: client, serviceKey: serviceKey}
}

type notifyRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (h *NotifyHandler) cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, apikey")
}

// Preflight handles OPTIONS /api/notify-telegram.
func (h *NotifyHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	h.cors(w)
	w.WriteHeader(http.StatusNoContent)
}

// Relay handles POST /api/notify-telegram.
func (h *NotifyHandler) Relay(w http.ResponseWriter, r *http.Request) {
	h.cors(w)
	w.Header().Set("Content-Type", "application/json")

	if !h.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	err := h.client.NotifyContact(r.Context(), telegram.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, telegram.ErrNotConfigured) {
			slog.Warn("telegram relay not configured, dropping notification")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_configured"})
			return
		}
		slog.Error("telegram relay failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delivery_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// authorized accepts either a bearer Authorization header or the apikey
// header carrying the service key.
func (h *NotifyHandler) authorized(r *http.Request) bool {
	if h.serviceKey == "" {
		return false
	}
	if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && bearer == h.serviceKey {
		return true
	}
	return r.Header.Get("apikey") == h.serviceKey
}
