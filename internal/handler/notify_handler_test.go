package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ingcor/backend/pkg/telegram"
)

type mockTelegramNotifier struct {
	notifyFunc func(ctx context.Context, msg telegram.ContactMessage) error
	received   []telegram.ContactMessage
}

func (m *mockTelegramNotifier) NotifyContact(ctx context.Context, msg telegram.ContactMessage) error {
	m.received = append(m.received, msg)
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, msg)
	}
	return nil
}

const testServiceKey = "test-service-key"

func postNotify(t *testing.T, h *NotifyHandler, body string, setAuth func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/notify-telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if setAuth != nil {
		setAuth(req)
	}
	rec := httptest.NewRecorder()
	h.Relay(rec, req)
	return rec
}

func TestNotifyHandler_Relay_BearerAuth(t *testing.T) {
	mock := &mockTelegramNotifier{}
	h := NewNotifyHandler(mock, testServiceKey)

	body := `{"name":"Ana","email":"ana@example.com","phone":"+52 55 1234","message":"Hola"}`
	rec := postNotify(t, h, body, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+testServiceKey)
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if len(mock.received) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(mock.received))
	}
	if mock.received[0].Name != "Ana" || mock.received[0].Phone != "+52 55 1234" {
		t.Errorf("unexpected payload: %+v", mock.received[0])
	}

	var resp map[string]bool
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp["success"] {
		t.Error("expected success=true")
	}
}

func TestNotifyHandler_Relay_ApikeyAuth(t *testing.T) {
	mock := &mockTelegramNotifier{}
	h := NewNotifyHandler(mock, testServiceKey)

	rec := postNotify(t, h, `{"name":"Ana","email":"a@b.co","message":"Hola"}`, func(r *http.Request) {
		r.Header.Set("apikey", testServiceKey)
	})

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with apikey header, got %d", rec.Code)
	}
}

func TestNotifyHandler_Relay_Unauthorized(t *testing.T) {
	tests := []struct {
		name    string
		setAuth func(*http.Request)
	}{
		{"no auth", nil},
		{"wrong bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }},
		{"wrong apikey", func(r *http.Request) { r.Header.Set("apikey", "nope") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTelegramNotifier{}
			h := NewNotifyHandler(mock, testServiceKey)

			rec := postNotify(t, h, `{"name":"Ana","email":"a@b.co","message":"Hola"}`, tt.setAuth)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
			if len(mock.received) != 0 {
				t.Error("expected no delivery attempt without valid auth")
			}
		})
	}
}

func TestNotifyHandler_Relay_EmptyServiceKeyRejectsAll(t *testing.T) {
	h := NewNotifyHandler(&mockTelegramNotifier{}, "")

	rec := postNotify(t, h, `{"name":"Ana","email":"a@b.co","message":"Hola"}`, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer ")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 when no service key is configured, got %d", rec.Code)
	}
}

func TestNotifyHandler_Relay_NotConfigured(t *testing.T) {
	mock := &mockTelegramNotifier{
		notifyFunc: func(ctx context.Context, msg telegram.ContactMessage) error {
			return telegram.ErrNotConfigured
		},
	}
	h := NewNotifyHandler(mock, testServiceKey)

	rec := postNotify(t, h, `{"name":"Ana","email":"a@b.co","message":"Hola"}`, func(r *http.Request) {
		r.Header.Set("apikey", testServiceKey)
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 when telegram is not configured, got %d", rec.Code)
	}
}

func TestNotifyHandler_Relay_DeliveryFailure(t *testing.T) {
	mock := &mockTelegramNotifier{
		notifyFunc: func(ctx context.Context, msg telegram.ContactMessage) error {
			return errors.New("all chats unreachable")
		},
	}
	h := NewNotifyHandler(mock, testServiceKey)

	rec := postNotify(t, h, `{"name":"Ana","email":"a@b.co","message":"Hola"}`, func(r *http.Request) {
		r.Header.Set("apikey", testServiceKey)
	})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on delivery failure, got %d", rec.Code)
	}
}

func TestNotifyHandler_Preflight(t *testing.T) {
	h := NewNotifyHandler(&mockTelegramNotifier{}, testServiceKey)

	req := httptest.NewRequest(http.MethodOptions, "/api/notify-telegram", nil)
	rec := httptest.NewRecorder()
	h.Preflight(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected permissive CORS origin, got %q", origin)
	}
}
