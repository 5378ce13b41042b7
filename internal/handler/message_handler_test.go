package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ingcor/backend/internal/model"
	"github.com/ingcor/backend/internal/repository"
	"github.com/ingcor/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	createFunc   func(ctx context.Context, msg *model.ContactMessage) error
	listFunc     func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	markReadFunc func(ctx context.Context, id string) error
	deleteFunc   func(ctx context.Context, id string) error
}

func (m *mockContactService) Create(ctx context.Context, msg *model.ContactMessage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockContactService) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func asAdmin(req *http.Request) *http.Request {
	return req.WithContext(auth.WithUserID(req.Context(), "admin-user-id"))
}

// ---------------------------------------------------------------------------
// GET /api/admin/messages tests
// ---------------------------------------------------------------------------

func TestMessageHandler_List_RequiresAuth(t *testing.T) {
	h := NewMessageHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without auth, got %d", rec.Code)
	}
}

func TestMessageHandler_List_Success(t *testing.T) {
	now := time.Now()
	messages := []*model.ContactMessage{
		{ID: "1", Name: "Ana", Email: "a@b.com", Message: "Hola", Read: false, CreatedAt: now},
		{ID: "2", Name: "Luis", Email: "c@d.com", Message: "Cotización", Read: true, CreatedAt: now},
	}
	mock := &mockContactService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			return messages, nil
		},
	}
	h := NewMessageHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(resp.Messages))
	}
}

func TestMessageHandler_List_UnreadFilter(t *testing.T) {
	var captured model.ContactListOptions
	mock := &mockContactService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			captured = opts
			return nil, nil
		},
	}
	h := NewMessageHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/messages?unread=true&limit=10&offset=20", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !captured.Unread {
		t.Error("expected unread filter forwarded")
	}
	if captured.Limit != 10 || captured.Offset != 20 {
		t.Errorf("expected limit=10 offset=20, got %d/%d", captured.Limit, captured.Offset)
	}
}

func TestMessageHandler_List_EmptyReturnsArray(t *testing.T) {
	h := NewMessageHandler(&mockContactService{})

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !json.Valid([]byte(body)) || body == "" {
		t.Fatalf("invalid body: %s", body)
	}

	var resp listResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Messages == nil {
		t.Error("expected [] not null for empty list")
	}
}

// ---------------------------------------------------------------------------
// PATCH /api/admin/messages/{id}/read and DELETE tests
// ---------------------------------------------------------------------------

func TestMessageHandler_MarkRead_Success(t *testing.T) {
	var capturedID string
	mock := &mockContactService{
		markReadFunc: func(ctx context.Context, id string) error {
			capturedID = id
			return nil
		},
	}
	h := NewMessageHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodPatch, "/api/admin/messages/msg-1/read", nil))
	req.SetPathValue("id", "msg-1")
	rec := httptest.NewRecorder()
	h.MarkRead(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if capturedID != "msg-1" {
		t.Errorf("expected id=msg-1 forwarded, got %q", capturedID)
	}
}

func TestMessageHandler_MarkRead_NotFound(t *testing.T) {
	mock := &mockContactService{
		markReadFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	h := NewMessageHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodPatch, "/api/admin/messages/nope/read", nil))
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.MarkRead(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestMessageHandler_Delete_Success(t *testing.T) {
	var capturedID string
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			capturedID = id
			return nil
		},
	}
	h := NewMessageHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/admin/messages/msg-2", nil))
	req.SetPathValue("id", "msg-2")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if capturedID != "msg-2" {
		t.Errorf("expected id=msg-2 forwarded, got %q", capturedID)
	}
}

func TestMessageHandler_Delete_ServiceError(t *testing.T) {
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			return errors.New("database error")
		},
	}
	h := NewMessageHandler(mock)

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/admin/messages/msg-3", nil))
	req.SetPathValue("id", "msg-3")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}
