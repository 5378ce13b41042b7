package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ingcor/backend/internal/contactform"
)

// ContactHandler handles the public contact form endpoint. Each request runs
// a fresh submission pipeline over shared dependencies: the site-wide
// advisory rate limiter, the message store and the notification relay.
type ContactHandler struct {
	limiter   contactform.RateLimiter
	persister contactform.Persister
	notifier  contactform.Notifier
}

// NewContactHandler creates a ContactHandler with the given pipeline deps.
func NewContactHandler(limiter contactform.RateLimiter, persister contactform.Persister, notifier contactform.Notifier) *ContactHandler {
	return &ContactHandler{limiter: limiter, persister: persister, notifier: notifier}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// submitResponse carries the pipeline's user-facing status message.
type submitResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	o := contactform.New(h.limiter, h.persister, h.notifier)
	o.SetField("name", req.Name)
	o.SetField("email", req.Email)
	o.SetField("phone", req.Phone)
	o.SetField("message", req.Message)

	status := o.Submit(r.Context())
	switch {
	case status.State == contactform.StateSucceeded:
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(submitResponse{OK: true, Message: status.Message})
	case status.Reason == contactform.ReasonThrottled:
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(submitResponse{Message: status.Message})
	case status.Reason == contactform.ReasonValidation:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(submitResponse{Message: status.Message})
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(submitResponse{Message: status.Message})
	}
}
