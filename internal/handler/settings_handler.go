package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ingcor/backend/internal/service"
	"github.com/ingcor/backend/pkg/auth"
)

// SettingsHandler serves the site's key-value configuration.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler with the given service.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/settings. Public: the contact section reads phone,
// email and address from here at mount time.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	settings, err := h.settingsService.GetAll(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "settings_failed"})
		return
	}
	if settings == nil {
		settings = map[string]string{}
	}
	_ = json.NewEncoder(w).Encode(settings)
}

// Update handles PUT /api/admin/settings with a flat key→value JSON object.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	var settings map[string]string
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if len(settings) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "empty_settings"})
		return
	}

	if err := h.settingsService.Save(r.Context(), settings); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "save_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
