package http

import (
	"net/http"
)

type sidebarWidthPayload struct {
	Width int `json:"width"`
}

// GetSidebarWidth returns the persisted sidebar width, clamped into the
// configured range.
func (h *Handlers) GetSidebarWidth(w http.ResponseWriter, r *http.Request) {
	width, err := h.Prefs.SidebarWidth(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sidebarWidthPayload{Width: width})
}

// PutSidebarWidth persists the sidebar width.
func (h *Handlers) PutSidebarWidth(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[sidebarWidthPayload](w, r)
	if !ok {
		return
	}

	if err := h.Prefs.SetSidebarWidth(r.Context(), req.Width); err != nil {
		writeDomainError(w, err, "sidebar width")
		return
	}
	writeJSON(w, http.StatusOK, sidebarWidthPayload{Width: req.Width})
}
