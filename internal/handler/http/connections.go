package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type connectByOobiRequest struct {
	URL              string `json:"url"`
	SharedIdentifier string `json:"sharedIdentifier,omitempty"`
}

func (h *Handler) listConnections(w http.ResponseWriter, r *http.Request) {
	conns, err := h.services.Connections.GetConnections(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.listConnections", err)
		return
	}
	writeJSON(w, http.StatusOK, conns)
}

func (h *Handler) connectByOobi(w http.ResponseWriter, r *http.Request) {
	var req connectByOobiRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, "*Handler.connectByOobi", err)
		return
	}

	res, err := h.services.Connections.ConnectByOobiURL(r.Context(), req.URL, req.SharedIdentifier)
	if err != nil {
		h.fail(w, r, "*Handler.connectByOobi", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// deleteConnection hides the pair at once; the remote contact is cleaned
// up now or on reconnect.
func (h *Handler) deleteConnection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identifier := chi.URLParam(r, "identifier")
	contactID := chi.URLParam(r, "contactId")

	if err := h.services.Connections.MarkConnectionPendingDelete(ctx, contactID, identifier); err != nil {
		h.fail(w, r, "*Handler.deleteConnection", err)
		return
	}

	err := h.services.Connections.DeleteConnectionByIDAndIdentifier(ctx, contactID, identifier)
	if queuedOffline(err) {
		writeJSON(w, http.StatusAccepted, queued)
		return
	}
	if err != nil {
		h.fail(w, r, "*Handler.deleteConnection", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
