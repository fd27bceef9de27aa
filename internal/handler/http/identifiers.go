package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/internal/utils"
	"github.com/MKhiriev/go-keri-wallet/models"
	"github.com/go-chi/chi/v5"
)

type updateIdentifierRequest struct {
	DisplayName string `json:"displayName"`
	Theme       int    `json:"theme"`
}

type queuedResponse struct {
	Status string `json:"status"`
}

var queued = queuedResponse{Status: "queued"}

func (h *Handler) listIdentifiers(w http.ResponseWriter, r *http.Request) {
	ids, err := h.services.Identifiers.GetIdentifiers(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.listIdentifiers", err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

// createIdentifier answers 202 when the agent is offline; the queued name is
// incepted by the reconnect sweep.
func (h *Handler) createIdentifier(w http.ResponseWriter, r *http.Request) {
	var inputs models.CreateIdentifierInputs
	if err := decodeJSON(r, &inputs); err != nil {
		h.fail(w, r, "*Handler.createIdentifier", err)
		return
	}

	res, err := h.services.Identifiers.CreateIdentifier(r.Context(), inputs, false)
	if queuedOffline(err) {
		logger.FromRequest(r).Info().Str("name", inputs.DisplayName).Msg("identifier queued until agent is online")
		writeJSON(w, http.StatusAccepted, queued)
		return
	}
	if err != nil {
		h.fail(w, r, "*Handler.createIdentifier", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) getIdentifier(w http.ResponseWriter, r *http.Request) {
	details, err := h.services.Identifiers.GetIdentifier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "*Handler.getIdentifier", err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) updateIdentifier(w http.ResponseWriter, r *http.Request) {
	var req updateIdentifierRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, "*Handler.updateIdentifier", err)
		return
	}

	err := h.services.Identifiers.UpdateIdentifier(r.Context(), chi.URLParam(r, "id"), req.DisplayName, req.Theme)
	if err != nil {
		h.fail(w, r, "*Handler.updateIdentifier", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteIdentifier hides the identifier at once and retires it on the agent
// now or, when offline, on reconnect.
func (h *Handler) deleteIdentifier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.services.Identifiers.MarkIdentifierPendingDelete(ctx, id); err != nil {
		h.fail(w, r, "*Handler.deleteIdentifier", err)
		return
	}

	err := h.services.Identifiers.DeleteIdentifier(ctx, id)
	if queuedOffline(err) {
		writeJSON(w, http.StatusAccepted, queued)
		return
	}
	if err != nil {
		h.fail(w, r, "*Handler.deleteIdentifier", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rotateIdentifier(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Identifiers.RotateIdentifier(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.rotateIdentifier", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// identifierOobi returns the shareable OOBI as text, or as a PNG QR code
// with ?qr=true.
func (h *Handler) identifierOobi(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	q := r.URL.Query()
	params := service.OobiParams{
		Alias:      q.Get("alias"),
		GroupID:    q.Get("groupId"),
		ExternalID: q.Get("externalId"),
	}

	if asQR, _ := strconv.ParseBool(q.Get("qr")); asQR {
		size, _ := strconv.Atoi(q.Get("size"))
		png, err := h.services.Connections.GetOobiQR(ctx, id, params, size)
		if err != nil {
			h.fail(w, r, "*Handler.identifierOobi", err)
			return
		}
		_, _ = utils.WritePNG(w, png, http.StatusOK)
		return
	}

	oobi, err := h.services.Connections.GetOobi(ctx, id, params)
	if err != nil {
		h.fail(w, r, "*Handler.identifierOobi", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(oobi))
}

func (h *Handler) listWitnesses(w http.ResponseWriter, r *http.Request) {
	set, err := h.services.Identifiers.GetAvailableWitnesses(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.listWitnesses", err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}
