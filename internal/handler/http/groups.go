package http

import (
	"net/http"

	"github.com/MKhiriev/go-keri-wallet/models"
	"github.com/go-chi/chi/v5"
)

type groupCreatedResponse struct {
	Identifier string `json:"identifier"`
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, "*Handler.createGroup", err)
		return
	}

	prefix, err := h.services.Multisig.CreateGroup(r.Context(), req, false)
	if err != nil {
		h.fail(w, r, "*Handler.createGroup", err)
		return
	}
	writeJSON(w, http.StatusCreated, groupCreatedResponse{Identifier: prefix})
}

func (h *Handler) joinGroup(w http.ResponseWriter, r *http.Request) {
	var req models.JoinGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, "*Handler.joinGroup", err)
		return
	}

	prefix, err := h.services.Multisig.JoinGroup(r.Context(), req, false)
	if err != nil {
		h.fail(w, r, "*Handler.joinGroup", err)
		return
	}
	writeJSON(w, http.StatusCreated, groupCreatedResponse{Identifier: prefix})
}

func (h *Handler) groupStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.Multisig.GetInceptionStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "*Handler.groupStatus", err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) groupEndRole(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Multisig.EndRoleAuthorization(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.groupEndRole", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeJoin answers an end-role request exchange forwarded by a member.
func (h *Handler) authorizeJoin(w http.ResponseWriter, r *http.Request) {
	var exn models.Exn
	if err := decodeJSON(r, &exn); err != nil {
		h.fail(w, r, "*Handler.authorizeJoin", err)
		return
	}

	if err := h.services.Multisig.JoinAuthorization(r.Context(), exn); err != nil {
		h.fail(w, r, "*Handler.authorizeJoin", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) processGroups(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Multisig.ProcessGroupsPendingCreation(r.Context()); err != nil {
		h.fail(w, r, "*Handler.processGroups", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
