package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/internal/utils"
)

type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	_, _ = utils.WriteJSON(w, v, status)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, errInvalidJSON, err)
	}
	return nil
}

// fail logs err and answers with the status mapped from it. 5xx bodies carry
// the status text only.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", fn).Int("status", status).Send()

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	writeJSON(w, status, errorResponse{Error: msg, TraceID: traceID})
}

// queuedOffline reports whether err only means the agent is unreachable for
// an action whose intent is already stored and retried on reconnect.
func queuedOffline(err error) bool {
	return errors.Is(err, service.ErrKeriaConnectionBroken)
}
