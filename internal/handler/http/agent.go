package http

import "net/http"

type agentStatusResponse struct {
	Online    bool   `json:"online"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	Commit    string `json:"commit"`
}

func (h *Handler) agentStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, agentStatusResponse{
		Online:    h.agent.IsOnline(),
		Version:   h.buildInfo.BuildVersion(),
		BuildDate: h.buildInfo.BuildDate(),
		Commit:    h.buildInfo.BuildCommit(),
	})
}
