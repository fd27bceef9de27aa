package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/api/agent/status", h.agentStatus)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/identifiers", func(r chi.Router) {
			r.Get("/", h.listIdentifiers)
			r.Post("/", h.createIdentifier)
			r.Get("/{id}", h.getIdentifier)
			r.Patch("/{id}", h.updateIdentifier)
			r.Delete("/{id}", h.deleteIdentifier)
			r.Post("/{id}/rotate", h.rotateIdentifier)
			r.Get("/{id}/oobi", h.identifierOobi)
		})
		r.Get("/api/witnesses", h.listWitnesses)

		r.Get("/api/connections", h.listConnections)
		r.Post("/api/connections/oobi", h.connectByOobi)
		r.Delete("/api/connections/{identifier}/{contactId}", h.deleteConnection)

		r.Route("/api/groups", func(r chi.Router) {
			r.Post("/", h.createGroup)
			r.Post("/join", h.joinGroup)
			r.Post("/authorize", h.authorizeJoin)
			r.Post("/process", h.processGroups)
			r.Get("/{id}/status", h.groupStatus)
			r.Post("/{id}/endrole", h.groupEndRole)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
