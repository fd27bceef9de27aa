package handler

import (
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/handler/http"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, agent http.AgentStatus, buildInfo models.AppBuildInfo, cfg config.WalletServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, agent, buildInfo, cfg, logger),
	}, nil
}
