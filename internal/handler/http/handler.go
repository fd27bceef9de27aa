package http

import (
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/models"
)

// AgentStatus reports whether the wallet is connected to its cloud agent.
type AgentStatus interface {
	IsOnline() bool
}

type Handler struct {
	services  *service.Services
	agent     AgentStatus
	buildInfo models.AppBuildInfo
	apiToken  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, agent AgentStatus, buildInfo models.AppBuildInfo, cfg config.WalletServer, logger *logger.Logger) *Handler {
	logger.Info().Bool("token_auth", cfg.APIToken != "").Msg("http handler created")
	return &Handler{
		services:  services,
		agent:     agent,
		buildInfo: buildInfo,
		apiToken:  cfg.APIToken,
		logger:    logger,
	}
}
