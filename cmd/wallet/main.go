package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/agent"
	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/crypto"
	"github.com/MKhiriev/go-keri-wallet/internal/handler"
	"github.com/MKhiriev/go-keri-wallet/internal/keri"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/server"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/internal/workers"
	"github.com/MKhiriev/go-keri-wallet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// wallet is the assembled process: storage, agent connection and services.
type wallet struct {
	storages *store.Storages
	keria    adapter.KeriaAdapter
	services *service.Services
	agent    *agent.Agent
}

func main() {
	printBuildInfo()

	cfg, err := config.GetWalletConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-keri-wallet").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewWalletLogger("go-keri-wallet", cfg.Log)
	ctx := log.WithContext(context.Background())

	w, err := newWallet(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling wallet")
	}
	defer func() {
		if err := w.storages.Close(); err != nil {
			log.Err(err).Msg("close storages")
		}
	}()

	command := "serve"
	if len(cfg.Args) > 0 {
		command = cfg.Args[0]
	}

	switch command {
	case "serve":
		err = serve(ctx, w, cfg, log)
	case "oobi":
		err = printOobi(ctx, w, cfg.Args[1:], log)
	default:
		err = fmt.Errorf("unknown command %q, expected serve or oobi", command)
	}
	if err != nil {
		log.Err(err).Str("command", command).Msg("wallet command failed")
		os.Exit(1)
	}
}

func newWallet(ctx context.Context, cfg *config.WalletConfig, log *logger.Logger) (*wallet, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	passcode, err := agent.NewPasscodes(storages.Basic, crypto.NewSealer()).Load(ctx, cfg.App)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("load passcode: %w", err)
	}

	client, err := keri.NewClient(passcode)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create keri client: %w", err)
	}

	keria, err := adapter.NewHTTPKeriaAdapter(cfg.Keria, client, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create keria adapter: %w", err)
	}

	events := bus.New()
	services := service.NewServices(storages, keria, events, cfg, log)

	bg, err := workers.NewWalletWorkers(services, cfg.Workers, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create workers: %w", err)
	}

	return &wallet{
		storages: storages,
		keria:    keria,
		services: services,
		agent:    agent.NewAgent(services, keria, events, bg, cfg.Workers, log),
	}, nil
}

// serve runs the agent and the control API until a stop signal.
func serve(ctx context.Context, w *wallet, cfg *config.WalletConfig, log *logger.Logger) error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	handlers, err := handler.NewHandlers(w.services, w.agent, buildInfo, cfg.Server, log)
	if err != nil {
		return err
	}
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return err
	}

	w.agent.Start(ctx)
	defer w.agent.Stop()

	return srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
