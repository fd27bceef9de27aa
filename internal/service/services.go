package service

import (
	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
)

// Services is the wallet's service graph, built once at startup in
// dependency order: operations, connections, identifiers, multisig.
type Services struct {
	Connectivity *Connectivity

	Operations  OperationService
	Connections ConnectionService
	Identifiers IdentifierService
	Multisig    MultisigService
	Credentials CredentialService
	Migrations  MigrationService
}

func NewServices(storages *store.Storages, keria adapter.KeriaAdapter, events bus.Emitter, cfg *config.WalletConfig, logger *logger.Logger) *Services {
	conn := NewConnectivity()

	operations := NewOperationService(storages, keria, events, conn, logger)
	connections := NewConnectionValidationService().Wrap(
		NewConnectionService(storages, operations, keria, events, conn, cfg.Keria, logger),
	)
	identifiers := NewIdentifierValidationService().Wrap(
		NewIdentifierService(storages, connections, operations, keria, events, conn, cfg.App, logger),
	)
	multisig := NewMultisigValidationService().Wrap(
		NewMultisigService(storages, operations, identifiers, keria, events, conn, cfg.App, logger),
	)

	return &Services{
		Connectivity: conn,
		Operations:   operations,
		Connections:  connections,
		Identifiers:  identifiers,
		Multisig:     multisig,
		Credentials:  NewCredentialService(storages.Credentials, keria, conn, logger),
		Migrations:   NewMigrationService(storages, keria, conn, logger),
	}
}
