// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
)

// Storages groups every wallet repository into a single value that is
// passed to the service layer.
type Storages struct {
	Identifiers     IdentifierRepository
	Contacts        ContactRepository
	ConnectionPairs ConnectionPairRepository
	Operations      OperationPendingRepository
	Basic           BasicRepository
	Notifications   NotificationRepository
	Credentials     CredentialRepository

	db *DB
}

// NewStorages initialises the storage layer. A ":memory:" (or empty) DSN
// yields the in-memory repositories; otherwise it:
//  1. opens the SQLite file at cfg.DB.DSN, creating it if needed;
//  2. runs pending schema migrations via [DB.Migrate];
//  3. wires every SQL repository to the shared handle.
func NewStorages(ctx context.Context, cfg config.WalletStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	if isMemoryDSN(cfg.DB.DSN) {
		log.Warn().Msg("using in-memory storages, wallet state will not survive a restart")
		return NewMemoryStorages(), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages wires the SQLite repositories to db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Identifiers:     NewIdentifierRepository(db, log),
		Contacts:        NewContactRepository(db, log),
		ConnectionPairs: NewConnectionPairRepository(db, log),
		Operations:      NewOperationPendingRepository(db, log),
		Basic:           NewBasicRepository(db, log),
		Notifications:   NewNotificationRepository(db, log),
		Credentials:     NewCredentialRepository(db, log),
		db:              db,
	}
}

// NewMemoryStorages returns in-memory repositories.
func NewMemoryStorages() *Storages {
	return &Storages{
		Identifiers:     NewMemoryIdentifierRepository(),
		Contacts:        NewMemoryContactRepository(),
		ConnectionPairs: NewMemoryConnectionPairRepository(),
		Operations:      NewMemoryOperationPendingRepository(),
		Basic:           NewMemoryBasicRepository(),
		Notifications:   NewMemoryNotificationRepository(),
		Credentials:     NewMemoryCredentialRepository(),
	}
}

// Close releases the database handle, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
