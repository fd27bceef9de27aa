package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/models"
)

type migrationStep struct {
	version int
	name    string
	run     func(ctx context.Context) error
}

// migrationService brings agent-side data written by older wallet versions
// up to date. The last applied version is kept under
// MiscCloudMigrationVersion.
type migrationService struct {
	basic store.BasicRepository
	pairs store.ConnectionPairRepository
	keria adapter.KeriaAdapter
	conn  *Connectivity
	steps []migrationStep

	logger *logger.Logger
}

func NewMigrationService(storages *store.Storages, keria adapter.KeriaAdapter, conn *Connectivity, logger *logger.Logger) MigrationService {
	m := &migrationService{
		basic:  storages.Basic,
		pairs:  storages.ConnectionPairs,
		keria:  keria,
		conn:   conn,
		logger: logger,
	}
	m.steps = []migrationStep{
		{version: 1, name: "backfill contact pairing fields", run: m.backfillContactPairs},
	}
	return m
}

func (m *migrationService) RunMigrations(ctx context.Context) error {
	state, err := store.GetContent[models.CloudMigrationState](ctx, m.basic, models.MiscCloudMigrationVersion)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	for _, step := range m.steps {
		if step.version <= state.Version {
			continue
		}

		if err = step.run(ctx); err != nil {
			return fmt.Errorf("migration %d (%s): %w", step.version, step.name, err)
		}

		state.Version = step.version
		if err = store.PutContent(ctx, m.basic, models.MiscCloudMigrationVersion, state); err != nil {
			return fmt.Errorf("save migration version: %w", err)
		}
		m.logger.Info().Str("func", "*migrationService.RunMigrations").
			Int("version", step.version).Msg("cloud migration applied")
	}
	return nil
}

// backfillContactPairs writes "{identifier}:createdAt" on the agent contact
// of every confirmed pair so other devices can rebuild the pairing.
func (m *migrationService) backfillContactPairs(ctx context.Context) error {
	pairs, err := m.pairs.Find(ctx, models.ConnectionPairFilter{CreationStatus: models.CreationStatusComplete})
	if err != nil {
		return fmt.Errorf("list confirmed pairs: %w", err)
	}

	return onlineOnlyErr(ctx, m.conn, func(ctx context.Context) error {
		for _, p := range pairs {
			field := models.ContactFieldKey(p.Identifier, models.ContactFieldCreatedAt)
			err := m.keria.UpdateContact(ctx, p.ContactID, map[string]any{
				field: p.CreatedAt.UTC().Format(time.RFC3339Nano),
			})
			if errors.Is(err, adapter.ErrNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("tag contact %s: %w", p.ContactID, err)
			}
		}
		return nil
	})
}
