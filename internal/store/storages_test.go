// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/models"
)

// both implementations must satisfy the same contract
func storagesUnderTest(t *testing.T) map[string]*Storages {
	t.Helper()

	sqlStorages, err := NewStorages(context.Background(), config.WalletStorage{
		DB: config.WalletDB{DSN: filepath.Join(t.TempDir(), "wallet.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlStorages.Close() })

	return map[string]*Storages{
		"sqlite": sqlStorages,
		"memory": NewMemoryStorages(),
	}
}

func TestStorages_IdentifierContract(t *testing.T) {
	for name, s := range storagesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			now := time.Now().UTC().Truncate(time.Second)

			member := models.IdentifierMetadata{
				ID:             "EMember",
				DisplayName:    "Board",
				CreationStatus: models.CreationStatusPending,
				GroupMetadata:  &models.GroupMetadata{GroupID: "g-1", GroupInitiator: true},
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			require.NoError(t, s.Identifiers.Save(ctx, member))
			assert.ErrorIs(t, s.Identifiers.Save(ctx, member), ErrRecordAlreadyExists)

			member.GroupMetadata.GroupCreated = true
			require.NoError(t, s.Identifiers.Update(ctx, member))

			found, err := s.Identifiers.Find(ctx, models.IdentifierFilter{GroupID: "g-1"})
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.True(t, found[0].GroupMetadata.GroupCreated)

			require.NoError(t, s.Identifiers.Delete(ctx, "EMember"))
			_, err = s.Identifiers.Get(ctx, "EMember")
			assert.ErrorIs(t, err, ErrRecordNotFound)
		})
	}
}

func TestStorages_ConnectionPairFilter(t *testing.T) {
	for name, s := range storagesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			now := time.Now().UTC()

			for _, identifier := range []string{"EA", "EB"} {
				require.NoError(t, s.ConnectionPairs.Save(ctx, models.ConnectionPair{
					ID:             models.ConnectionPairID(identifier, "EC"),
					ContactID:      "EC",
					Identifier:     identifier,
					CreationStatus: models.CreationStatusComplete,
					CreatedAt:      now,
				}))
			}

			pairs, err := s.ConnectionPairs.Find(ctx, models.ConnectionPairFilter{ContactID: "EC"})
			require.NoError(t, err)
			assert.Len(t, pairs, 2)

			pairs, err = s.ConnectionPairs.Find(ctx, models.ConnectionPairFilter{Identifier: "EB"})
			require.NoError(t, err)
			require.Len(t, pairs, 1)
			assert.Equal(t, "EB:EC", pairs[0].ID)
		})
	}
}

func TestStorages_OperationCorrelation(t *testing.T) {
	for name, s := range storagesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Operations.Save(ctx, models.PendingOperation{ID: "exchange.receivecredential.ESaid", RecordType: models.OperationExchangeReceiveCredential}))
			require.NoError(t, s.Operations.Save(ctx, models.PendingOperation{ID: "op-x", RecordType: models.OperationExchangeOfferCredential, CorrelationID: "ESaid"}))
			require.NoError(t, s.Operations.Save(ctx, models.PendingOperation{ID: "witness.EOther", RecordType: models.OperationWitness}))

			err := s.Operations.Save(ctx, models.PendingOperation{ID: "witness.EOther", RecordType: models.OperationWitness})
			assert.ErrorIs(t, err, ErrRecordAlreadyExists)

			linked, err := s.Operations.FindByCorrelationID(ctx, "ESaid")
			require.NoError(t, err)
			assert.Len(t, linked, 2)
		})
	}
}

func TestStorages_BasicMutateIsAtomic(t *testing.T) {
	for name, s := range storagesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			const writers = 20

			var wg sync.WaitGroup
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					err := MutateContent(ctx, s.Basic, models.MiscMultisigIdentifiersPendingCreation, func(q *models.MultisigCreationQueue) error {
						q.Put(models.QueuedGroupCreation{Name: fmt.Sprintf("1.0:0:group-%d", i)})
						return nil
					})
					assert.NoError(t, err)
				}(i)
			}
			wg.Wait()

			queue, err := GetContent[models.MultisigCreationQueue](ctx, s.Basic, models.MiscMultisigIdentifiersPendingCreation)
			require.NoError(t, err)
			assert.Len(t, queue.Queued, writers)
		})
	}
}

func TestGetContent_MissingRecordIsZero(t *testing.T) {
	queue, err := GetContent[models.IdentifierCreationQueue](context.Background(), NewMemoryBasicRepository(), models.MiscIdentifiersPendingCreation)
	require.NoError(t, err)
	assert.Empty(t, queue.QueuedDisplayNames)
}
