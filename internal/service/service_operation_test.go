package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Track ────────────────────────────────────────────────────────────────────

func TestOperationService_Track_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	op := models.PendingOperation{ID: "witness.EAlice", RecordType: models.OperationWitness}
	require.NoError(t, svc.Track(ctx, op))
	require.NoError(t, svc.Track(ctx, op))

	all, err := env.storages.Operations.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].CreatedAt.IsZero())
}

// ── ProcessPendingOperations ─────────────────────────────────────────────────

func TestOperationService_Process_WitnessCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EAlice", DisplayName: "Alice", CreationStatus: models.CreationStatusPending})
	require.NoError(t, svc.Track(ctx, models.PendingOperation{
		ID:            "witness.EAlice",
		RecordType:    models.OperationWitness,
		CorrelationID: "EAlice",
		Metadata:      models.OperationMetadata{Identifier: "EAlice"},
	}))

	env.keria.EXPECT().GetOperation(gomock.Any(), "witness.EAlice").
		Return(models.Operation{Name: "witness.EAlice", Done: true}, nil)
	env.keria.EXPECT().DeleteOperation(gomock.Any(), "witness.EAlice").Return(nil)

	require.NoError(t, svc.ProcessPendingOperations(ctx))

	meta, err := env.storages.Identifiers.Get(ctx, "EAlice")
	require.NoError(t, err)
	assert.Equal(t, models.CreationStatusComplete, meta.CreationStatus)

	all, err := env.storages.Operations.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Len(t, env.events.OfType(models.EventOperationCompleted), 1)
}

func TestOperationService_Process_NotDoneIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "oobi.1", RecordType: models.OperationOobi}))
	env.keria.EXPECT().GetOperation(gomock.Any(), "oobi.1").Return(models.Operation{Name: "oobi.1"}, nil)

	require.NoError(t, svc.ProcessPendingOperations(ctx))

	all, err := env.storages.Operations.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Empty(t, env.events.Events())
}

func TestOperationService_Process_OobiConfirmsPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	env.saveContact(t, models.Contact{ID: "EBob", Alias: "Bob"})
	env.savePair(t, "EAlice", "EBob", models.CreationStatusPending)
	require.NoError(t, svc.Track(ctx, models.PendingOperation{
		ID:            "oobi.7",
		RecordType:    models.OperationOobi,
		CorrelationID: "EBob",
		Metadata:      models.OperationMetadata{ConnectionID: "EBob", Identifier: "EAlice"},
	}))

	env.keria.EXPECT().GetOperation(gomock.Any(), "oobi.7").Return(models.Operation{Name: "oobi.7", Done: true}, nil)
	env.keria.EXPECT().UpdateContact(gomock.Any(), "EBob", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
			raw, ok := fields["EAlice:createdAt"].(string)
			require.True(t, ok)
			_, err := time.Parse(time.RFC3339Nano, raw)
			assert.NoError(t, err)
			return nil
		})
	env.keria.EXPECT().DeleteOperation(gomock.Any(), "oobi.7").Return(adapter.ErrNotFound)

	require.NoError(t, svc.ProcessPendingOperations(ctx))

	pair, err := env.storages.ConnectionPairs.Get(ctx, "EAlice:EBob")
	require.NoError(t, err)
	assert.Equal(t, models.CreationStatusComplete, pair.CreationStatus)

	changed := env.events.OfType(models.EventConnectionStateChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, models.ConnectionStatusConfirmed, changed[0].Payload.(models.ConnectionStatePayload).Status)
}

func TestOperationService_Process_FailureMarksIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EAlice", CreationStatus: models.CreationStatusPending})
	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "group.EGroup", RecordType: models.OperationGroup, CorrelationID: "EGroup"}))

	env.keria.EXPECT().GetOperation(gomock.Any(), "group.EGroup").Return(models.Operation{
		Name:  "group.EGroup",
		Done:  true,
		Error: &models.OperationError{Code: 500, Message: "witness receipts missing"},
	}, nil)
	env.keria.EXPECT().DeleteOperation(gomock.Any(), "group.EGroup").Return(nil)

	require.NoError(t, svc.ProcessPendingOperations(ctx))

	meta, err := env.storages.Identifiers.Get(ctx, "EGroup")
	require.NoError(t, err)
	assert.Equal(t, models.CreationStatusFailed, meta.CreationStatus)

	failed := env.events.OfType(models.EventOperationFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "witness receipts missing", failed[0].Payload.(models.OperationPayload).Error)
	assert.Empty(t, env.events.OfType(models.EventGroupCreated))
}

func TestOperationService_Process_GroupCompletionAnnouncesGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EAlice", CreationStatus: models.CreationStatusPending})
	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "group.EGroup", RecordType: models.OperationGroup, CorrelationID: "EGroup"}))

	env.keria.EXPECT().GetOperation(gomock.Any(), "group.EGroup").Return(models.Operation{Name: "group.EGroup", Done: true}, nil)
	env.keria.EXPECT().DeleteOperation(gomock.Any(), "group.EGroup").Return(nil)

	require.NoError(t, svc.ProcessPendingOperations(ctx))

	created := env.events.OfType(models.EventGroupCreated)
	require.Len(t, created, 1)
	assert.Equal(t, "EGroup", created[0].Payload.(models.GroupCreatedPayload).Group.ID)
	assert.Equal(t, models.CreationStatusComplete, created[0].Payload.(models.GroupCreatedPayload).Group.CreationStatus)
}

func TestOperationService_Process_UnknownRemoteIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "witness.EGone", RecordType: models.OperationWitness}))
	env.keria.EXPECT().GetOperation(gomock.Any(), "witness.EGone").Return(models.Operation{}, adapter.ErrNotFound)

	require.NoError(t, svc.ProcessPendingOperations(ctx))

	_, err := env.storages.Operations.Get(ctx, "witness.EGone")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestOperationService_Process_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.conn.SetOnline(false)

	err := env.operationSvc().ProcessPendingOperations(context.Background())
	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
}

func TestOperationService_Process_NetworkFailureGoesOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "oobi.1", RecordType: models.OperationOobi}))
	env.keria.EXPECT().GetOperation(gomock.Any(), "oobi.1").Return(models.Operation{}, adapter.ErrNetwork)

	err := svc.ProcessPendingOperations(ctx)
	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
	assert.False(t, env.conn.IsOnline())
}

// ── RemoveByCorrelationID ────────────────────────────────────────────────────

func TestOperationService_RemoveByCorrelationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.operationSvc()
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "exchange.receivecredential.ESaid", RecordType: models.OperationExchangeReceiveCredential}))
	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "oobi.9", RecordType: models.OperationOobi, CorrelationID: "ESaid"}))
	require.NoError(t, svc.Track(ctx, models.PendingOperation{ID: "oobi.10", RecordType: models.OperationOobi, CorrelationID: "EOther"}))

	env.keria.EXPECT().DeleteOperation(gomock.Any(), "exchange.receivecredential.ESaid").Return(nil)
	env.keria.EXPECT().DeleteOperation(gomock.Any(), "oobi.9").Return(adapter.ErrNotFound)

	require.NoError(t, svc.RemoveByCorrelationID(ctx, "ESaid"))

	all, err := env.storages.Operations.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "oobi.10", all[0].ID)
}
