// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/internal/validators"
	"github.com/MKhiriev/go-keri-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bobOobi        = "http://keria:3902/oobi/EBob/agent/EAgentB?name=Bob"
	groupInvite    = "http://keria:3902/oobi/EInit/agent/EAgentI?name=Init&groupId=g-1"
	strippedInvite = "http://keria:3902/oobi/EInit/agent/EAgentI?groupId=g-1"
)

// ── ConnectByOobiURL: normal invites ─────────────────────────────────────────

func TestConnectionService_Connect_NormalRequiresSharedIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	_, err := env.connectionSvc().ConnectByOobiURL(context.Background(), bobOobi, "")
	assert.ErrorIs(t, err, ErrNormalConnectionRequiresSharedIdentifier)
}

func TestConnectionService_Connect_NormalUnknownIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	_, err := env.connectionSvc().ConnectByOobiURL(context.Background(), bobOobi, "ENobody")
	assert.ErrorIs(t, err, ErrIdentifierNotFound)
}

func TestConnectionService_Connect_NormalCreatesPendingPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EAlice", DisplayName: "Alice"})

	res, err := env.connectionSvc().ConnectByOobiURL(ctx, bobOobi, "EAlice")
	require.NoError(t, err)

	assert.Equal(t, models.OobiScanNormal, res.Type)
	assert.Equal(t, "EBob", res.Connection.ID)
	assert.Equal(t, "Bob", res.Connection.Label)
	assert.Equal(t, models.ConnectionStatusPending, res.Connection.Status)

	pair, err := env.storages.ConnectionPairs.Get(ctx, "EAlice:EBob")
	require.NoError(t, err)
	assert.Equal(t, models.CreationStatusPending, pair.CreationStatus)

	changed := env.events.OfType(models.EventConnectionStateChanged)
	require.Len(t, changed, 1)
	payload := changed[0].Payload.(models.ConnectionStatePayload)
	assert.Equal(t, bobOobi, payload.URL)
	assert.Equal(t, models.ConnectionStatusPending, payload.Status)
}

// ── ConnectByOobiURL: group invites ──────────────────────────────────────────

func TestConnectionService_Connect_GroupInviteWithoutMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.keria.EXPECT().ResolveOobi(gomock.Any(), strippedInvite, "Init").
		Return(models.Operation{Name: "oobi.1", Done: true, Response: json.RawMessage(`{"i":"EInitResolved"}`)}, nil)
	env.keria.EXPECT().UpdateContact(gomock.Any(), "EInitResolved", map[string]any{models.ContactKeyGroupID: "g-1"}).Return(nil)

	res, err := env.connectionSvc().ConnectByOobiURL(ctx, groupInvite, "")
	require.NoError(t, err)

	assert.Equal(t, models.OobiScanMultiSigInitiator, res.Type)
	assert.Equal(t, "g-1", res.GroupID)
	assert.Equal(t, "EInitResolved", res.Connection.ID)

	contact, err := env.storages.Contacts.Get(ctx, "EInitResolved")
	require.NoError(t, err)
	assert.Equal(t, "g-1", contact.GroupID)
	assert.Equal(t, "Init", contact.Alias)

	changed := env.events.OfType(models.EventConnectionStateChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, models.ConnectionStatusConfirmed, changed[0].Payload.(models.ConnectionStatePayload).Status)
}

func TestConnectionService_Connect_GroupInviteWithExistingMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	env.saveIdentifier(t, models.IdentifierMetadata{
		ID:            "EMember",
		DisplayName:   "Member",
		GroupMetadata: &models.GroupMetadata{GroupID: "g-1"},
	})

	env.keria.EXPECT().ResolveOobi(gomock.Any(), strippedInvite, "Init").
		Return(models.Operation{Name: "oobi.1", Done: true}, nil)
	env.keria.EXPECT().UpdateContact(gomock.Any(), "EInit", gomock.Any()).Return(nil)

	res, err := env.connectionSvc().ConnectByOobiURL(ctx, groupInvite, "")
	require.NoError(t, err)

	assert.Equal(t, models.OobiScanNormal, res.Type)
	assert.Equal(t, "g-1", res.GroupID)
	assert.Equal(t, "EInit", res.Connection.ID)

	_, err = env.storages.Contacts.Get(ctx, "EInit")
	assert.NoError(t, err)
	assert.Empty(t, env.events.OfType(models.EventConnectionStateChanged))
}

func TestConnectionService_Connect_GroupInviteWithSharedIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.keria.EXPECT().ResolveOobi(gomock.Any(), strippedInvite, "Init").
		Return(models.Operation{Name: "oobi.1", Done: true, Response: json.RawMessage(`{"i":"EInit"}`)}, nil)
	env.keria.EXPECT().UpdateContact(gomock.Any(), "EInit", gomock.Any()).Return(nil)

	res, err := env.connectionSvc().ConnectByOobiURL(ctx, groupInvite, "EAlice")
	require.NoError(t, err)
	assert.Equal(t, models.OobiScanMultiSigInitiator, res.Type)
	assert.Equal(t, "EAlice", res.Connection.Identifier)

	pair, err := env.storages.ConnectionPairs.Get(ctx, "EAlice:EInit")
	require.NoError(t, err)
	assert.Equal(t, models.CreationStatusComplete, pair.CreationStatus)
}

func TestConnectionService_Connect_GroupInvitePollsUntilDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	gomock.InOrder(
		env.keria.EXPECT().ResolveOobi(gomock.Any(), strippedInvite, "Init").Return(models.Operation{Name: "oobi.1"}, nil),
		env.keria.EXPECT().GetOperation(gomock.Any(), "oobi.1").Return(models.Operation{Name: "oobi.1"}, nil),
		env.keria.EXPECT().GetOperation(gomock.Any(), "oobi.1").Return(models.Operation{Name: "oobi.1", Done: true}, nil),
	)
	env.keria.EXPECT().UpdateContact(gomock.Any(), "EInit", gomock.Any()).Return(nil)

	_, err := env.connectionSvc().ConnectByOobiURL(context.Background(), groupInvite, "")
	assert.NoError(t, err)
}

func TestConnectionService_Connect_GroupInviteResolveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.keria.EXPECT().ResolveOobi(gomock.Any(), strippedInvite, "Init").Return(models.Operation{
		Name:  "oobi.1",
		Done:  true,
		Error: &models.OperationError{Code: 404, Message: "unreachable"},
	}, nil)

	_, err := env.connectionSvc().ConnectByOobiURL(ctx, groupInvite, "")
	assert.ErrorIs(t, err, ErrFailedToResolveOobi)

	all, err := env.storages.Contacts.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestConnectionService_Connect_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	_, err := env.connectionSvc().ConnectByOobiURL(context.Background(), "http://keria:3902/identifiers", "EAlice")
	assert.ErrorIs(t, err, validators.ErrOobiInvalid)
}

// ── Resolution ───────────────────────────────────────────────────────────────

func TestConnectionService_OnConnectionAdded_StripsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	raw := "http://keria:3902/oobi/EBob/agent/EAgentB?name=Alice%20Smith&externalId=x-1"
	env.keria.EXPECT().ResolveOobi(gomock.Any(), "http://keria:3902/oobi/EBob/agent/EAgentB?externalId=x-1", "Alice Smith").
		Return(models.Operation{Name: "oobi.EBob"}, nil)

	err := env.connectionSvc().OnConnectionAdded(ctx, models.ConnectionStatePayload{
		ConnectionID: "EBob",
		Identifier:   "EAlice",
		Status:       models.ConnectionStatusPending,
		URL:          raw,
	})
	require.NoError(t, err)

	op, err := env.storages.Operations.Get(ctx, "oobi.EBob")
	require.NoError(t, err)
	assert.Equal(t, models.OperationOobi, op.RecordType)
	assert.Equal(t, models.OperationMetadata{ConnectionID: "EBob", Identifier: "EAlice"}, op.Metadata)
}

func TestConnectionService_OnConnectionAdded_IgnoresNonPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	err := env.connectionSvc().OnConnectionAdded(context.Background(), models.ConnectionStatePayload{
		ConnectionID: "EBob",
		Identifier:   "EAlice",
		Status:       models.ConnectionStatusConfirmed,
	})
	assert.NoError(t, err)
}

func TestConnectionService_ResolveOobi_UntitledGetsRandomAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	var alias string
	env.keria.EXPECT().ResolveOobi(gomock.Any(), "http://keria:3902/oobi/EBob/agent/EAgentB", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, a string) (models.Operation, error) {
			alias = a
			return models.Operation{Name: "oobi.2", Done: true}, nil
		})

	op, err := env.connectionSvc().ResolveOobi(context.Background(), "http://keria:3902/oobi/EBob/agent/EAgentB", false)
	require.NoError(t, err)
	assert.True(t, op.Done)
	assert.Len(t, alias, 36)
}

func TestConnectionService_ResolveOobi_BareURLUsesNameAsAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	env.keria.EXPECT().ResolveOobi(gomock.Any(), "http://keria:3902/oobi/ABC", "Alice Smith").
		Return(models.Operation{Name: "oobi.3", Done: true}, nil)

	op, err := env.connectionSvc().ResolveOobi(context.Background(), "http://keria:3902/oobi/ABC?name=Alice%20Smith", false)
	require.NoError(t, err)
	assert.Equal(t, "oobi.3", op.Name)
}

func TestConnectionService_ResolveOobi_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.conn.SetOnline(false)

	_, err := env.connectionSvc().ResolveOobi(context.Background(), bobOobi, false)
	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
}

func TestConnectionService_ResolvePendingConnections(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.saveContact(t, models.Contact{ID: "EBob", Alias: "Bob", Oobi: bobOobi})
	env.saveContact(t, models.Contact{ID: "ECarol", Alias: "Carol", Oobi: "http://keria:3902/oobi/ECarol/agent/EAgentC"})
	env.savePair(t, "EAlice", "EBob", models.CreationStatusPending)
	env.savePair(t, "EAlice", "ECarol", models.CreationStatusPending)
	require.NoError(t, env.storages.Operations.Save(ctx, models.PendingOperation{
		ID:         "oobi.carol",
		RecordType: models.OperationOobi,
		Metadata:   models.OperationMetadata{ConnectionID: "ECarol", Identifier: "EAlice"},
	}))

	env.keria.EXPECT().ResolveOobi(gomock.Any(), "http://keria:3902/oobi/EBob/agent/EAgentB", "Bob").
		Return(models.Operation{Name: "oobi.bob"}, nil)

	require.NoError(t, env.connectionSvc().ResolvePendingConnections(ctx))

	_, err := env.storages.Operations.Get(ctx, "oobi.bob")
	assert.NoError(t, err)
}

// ── Queries ──────────────────────────────────────────────────────────────────

func TestConnectionService_GetConnections(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.saveContact(t, models.Contact{ID: "EBob", Alias: "Bob"})
	env.saveContact(t, models.Contact{ID: "EInit", Alias: "Init", GroupID: "g-1"})
	env.saveContact(t, models.Contact{ID: "EOrphan", Alias: "Orphan"})
	env.savePair(t, "EAlice", "EBob", models.CreationStatusComplete)
	env.savePair(t, "ECarol", "EBob", models.CreationStatusPending)

	list, err := env.connectionSvc().GetConnections(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	byKey := make(map[string]models.ConnectionStatus)
	for _, c := range list {
		byKey[c.Identifier+"|"+c.ID] = c.Status
	}
	assert.Equal(t, models.ConnectionStatusConfirmed, byKey["EAlice|EBob"])
	assert.Equal(t, models.ConnectionStatusPending, byKey["ECarol|EBob"])
	assert.Equal(t, models.ConnectionStatusConfirmed, byKey["|EInit"])
}

func TestConnectionService_GetConnectionShortDetails_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveContact(t, models.Contact{ID: "EBob"})

	_, err := env.connectionSvc().GetConnectionShortDetails(context.Background(), "EMissing", "")
	assert.ErrorIs(t, err, ErrConnectionNotFound)

	_, err = env.connectionSvc().GetConnectionShortDetails(context.Background(), "EBob", "EAlice")
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestConnectionService_GetOobi_AppendsParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EAlice", DisplayName: "Alice"})

	env.keria.EXPECT().GetOobi(gomock.Any(), "EAlice", models.EndRoleAgent).
		Return([]string{"http://keria:3902/oobi/EAlice/agent/EAgent"}, nil)

	raw, err := env.connectionSvc().GetOobi(context.Background(), "EAlice", OobiParams{Alias: "Alice Smith", ExternalID: "x-1"})
	require.NoError(t, err)

	oobi, err := validators.ParseOobi(raw)
	require.NoError(t, err)
	assert.Equal(t, "EAlice", oobi.Prefix)
	assert.Equal(t, "Alice Smith", oobi.Name)
	assert.Equal(t, "x-1", oobi.ExternalID)
	assert.False(t, oobi.IsGroupInvite())
}

func TestConnectionService_GetOobi_GroupPicksAgentURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EAlice"})

	env.keria.EXPECT().GetOobi(gomock.Any(), "EGroup", models.EndRoleAgent).Return([]string{
		"http://keria:3902/oobi/EOther/agent/EAgent",
		"http://keria:3902/oobi/EGroup/agent/EAgent",
	}, nil)

	raw, err := env.connectionSvc().GetOobi(context.Background(), "EGroup", OobiParams{GroupID: "g-1"})
	require.NoError(t, err)
	assert.Equal(t, "http://keria:3902/oobi/EGroup/agent/EAgent?groupId=g-1", raw)
}

func TestConnectionService_GetOobiQR(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EAlice"})

	env.keria.EXPECT().GetOobi(gomock.Any(), "EAlice", models.EndRoleAgent).
		Return([]string{"http://keria:3902/oobi/EAlice/agent/EAgent"}, nil)

	png, err := env.connectionSvc().GetOobiQR(context.Background(), "EAlice", OobiParams{}, 128)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

// ── Deletion ─────────────────────────────────────────────────────────────────

func TestConnectionService_Delete_SharedContactKeepsOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	svc := env.connectionSvc()

	env.saveContact(t, models.Contact{ID: "EBob", Alias: "Bob"})
	env.savePair(t, "EAlice", "EBob", models.CreationStatusComplete)
	env.savePair(t, "ECarol", "EBob", models.CreationStatusComplete)

	env.keria.EXPECT().GetContact(gomock.Any(), "EBob").Return(models.KeriaContact{
		"id":               "EBob",
		"EAlice:createdAt": "2026-01-02T03:04:05Z",
		"ECarol:createdAt": "2026-01-02T03:04:06Z",
	}, nil)
	env.keria.EXPECT().UpdateContact(gomock.Any(), "EBob", map[string]any{"EAlice:createdAt": nil}).Return(nil)

	require.NoError(t, svc.DeleteConnectionByIDAndIdentifier(ctx, "EBob", "EAlice"))

	_, err := env.storages.ConnectionPairs.Get(ctx, "EAlice:EBob")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	_, err = env.storages.ConnectionPairs.Get(ctx, "ECarol:EBob")
	assert.NoError(t, err)
	_, err = env.storages.Contacts.Get(ctx, "EBob")
	assert.NoError(t, err)

	// last pair takes the contact with it
	env.keria.EXPECT().DeleteContact(gomock.Any(), "EBob").Return(nil)
	require.NoError(t, svc.DeleteConnectionByIDAndIdentifier(ctx, "EBob", "ECarol"))

	_, err = env.storages.Contacts.Get(ctx, "EBob")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	assert.Len(t, env.events.OfType(models.EventConnectionRemoved), 2)
}

func TestConnectionService_Delete_OfflineKeepsLocalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	env.conn.SetOnline(false)

	env.saveContact(t, models.Contact{ID: "EBob"})
	env.savePair(t, "EAlice", "EBob", models.CreationStatusComplete)

	err := env.connectionSvc().DeleteConnectionByIDAndIdentifier(ctx, "EBob", "EAlice")
	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)

	_, err = env.storages.ConnectionPairs.Get(ctx, "EAlice:EBob")
	assert.NoError(t, err)
}

func TestConnectionService_Delete_UnknownPairIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	assert.NoError(t, env.connectionSvc().DeleteConnectionByIDAndIdentifier(context.Background(), "EBob", "EAlice"))
	assert.Empty(t, env.events.Events())
}

func TestConnectionService_PendingDeletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	svc := env.connectionSvc()

	env.saveContact(t, models.Contact{ID: "EBob"})
	env.savePair(t, "EAlice", "EBob", models.CreationStatusComplete)

	assert.ErrorIs(t, svc.MarkConnectionPendingDelete(ctx, "EBob", "EMissing"), ErrConnectionNotFound)
	require.NoError(t, svc.MarkConnectionPendingDelete(ctx, "EBob", "EAlice"))

	pending, err := svc.GetConnectionsPendingDeletion(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	list, err := svc.GetConnections(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	env.keria.EXPECT().DeleteContact(gomock.Any(), "EBob").Return(nil)
	require.NoError(t, svc.RemoveConnectionsPendingDeletion(ctx))

	pending, err = svc.GetConnectionsPendingDeletion(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestConnectionService_DeleteAllConnectionsForGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.saveContact(t, models.Contact{ID: "EInit", GroupID: "g-1"})
	env.saveContact(t, models.Contact{ID: "EPeer", GroupID: "g-1"})
	env.saveContact(t, models.Contact{ID: "EBob"})
	env.savePair(t, "EAlice", "EPeer", models.CreationStatusComplete)

	env.keria.EXPECT().DeleteContact(gomock.Any(), "EInit").Return(nil)
	env.keria.EXPECT().DeleteContact(gomock.Any(), "EPeer").Return(nil)

	require.NoError(t, env.connectionSvc().DeleteAllConnectionsForGroup(ctx, "g-1"))

	all, err := env.storages.Contacts.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "EBob", all[0].ID)
}

// ── Reconciliation ───────────────────────────────────────────────────────────

func TestConnectionService_SyncKeriaContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EAlice"})
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "ECarol"})
	env.saveContact(t, models.Contact{ID: "EKnown", Alias: "Known"})

	env.keria.EXPECT().ListContacts(gomock.Any()).Return([]models.KeriaContact{
		{"id": "EKnown", "alias": "Renamed"},
		{"id": "EBob", "alias": "Bob", "oobi": bobOobi, "EAlice:createdAt": "2026-01-02T03:04:05Z"},
		{"id": "EInit", "alias": "Init", "groupCreationId": "g-1"},
		{"alias": "no id"},
	}, nil)

	require.NoError(t, env.connectionSvc().SyncKeriaContacts(ctx))

	bob, err := env.storages.Contacts.Get(ctx, "EBob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", bob.Alias)

	pair, err := env.storages.ConnectionPairs.Get(ctx, "EAlice:EBob")
	require.NoError(t, err)
	assert.Equal(t, models.CreationStatusComplete, pair.CreationStatus)
	assert.True(t, pair.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))

	_, err = env.storages.ConnectionPairs.Get(ctx, "ECarol:EBob")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	group, err := env.storages.Contacts.Get(ctx, "EInit")
	require.NoError(t, err)
	assert.Equal(t, "g-1", group.GroupID)

	known, err := env.storages.Contacts.Get(ctx, "EKnown")
	require.NoError(t, err)
	assert.Equal(t, "Known", known.Alias)
}

func TestConnectionService_SyncKeriaContacts_Unreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	env.keria.EXPECT().ListContacts(gomock.Any()).Return(nil, adapter.ErrNetwork)

	err := env.connectionSvc().SyncKeriaContacts(context.Background())
	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
	assert.False(t, env.conn.IsOnline())
}
