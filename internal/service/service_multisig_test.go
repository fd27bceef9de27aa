// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// flakyIdentifiers fails the first failSaves saves of group records.
type flakyIdentifiers struct {
	store.IdentifierRepository
	failSaves int
}

func (f *flakyIdentifiers) Save(ctx context.Context, m models.IdentifierMetadata) error {
	if f.failSaves > 0 && m.IsGroup() {
		f.failSaves--
		return errors.New("disk I/O error")
	}
	return f.IdentifierRepository.Save(ctx, m)
}

var groupSmids = []string{"EAlice", "EBob", "ECarol"}

// seedInitiator stores Alice as the initiating member of g-1 and Bob and
// Carol as contacts linked to the same ceremony.
func seedInitiator(t *testing.T, env *testEnv) models.CreateGroupRequest {
	t.Helper()
	env.saveIdentifier(t, models.IdentifierMetadata{
		ID:            "EAlice",
		DisplayName:   "Alice",
		GroupMetadata: &models.GroupMetadata{GroupID: "g-1", GroupInitiator: true},
	})
	env.saveContact(t, models.Contact{ID: "EBob", Alias: "Bob", GroupID: "g-1"})
	env.saveContact(t, models.Contact{ID: "ECarol", Alias: "Carol", GroupID: "g-1"})

	return models.CreateGroupRequest{
		MemberPrefix: "EAlice",
		Connections:  []models.ConnectionShortDetails{{ID: "EBob"}, {ID: "ECarol"}},
		Threshold:    models.GroupThreshold{Signing: 2, Rotation: 2},
	}
}

func inceptionData(member string) models.GroupInceptionData {
	return models.GroupInceptionData{
		Name:         "1.2.0.3:0:Alice",
		MemberPrefix: member,
		Icp:          models.InceptionEvent{T: "icp", I: "EGroup", D: "EGroup", Kt: 2, Nt: 2},
		Sigs:         []string{"AAsig"},
		Smids:        groupSmids,
		Rmids:        groupSmids,
	}
}

func expectInitiatorBuild(env *testEnv) {
	env.keria.EXPECT().GetConfig(gomock.Any()).Return(models.AgentConfig{Iurls: witnessIurls(6)}, nil)
	env.keria.EXPECT().GetKeyStates(gomock.Any(), groupSmids).Return([]models.KeyState{{I: "EAlice"}, {I: "EBob"}, {I: "ECarol"}}, nil)
	env.keria.EXPECT().BuildGroupInception(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.GroupInceptionRequest) (models.GroupInceptionData, error) {
			if req.Name != "1.2.0.3:0:Alice" || req.MemberPrefix != "EAlice" {
				return models.GroupInceptionData{}, fmt.Errorf("unexpected request %+v", req)
			}
			if req.Isith != 2 || req.Nsith != 2 || req.Toad != 4 || len(req.Wits) != 6 {
				return models.GroupInceptionData{}, fmt.Errorf("unexpected thresholds %+v", req)
			}
			return inceptionData("EAlice"), nil
		})
}

func sentInception() models.ExchangeMessage {
	return models.ExchangeMessage{Exn: models.Exn{D: "EExn", I: "EAlice", R: models.RouteMultisigIcp}}
}

// ── Validation ───────────────────────────────────────────────────────────────

func TestMultisigValidation_Thresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := NewMultisigValidationService().Wrap(env.multisigSvc())
	ctx := context.Background()

	req := models.CreateGroupRequest{
		MemberPrefix: "EAlice",
		Connections:  []models.ConnectionShortDetails{{ID: "EBob"}, {ID: "ECarol"}},
	}

	for _, th := range []models.GroupThreshold{{Signing: 0, Rotation: 1}, {Signing: 4, Rotation: 1}, {Signing: 1, Rotation: 0}, {Signing: 1, Rotation: 4}} {
		req.Threshold = th
		_, err := svc.CreateGroup(ctx, req, false)
		assert.ErrorIs(t, err, ErrInvalidThreshold, "%+v", th)
	}

	// in range: passes validation and fails on the unknown member
	req.Threshold = models.GroupThreshold{Signing: 3, Rotation: 1}
	_, err := svc.CreateGroup(ctx, req, false)
	assert.ErrorIs(t, err, ErrIdentifierNotFound)
}

func TestMultisigValidation_Requests(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := NewMultisigValidationService().Wrap(env.multisigSvc())

	_, err := svc.CreateGroup(context.Background(), models.CreateGroupRequest{Threshold: models.GroupThreshold{Signing: 1, Rotation: 1}}, false)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.JoinGroup(context.Background(), models.JoinGroupRequest{NotificationID: "n-1"}, false)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── CreateGroup ──────────────────────────────────────────────────────────────

func TestMultisigService_CreateGroup_MemberChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	svc := env.multisigSvc()

	env.saveIdentifier(t, models.IdentifierMetadata{ID: "ESolo"})
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EJoiner", GroupMetadata: &models.GroupMetadata{GroupID: "g-1"}})
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EInit", GroupMetadata: &models.GroupMetadata{GroupID: "g-1", GroupInitiator: true}})
	env.saveContact(t, models.Contact{ID: "EStranger"})

	_, err := svc.CreateGroup(ctx, models.CreateGroupRequest{MemberPrefix: "EMissing"}, false)
	assert.ErrorIs(t, err, ErrIdentifierNotFound)

	_, err = svc.CreateGroup(ctx, models.CreateGroupRequest{MemberPrefix: "ESolo"}, false)
	assert.ErrorIs(t, err, ErrMissingGroupMetadata)

	_, err = svc.CreateGroup(ctx, models.CreateGroupRequest{MemberPrefix: "EJoiner"}, false)
	assert.ErrorIs(t, err, ErrOnlyAllowGroupInitiator)

	_, err = svc.CreateGroup(ctx, models.CreateGroupRequest{
		MemberPrefix: "EInit",
		Connections:  []models.ConnectionShortDetails{{ID: "EStranger"}},
	}, false)
	assert.ErrorIs(t, err, ErrOnlyAllowLinkedContacts)

	_, err = svc.CreateGroup(ctx, models.CreateGroupRequest{
		MemberPrefix: "EInit",
		Connections:  []models.ConnectionShortDetails{{ID: "EUnknown"}},
	}, false)
	assert.ErrorIs(t, err, ErrOnlyAllowLinkedContacts)
}

func TestMultisigService_CreateGroup_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	req := seedInitiator(t, env)

	expectInitiatorBuild(env)
	env.keria.EXPECT().SubmitGroupInception(gomock.Any(), inceptionData("EAlice")).Return(models.Operation{Name: "group.EGroup"}, nil)
	env.keria.EXPECT().QueryExchanges(gomock.Any(), models.ExchangeQuery{
		Route: models.RouteMultisigIcp, GroupID: "EGroup", Sender: "EAlice", Limit: 1,
	}).Return(nil, nil)
	env.keria.EXPECT().SendExchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ex models.ExchangeRequest) (models.ExchangeMessage, error) {
			assert.Equal(t, "EAlice", ex.SenderPrefix)
			assert.Equal(t, models.RouteMultisigIcp, ex.Route)
			assert.Equal(t, []string{"EBob", "ECarol"}, ex.Recipients)
			assert.Equal(t, "EGroup", ex.Payload.Gid)
			require.NotNil(t, ex.Embeds.Icp)
			assert.Equal(t, []string{"AAsig"}, ex.EmbedSigs)
			return sentInception(), nil
		})

	prefix, err := env.multisigSvc().CreateGroup(ctx, req, false)
	require.NoError(t, err)
	assert.Equal(t, "EGroup", prefix)

	group, err := env.storages.Identifiers.Get(ctx, "EGroup")
	require.NoError(t, err)
	assert.Equal(t, "EAlice", group.GroupMemberPre)
	assert.Equal(t, "Alice", group.DisplayName)
	assert.Equal(t, models.CreationStatusPending, group.CreationStatus)

	member, err := env.storages.Identifiers.Get(ctx, "EAlice")
	require.NoError(t, err)
	assert.True(t, member.GroupMetadata.GroupCreated)

	op, err := env.storages.Operations.Get(ctx, "group.EGroup")
	require.NoError(t, err)
	assert.Equal(t, models.OperationGroup, op.RecordType)

	queue, err := store.GetContent[models.MultisigCreationQueue](ctx, env.storages.Basic, models.MiscMultisigIdentifiersPendingCreation)
	require.NoError(t, err)
	assert.Empty(t, queue.Queued)

	assert.Empty(t, env.events.OfType(models.EventGroupCreated))
}

func TestMultisigService_CreateGroup_RetryConverges(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	req := seedInitiator(t, env)

	env.storages.Identifiers = &flakyIdentifiers{IdentifierRepository: env.storages.Identifiers, failSaves: 1}
	svc := env.multisigSvc()

	expectInitiatorBuild(env)
	alreadyIncepted := fmt.Errorf("%w: identifier EGroup already incepted", adapter.ErrBadRequest)
	env.keria.EXPECT().SubmitGroupInception(gomock.Any(), gomock.Any()).Return(models.Operation{Name: "group.EGroup"}, nil).Times(1)
	env.keria.EXPECT().SubmitGroupInception(gomock.Any(), gomock.Any()).Return(models.Operation{}, alreadyIncepted).Times(1)
	env.keria.EXPECT().QueryExchanges(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	env.keria.EXPECT().QueryExchanges(gomock.Any(), gomock.Any()).Return([]models.ExchangeMessage{sentInception()}, nil).Times(1)
	env.keria.EXPECT().SendExchange(gomock.Any(), gomock.Any()).Return(sentInception(), nil).Times(1)

	_, err := svc.CreateGroup(ctx, req, false)
	require.Error(t, err)

	queue, err := store.GetContent[models.MultisigCreationQueue](ctx, env.storages.Basic, models.MiscMultisigIdentifiersPendingCreation)
	require.NoError(t, err)
	require.Len(t, queue.Queued, 1)
	assert.Equal(t, "1.2.0.3:0:Alice", queue.Queued[0].Name)
	assert.True(t, queue.Queued[0].Initiator)

	// resumed in the background on reconnect
	require.NoError(t, svc.ProcessGroupsPendingCreation(ctx))

	group, err := env.storages.Identifiers.Get(ctx, "EGroup")
	require.NoError(t, err)
	assert.Equal(t, "EAlice", group.GroupMemberPre)

	groups, err := env.storages.Identifiers.Find(ctx, models.IdentifierFilter{})
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_, err = env.storages.Operations.Get(ctx, "group.EGroup")
	assert.NoError(t, err)

	queue, err = store.GetContent[models.MultisigCreationQueue](ctx, env.storages.Basic, models.MiscMultisigIdentifiersPendingCreation)
	require.NoError(t, err)
	assert.Empty(t, queue.Queued)
}

func queueAttempt(t *testing.T, env *testEnv, entry models.QueuedGroupCreation) {
	t.Helper()
	err := store.MutateContent(context.Background(), env.storages.Basic, models.MiscMultisigIdentifiersPendingCreation, func(q *models.MultisigCreationQueue) error {
		q.Put(entry)
		return nil
	})
	require.NoError(t, err)
}

func TestMultisigService_CreateGroup_NameQueuedForOtherMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	seedInitiator(t, env)

	// Alice's g-1 attempt is still queued
	queueAttempt(t, env, models.QueuedGroupCreation{
		Name:         "1.2.0.3:0:Alice",
		MemberPrefix: "EAlice",
		Data:         inceptionData("EAlice"),
		Initiator:    true,
	})

	// a second member with the same display name starts g-2
	env.saveIdentifier(t, models.IdentifierMetadata{
		ID:            "EAlice2",
		DisplayName:   "Alice",
		GroupMetadata: &models.GroupMetadata{GroupID: "g-2", GroupInitiator: true},
	})
	env.saveContact(t, models.Contact{ID: "EDan", Alias: "Dan", GroupID: "g-2"})

	_, err := env.multisigSvc().CreateGroup(ctx, models.CreateGroupRequest{
		MemberPrefix: "EAlice2",
		Connections:  []models.ConnectionShortDetails{{ID: "EDan"}},
		Threshold:    models.GroupThreshold{Signing: 1, Rotation: 1},
	}, false)
	assert.ErrorIs(t, err, ErrGroupQueuedForOtherMember)

	_, err = env.storages.Identifiers.Get(ctx, "EGroup")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	member, err := env.storages.Identifiers.Get(ctx, "EAlice2")
	require.NoError(t, err)
	assert.False(t, member.GroupMetadata.GroupCreated)

	queue, err := store.GetContent[models.MultisigCreationQueue](ctx, env.storages.Basic, models.MiscMultisigIdentifiersPendingCreation)
	require.NoError(t, err)
	require.Len(t, queue.Queued, 1)
	assert.Equal(t, "EAlice", queue.Queued[0].MemberPrefix)
}

func TestMultisigService_CreateGroup_BackgroundWithoutQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	req := seedInitiator(t, env)

	_, err := env.multisigSvc().CreateGroup(context.Background(), req, true)
	assert.ErrorIs(t, err, ErrQueuedGroupDataMissing)
}

func TestMultisigService_CreateGroup_CompletedEmitsGroupCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	req := seedInitiator(t, env)

	expectInitiatorBuild(env)
	env.keria.EXPECT().SubmitGroupInception(gomock.Any(), gomock.Any()).Return(models.Operation{Name: "group.EGroup", Done: true}, nil)
	env.keria.EXPECT().QueryExchanges(gomock.Any(), gomock.Any()).Return(nil, nil)
	env.keria.EXPECT().SendExchange(gomock.Any(), gomock.Any()).Return(sentInception(), nil)

	_, err := env.multisigSvc().CreateGroup(ctx, req, false)
	require.NoError(t, err)

	created := env.events.OfType(models.EventGroupCreated)
	require.Len(t, created, 1)
	assert.Equal(t, "EGroup", created[0].Payload.(models.GroupCreatedPayload).Group.ID)

	all, err := env.storages.Operations.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// ── JoinGroup ────────────────────────────────────────────────────────────────

func joinRequest() models.GroupRequest {
	return models.GroupRequest{Exn: models.Exn{
		D: "ESaid",
		I: "EAlice",
		R: models.RouteMultisigIcp,
		A: models.ExnAttributes{Gid: "EGroup", Smids: groupSmids},
		E: models.ExnEmbeds{Icp: &models.InceptionEvent{I: "EGroup", Kt: 2, Nt: 3, Bt: 5, B: witnessPrefixes(7)}},
	}}
}

// seedJoiner stores Bob as a joining member of g-1 with the inception
// request notification and an exchange operation linked to it.
func seedJoiner(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EBob", DisplayName: "Bob", GroupMetadata: &models.GroupMetadata{GroupID: "g-1"}})
	require.NoError(t, env.storages.Notifications.Save(ctx, models.Notification{ID: "n-1", Route: models.RouteMultisigIcp, Said: "ESaid"}))
	require.NoError(t, env.storages.Operations.Save(ctx, models.PendingOperation{
		ID:         "exchange.receivecredential.ESaid",
		RecordType: models.OperationExchangeReceiveCredential,
	}))
}

func expectJoinerBuild(t *testing.T, env *testEnv, built models.GroupInceptionData) {
	env.keria.EXPECT().GetGroupRequest(gomock.Any(), "ESaid").Return([]models.GroupRequest{joinRequest()}, nil)
	env.keria.EXPECT().GetKeyStates(gomock.Any(), groupSmids).Return([]models.KeyState{{I: "EAlice"}, {I: "EBob"}, {I: "ECarol"}}, nil).Times(2)
	env.keria.EXPECT().BuildGroupInception(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.GroupInceptionRequest) (models.GroupInceptionData, error) {
			assert.Equal(t, "1.2.0.3:0:Bob", req.Name)
			assert.Equal(t, "EBob", req.MemberPrefix)
			assert.Equal(t, models.Threshold(2), req.Isith)
			assert.Equal(t, models.Threshold(3), req.Nsith)
			assert.Equal(t, 5, req.Toad)
			assert.Equal(t, witnessPrefixes(7), req.Wits)
			return built, nil
		})
}

func expectJoinerBroadcast(t *testing.T, env *testEnv) {
	env.keria.EXPECT().SubmitGroupInception(gomock.Any(), gomock.Any()).Return(models.Operation{Name: "group.EGroup", Done: true}, nil)
	env.keria.EXPECT().QueryExchanges(gomock.Any(), models.ExchangeQuery{
		Route: models.RouteMultisigIcp, GroupID: "EGroup", Sender: "EBob", Limit: 1,
	}).Return(nil, nil)
	env.keria.EXPECT().SendExchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ex models.ExchangeRequest) (models.ExchangeMessage, error) {
			assert.Equal(t, []string{"EAlice", "ECarol"}, ex.Recipients)
			return models.ExchangeMessage{}, nil
		})
}

func TestMultisigService_JoinGroup_UsesRequestThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	seedJoiner(t, env)

	expectJoinerBuild(t, env, inceptionData("EBob"))
	expectJoinerBroadcast(t, env)
	env.keria.EXPECT().MarkNotification(gomock.Any(), "n-1").Return(nil)
	env.keria.EXPECT().DeleteOperation(gomock.Any(), "exchange.receivecredential.ESaid").Return(nil)

	prefix, err := env.multisigSvc().JoinGroup(ctx, models.JoinGroupRequest{NotificationID: "n-1", NotificationSaid: "ESaid"}, false)
	require.NoError(t, err)
	assert.Equal(t, "EGroup", prefix)

	group, err := env.storages.Identifiers.Get(ctx, "EGroup")
	require.NoError(t, err)
	assert.Equal(t, models.CreationStatusComplete, group.CreationStatus)
	assert.Equal(t, "EBob", group.GroupMemberPre)

	_, err = env.storages.Notifications.Get(ctx, "n-1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	_, err = env.storages.Operations.Get(ctx, "exchange.receivecredential.ESaid")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	assert.Len(t, env.events.OfType(models.EventGroupCreated), 1)
	assert.Len(t, env.events.OfType(models.EventNotificationRemoved), 1)
}

func TestMultisigService_JoinGroup_NotificationAlreadyGoneRemotely(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	seedJoiner(t, env)

	expectJoinerBuild(t, env, inceptionData("EBob"))
	expectJoinerBroadcast(t, env)
	env.keria.EXPECT().MarkNotification(gomock.Any(), "n-1").Return(adapter.ErrNotFound)
	env.keria.EXPECT().DeleteOperation(gomock.Any(), "exchange.receivecredential.ESaid").Return(adapter.ErrNotFound)

	prefix, err := env.multisigSvc().JoinGroup(ctx, models.JoinGroupRequest{NotificationID: "n-1", NotificationSaid: "ESaid"}, false)
	require.NoError(t, err)
	assert.Equal(t, "EGroup", prefix)

	_, err = env.storages.Notifications.Get(ctx, "n-1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	all, err := env.storages.Operations.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMultisigService_JoinGroup_RejectsDifferentGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	seedJoiner(t, env)

	other := inceptionData("EBob")
	other.Icp.I, other.Icp.D = "EOtherGroup", "EOtherGroup"
	expectJoinerBuild(t, env, other)

	_, err := env.multisigSvc().JoinGroup(ctx, models.JoinGroupRequest{NotificationID: "n-1", NotificationSaid: "ESaid"}, false)
	assert.ErrorIs(t, err, ErrGroupInceptionMismatch)

	_, err = env.storages.Identifiers.Get(ctx, "EOtherGroup")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	queue, err := store.GetContent[models.MultisigCreationQueue](ctx, env.storages.Basic, models.MiscMultisigIdentifiersPendingCreation)
	require.NoError(t, err)
	assert.Empty(t, queue.Queued)

	_, err = env.storages.Notifications.Get(ctx, "n-1")
	assert.NoError(t, err)
}

func TestMultisigService_JoinGroup_NameQueuedForOtherMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	seedJoiner(t, env)
	queueAttempt(t, env, models.QueuedGroupCreation{Name: "1.2.0.3:0:Bob", MemberPrefix: "EBobOld", Data: inceptionData("EBobOld")})

	env.keria.EXPECT().GetGroupRequest(gomock.Any(), "ESaid").Return([]models.GroupRequest{joinRequest()}, nil)

	_, err := env.multisigSvc().JoinGroup(ctx, models.JoinGroupRequest{NotificationID: "n-1", NotificationSaid: "ESaid"}, false)
	assert.ErrorIs(t, err, ErrGroupQueuedForOtherMember)
}

func TestMultisigService_JoinGroup_RequestMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.multisigSvc()
	req := models.JoinGroupRequest{NotificationID: "n-1", NotificationSaid: "ESaid"}

	env.keria.EXPECT().GetGroupRequest(gomock.Any(), "ESaid").Return(nil, adapter.ErrNotFound)
	_, err := svc.JoinGroup(context.Background(), req, false)
	assert.ErrorIs(t, err, ErrExnMessageNotFound)

	env.keria.EXPECT().GetGroupRequest(gomock.Any(), "ESaid").Return([]models.GroupRequest{}, nil)
	_, err = svc.JoinGroup(context.Background(), req, false)
	assert.ErrorIs(t, err, ErrExnMessageNotFound)
}

func TestMultisigService_JoinGroup_NoLocalMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)

	env.keria.EXPECT().GetGroupRequest(gomock.Any(), "ESaid").Return([]models.GroupRequest{joinRequest()}, nil)

	_, err := env.multisigSvc().JoinGroup(context.Background(), models.JoinGroupRequest{NotificationID: "n-1", NotificationSaid: "ESaid"}, false)
	assert.ErrorIs(t, err, ErrMemberAidNotFound)
}

func TestMultisigService_JoinGroup_BackgroundWithoutQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EBob", DisplayName: "Bob", GroupMetadata: &models.GroupMetadata{GroupID: "g-1"}})

	env.keria.EXPECT().GetGroupRequest(gomock.Any(), "ESaid").Return([]models.GroupRequest{joinRequest()}, nil)

	_, err := env.multisigSvc().JoinGroup(context.Background(), models.JoinGroupRequest{NotificationID: "n-1", NotificationSaid: "ESaid"}, true)
	assert.ErrorIs(t, err, ErrQueuedGroupDataMissing)
}

// ── Introspection ────────────────────────────────────────────────────────────

func TestMultisigService_GetInceptionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()

	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", DisplayName: "Team", GroupMemberPre: "EAlice"})
	env.saveContact(t, models.Contact{ID: "EBob", Alias: "Bob"})
	env.saveContact(t, models.Contact{ID: "ECarol", Alias: "Carol"})

	env.keria.EXPECT().QueryExchanges(gomock.Any(), models.ExchangeQuery{
		Route: models.RouteMultisigIcp, GroupID: "EGroup", Skip: 0, Limit: exchangePageSize,
	}).Return([]models.ExchangeMessage{
		{Exn: models.Exn{I: "EBob", A: models.ExnAttributes{Smids: groupSmids}}},
		{Exn: models.Exn{I: "EAlice", E: models.ExnEmbeds{Icp: &models.InceptionEvent{Kt: 2, Nt: 1}}}},
	}, nil)
	env.keria.EXPECT().GetMembers(gomock.Any(), "EGroup").Return(models.GroupMembers{
		Signing: []models.GroupMember{{Aid: "EAlice"}, {Aid: "EBob"}, {Aid: "ECarol"}},
	}, nil)

	status, err := env.multisigSvc().GetInceptionStatus(ctx, "EGroup")
	require.NoError(t, err)

	assert.Equal(t, models.GroupThreshold{Signing: 2, Rotation: 1}, status.Threshold)
	assert.Equal(t, []models.MemberStatus{
		{AID: "EAlice", Alias: "Team", HasAccepted: true, IsCurrentUser: true},
		{AID: "EBob", Alias: "Bob", HasAccepted: true},
		{AID: "ECarol", Alias: "Carol", HasAccepted: false},
	}, status.Members)
}

func TestMultisigService_GetInceptionStatus_PagesAndFallsBackToSmids(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EAlice"})

	full := make([]models.ExchangeMessage, exchangePageSize)
	for i := range full {
		full[i] = models.ExchangeMessage{Exn: models.Exn{I: "EAlice", A: models.ExnAttributes{Smids: []string{"EAlice", "EBob"}}}}
	}
	gomock.InOrder(
		env.keria.EXPECT().QueryExchanges(gomock.Any(), models.ExchangeQuery{
			Route: models.RouteMultisigIcp, GroupID: "EGroup", Skip: 0, Limit: exchangePageSize,
		}).Return(full, nil),
		env.keria.EXPECT().QueryExchanges(gomock.Any(), models.ExchangeQuery{
			Route: models.RouteMultisigIcp, GroupID: "EGroup", Skip: exchangePageSize, Limit: exchangePageSize,
		}).Return(nil, nil),
	)
	env.keria.EXPECT().GetMembers(gomock.Any(), "EGroup").Return(models.GroupMembers{}, adapter.ErrNotFound)

	status, err := env.multisigSvc().GetInceptionStatus(context.Background(), "EGroup")
	require.NoError(t, err)
	require.Len(t, status.Members, 2)
	assert.False(t, status.Members[1].HasAccepted)
	assert.Equal(t, models.GroupThreshold{Signing: 2, Rotation: 2}, status.Threshold)
}

func TestMultisigService_GetInceptionStatus_NoExchanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.multisigSvc()
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EAlice"})

	_, err := svc.GetInceptionStatus(context.Background(), "EMissing")
	assert.ErrorIs(t, err, ErrIdentifierNotFound)

	env.keria.EXPECT().QueryExchanges(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = svc.GetInceptionStatus(context.Background(), "EGroup")
	assert.ErrorIs(t, err, ErrMultiSigInceptionExchangeMessageNotFound)
}

func TestMultisigService_GetMultisigIcpDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	ctx := context.Background()
	svc := env.multisigSvc()

	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EBob", DisplayName: "Bob", GroupMetadata: &models.GroupMetadata{GroupID: "g-1"}})
	env.saveContact(t, models.Contact{ID: "EAlice", Alias: "Alice"})

	env.keria.EXPECT().GetGroupRequest(gomock.Any(), "ESaid").Return([]models.GroupRequest{joinRequest()}, nil).Times(2)

	_, err := svc.GetMultisigIcpDetails(ctx, "ESaid")
	assert.ErrorIs(t, err, ErrUnknownAidsInMultisigIcp)

	env.saveContact(t, models.Contact{ID: "ECarol", Alias: "Carol"})
	details, err := svc.GetMultisigIcpDetails(ctx, "ESaid")
	require.NoError(t, err)

	assert.Equal(t, "EAlice", details.Sender.ID)
	assert.Equal(t, "EBob", details.OurIdentifier.ID)
	require.Len(t, details.OtherConnections, 1)
	assert.Equal(t, "Carol", details.OtherConnections[0].Label)
	assert.Equal(t, models.GroupThreshold{Signing: 2, Rotation: 3}, details.Threshold)
}

// ── End roles ────────────────────────────────────────────────────────────────

func TestMultisigService_EndRoleAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EAlice"})

	rpy := models.ReplyEvent{T: "rpy", D: "ERpy", R: "/end/role/add", A: models.EndRoleAttributes{Cid: "EGroup", Role: "agent", Eid: "EAgent"}}
	env.keria.EXPECT().AgentPrefix().Return("EAgent")
	env.keria.EXPECT().AddEndRole(gomock.Any(), "EGroup", models.EndRoleAgent, "EAgent", time.Time{}).
		Return(models.EndRoleResult{Rpy: rpy, Sigs: []string{"AAsig"}}, nil)
	env.keria.EXPECT().GetMembers(gomock.Any(), "EGroup").Return(models.GroupMembers{
		Signing: []models.GroupMember{{Aid: "EAlice"}, {Aid: "EBob"}},
	}, nil)
	env.keria.EXPECT().SendExchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ex models.ExchangeRequest) (models.ExchangeMessage, error) {
			assert.Equal(t, models.RouteMultisigRpy, ex.Route)
			assert.Equal(t, "EAlice", ex.SenderPrefix)
			assert.Equal(t, []string{"EBob"}, ex.Recipients)
			require.NotNil(t, ex.Embeds.Rpy)
			assert.Equal(t, "ERpy", ex.Embeds.Rpy.D)
			return models.ExchangeMessage{}, nil
		})

	assert.NoError(t, env.multisigSvc().EndRoleAuthorization(context.Background(), "EGroup"))
}

func TestMultisigService_EndRoleAuthorization_NotAGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EAlice"})

	err := env.multisigSvc().EndRoleAuthorization(context.Background(), "EAlice")
	assert.ErrorIs(t, err, ErrMemberAidNotFound)
}

func TestMultisigService_JoinAuthorization_ReusesTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EBob"})

	exn := models.Exn{
		D: "EReq",
		I: "EAlice",
		R: models.RouteMultisigRpy,
		A: models.ExnAttributes{Gid: "EGroup"},
		E: models.ExnEmbeds{Rpy: &models.ReplyEvent{
			Dt: "2026-01-02T03:04:05.123456+00:00",
			A:  models.EndRoleAttributes{Cid: "EGroup", Role: "agent", Eid: "EAgentAlice"},
		}},
	}
	want := time.Date(2026, 1, 2, 3, 4, 5, 123456000, time.UTC)

	env.keria.EXPECT().AddEndRole(gomock.Any(), "EGroup", "agent", "EAgentAlice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, stamp time.Time) (models.EndRoleResult, error) {
			assert.True(t, stamp.Equal(want), stamp.String())
			return models.EndRoleResult{Rpy: *exn.E.Rpy}, nil
		})
	env.keria.EXPECT().GetMembers(gomock.Any(), "EGroup").Return(models.GroupMembers{
		Signing: []models.GroupMember{{Aid: "EAlice"}, {Aid: "EBob"}},
	}, nil)
	env.keria.EXPECT().SendExchange(gomock.Any(), gomock.Any()).Return(models.ExchangeMessage{}, nil)

	assert.NoError(t, env.multisigSvc().JoinAuthorization(context.Background(), exn))
}

func TestMultisigService_JoinAuthorization_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, ctrl)
	svc := env.multisigSvc()
	env.saveIdentifier(t, models.IdentifierMetadata{ID: "EGroup", GroupMemberPre: "EBob"})

	err := svc.JoinAuthorization(context.Background(), models.Exn{D: "EReq"})
	assert.ErrorIs(t, err, ErrExnMessageNotFound)

	err = svc.JoinAuthorization(context.Background(), models.Exn{
		A: models.ExnAttributes{Gid: "EGroup"},
		E: models.ExnEmbeds{Rpy: &models.ReplyEvent{Dt: "yesterday"}},
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
