// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/keri"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/models"
)

const exchangePageSize = 25

// multiSigService drives group inception. Each attempt is queued under the
// group name before anything is sent, then moves through
// submit -> broadcast -> local record -> dequeue. Every step tolerates
// having already happened, so a queued attempt can be re-run after a crash.
type multiSigService struct {
	identifiers   store.IdentifierRepository
	contacts      store.ContactRepository
	basic         store.BasicRepository
	notifications store.NotificationRepository
	operations    OperationService
	witnesses     IdentifierService
	keria         adapter.KeriaAdapter
	events        bus.Emitter
	conn          *Connectivity

	version string
	logger  *logger.Logger
}

func NewMultisigService(
	storages *store.Storages,
	operations OperationService,
	identifiers IdentifierService,
	keria adapter.KeriaAdapter,
	events bus.Emitter,
	conn *Connectivity,
	cfg config.WalletApp,
	logger *logger.Logger,
) MultisigService {
	return &multiSigService{
		identifiers:   storages.Identifiers,
		contacts:      storages.Contacts,
		basic:         storages.Basic,
		notifications: storages.Notifications,
		operations:    operations,
		witnesses:     identifiers,
		keria:         keria,
		events:        events,
		conn:          conn,
		version:       cfg.IdentifierVersion,
		logger:        logger,
	}
}

func (m *multiSigService) CreateGroup(ctx context.Context, req models.CreateGroupRequest, backgroundTask bool) (string, error) {
	log := logger.FromContext(ctx)

	member, err := m.memberMetadata(ctx, req.MemberPrefix)
	if err != nil {
		return "", err
	}
	if member.GroupMetadata == nil {
		return "", ErrMissingGroupMetadata
	}
	if !member.GroupMetadata.GroupInitiator {
		return "", ErrOnlyAllowGroupInitiator
	}

	for _, c := range req.Connections {
		contact, err := m.contacts.Get(ctx, c.ID)
		if errors.Is(err, store.ErrRecordNotFound) {
			return "", ErrOnlyAllowLinkedContacts
		}
		if err != nil {
			return "", fmt.Errorf("get contact %s: %w", c.ID, err)
		}
		if contact.GroupID != member.GroupMetadata.GroupID {
			return "", ErrOnlyAllowLinkedContacts
		}
	}

	name := m.groupName(member)
	entry, queued, err := m.findQueued(ctx, name, member.ID)
	if err != nil {
		return "", err
	}
	if backgroundTask && !queued {
		return "", fmt.Errorf("%w: %s", ErrQueuedGroupDataMissing, name)
	}

	if !queued {
		data, err := m.buildInitiatorInception(ctx, name, member, req)
		if err != nil {
			return "", err
		}

		threshold := req.Threshold
		entry = models.QueuedGroupCreation{
			Name:             name,
			MemberPrefix:     member.ID,
			Data:             data,
			Initiator:        true,
			GroupConnections: req.Connections,
			Threshold:        &threshold,
		}
		if err = m.enqueue(ctx, entry); err != nil {
			return "", err
		}
		log.Info().Str("func", "*multiSigService.CreateGroup").
			Str("group", data.GroupPrefix()).Msg("group inception queued")
	}

	return m.completeInception(ctx, entry, member)
}

func (m *multiSigService) buildInitiatorInception(ctx context.Context, name string, member models.IdentifierMetadata, req models.CreateGroupRequest) (models.GroupInceptionData, error) {
	wits, err := m.witnesses.GetAvailableWitnesses(ctx)
	if err != nil {
		return models.GroupInceptionData{}, err
	}

	prefixes := make([]string, 0, len(req.Connections)+1)
	prefixes = append(prefixes, member.ID)
	for _, c := range req.Connections {
		prefixes = append(prefixes, c.ID)
	}

	return onlineOnly(ctx, m.conn, func(ctx context.Context) (models.GroupInceptionData, error) {
		states, err := m.keria.GetKeyStates(ctx, prefixes)
		if err != nil {
			return models.GroupInceptionData{}, fmt.Errorf("get member key states: %w", err)
		}

		data, err := m.keria.BuildGroupInception(ctx, models.GroupInceptionRequest{
			Name:         name,
			MemberPrefix: member.ID,
			States:       states,
			RStates:      states,
			Isith:        models.Threshold(req.Threshold.Signing),
			Nsith:        models.Threshold(req.Threshold.Rotation),
			Toad:         wits.Toad,
			Wits:         wits.Witnesses,
		})
		if err != nil {
			return models.GroupInceptionData{}, fmt.Errorf("build group inception: %w", err)
		}
		return data, nil
	})
}

func (m *multiSigService) JoinGroup(ctx context.Context, req models.JoinGroupRequest, backgroundTask bool) (string, error) {
	request, err := m.groupRequest(ctx, req.NotificationSaid)
	if err != nil {
		return "", err
	}

	exn := request.Exn
	icp := exn.E.Icp
	if icp == nil {
		return "", fmt.Errorf("%w: no inception embedded in %s", ErrExnMessageNotFound, req.NotificationSaid)
	}

	member, err := m.localMember(ctx, exn.A.Smids)
	if err != nil {
		return "", err
	}
	if member.GroupMetadata == nil {
		return "", ErrMissingGroupMetadata
	}

	name := m.groupName(member)
	entry, queued, err := m.findQueued(ctx, name, member.ID)
	if err != nil {
		return "", err
	}
	if backgroundTask && !queued {
		return "", fmt.Errorf("%w: %s", ErrQueuedGroupDataMissing, name)
	}

	if !queued {
		data, err := m.buildJoinerInception(ctx, name, member, exn)
		if err != nil {
			return "", err
		}

		entry = models.QueuedGroupCreation{
			Name:             name,
			MemberPrefix:     member.ID,
			Data:             data,
			NotificationID:   req.NotificationID,
			NotificationSaid: req.NotificationSaid,
		}
		if err = m.enqueue(ctx, entry); err != nil {
			return "", err
		}
	}

	groupPrefix, err := m.completeInception(ctx, entry, member)
	if err != nil {
		return "", err
	}

	if err = m.consumeNotification(ctx, entry.NotificationID, entry.NotificationSaid); err != nil {
		return "", err
	}
	return groupPrefix, nil
}

// buildJoinerInception rebuilds the initiator's event from the request: the
// thresholds, witnesses and member order are taken from the embedded icp.
// The rebuilt event must incept the group we were invited to.
func (m *multiSigService) buildJoinerInception(ctx context.Context, name string, member models.IdentifierMetadata, exn models.Exn) (models.GroupInceptionData, error) {
	icp := exn.E.Icp
	smids := exn.A.Smids
	rmids := exn.A.Rmids
	if len(rmids) == 0 {
		rmids = smids
	}

	return onlineOnly(ctx, m.conn, func(ctx context.Context) (models.GroupInceptionData, error) {
		states, err := m.keria.GetKeyStates(ctx, smids)
		if err != nil {
			return models.GroupInceptionData{}, fmt.Errorf("get signing member states: %w", err)
		}
		rstates, err := m.keria.GetKeyStates(ctx, rmids)
		if err != nil {
			return models.GroupInceptionData{}, fmt.Errorf("get rotation member states: %w", err)
		}

		data, err := m.keria.BuildGroupInception(ctx, models.GroupInceptionRequest{
			Name:         name,
			MemberPrefix: member.ID,
			States:       states,
			RStates:      rstates,
			Isith:        icp.Kt,
			Nsith:        icp.Nt,
			Toad:         int(icp.Bt),
			Wits:         icp.B,
		})
		if err != nil {
			return models.GroupInceptionData{}, fmt.Errorf("build group inception: %w", err)
		}

		if data.GroupPrefix() != icp.I {
			m.logger.Warn().Str("func", "*multiSigService.buildJoinerInception").
				Str("expected", icp.I).Str("built", data.GroupPrefix()).
				Msg("rebuilt inception differs from the request")
			return models.GroupInceptionData{}, fmt.Errorf("%w: expected %s, built %s", ErrGroupInceptionMismatch, icp.I, data.GroupPrefix())
		}
		return data, nil
	})
}

func (m *multiSigService) consumeNotification(ctx context.Context, id, said string) error {
	if id != "" {
		err := onlineOnlyErr(ctx, m.conn, func(ctx context.Context) error {
			return m.keria.MarkNotification(ctx, id)
		})
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("mark notification: %w", err)
		}

		if err = m.notifications.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("delete notification: %w", err)
		}
		m.events.Emit(ctx, models.Event{
			Type:    models.EventNotificationRemoved,
			Payload: models.NotificationPayload{NotificationID: id},
		})
	}

	if said == "" {
		return nil
	}
	return onlineOnlyErr(ctx, m.conn, func(ctx context.Context) error {
		return m.operations.RemoveByCorrelationID(ctx, said)
	})
}

// completeInception runs the steps after QUEUED. Each step is idempotent.
func (m *multiSigService) completeInception(ctx context.Context, entry models.QueuedGroupCreation, member models.IdentifierMetadata) (string, error) {
	data := entry.Data
	groupPrefix := data.GroupPrefix()

	op, err := m.submit(ctx, data)
	if err != nil {
		return "", err
	}

	if err = m.broadcast(ctx, data); err != nil {
		return "", err
	}

	group, err := m.saveGroupRecord(ctx, entry, member, op)
	if err != nil {
		return "", err
	}

	if !op.Done {
		err = m.operations.Track(ctx, models.PendingOperation{
			ID:            op.Name,
			RecordType:    models.OperationGroup,
			CorrelationID: groupPrefix,
			Metadata:      models.OperationMetadata{Identifier: groupPrefix},
		})
		if err != nil {
			return "", err
		}
	}

	err = store.MutateContent(ctx, m.basic, models.MiscMultisigIdentifiersPendingCreation, func(q *models.MultisigCreationQueue) error {
		q.Remove(entry.Name)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("dequeue group %s: %w", entry.Name, err)
	}

	if group.CreationStatus == models.CreationStatusComplete {
		m.events.Emit(ctx, models.Event{
			Type:    models.EventGroupCreated,
			Payload: models.GroupCreatedPayload{Group: group.ShortDetails()},
		})
	}
	return groupPrefix, nil
}

// submit sends the signed inception. An earlier attempt that already landed
// is detected from the agent's refusal.
func (m *multiSigService) submit(ctx context.Context, data models.GroupInceptionData) (models.Operation, error) {
	return onlineOnly(ctx, m.conn, func(ctx context.Context) (models.Operation, error) {
		op, err := m.keria.SubmitGroupInception(ctx, data)
		if adapter.IsAlreadyIncepted(err) {
			return models.Operation{Name: models.PendingOperationID(models.OperationGroup, data.GroupPrefix())}, nil
		}
		if err != nil {
			return models.Operation{}, fmt.Errorf("submit group inception: %w", err)
		}
		return op, nil
	})
}

// broadcast sends the signed inception to the other members unless our
// member already did so for this group.
func (m *multiSigService) broadcast(ctx context.Context, data models.GroupInceptionData) error {
	return onlineOnlyErr(ctx, m.conn, func(ctx context.Context) error {
		sent, err := m.keria.QueryExchanges(ctx, models.ExchangeQuery{
			Route:   models.RouteMultisigIcp,
			GroupID: data.GroupPrefix(),
			Sender:  data.MemberPrefix,
			Limit:   1,
		})
		if err != nil {
			return fmt.Errorf("query sent inceptions: %w", err)
		}
		if len(sent) > 0 {
			return nil
		}

		recipients := others(data.Smids, data.MemberPrefix)
		if len(recipients) == 0 {
			return nil
		}

		icp := data.Icp
		_, err = m.keria.SendExchange(ctx, models.ExchangeRequest{
			SenderPrefix: data.MemberPrefix,
			Topic:        models.ExchangeTopicMultisig,
			Route:        models.RouteMultisigIcp,
			Payload:      models.ExnAttributes{Gid: data.GroupPrefix(), Smids: data.Smids, Rmids: data.Rmids},
			Embeds:       models.ExnEmbeds{Icp: &icp},
			EmbedSigs:    data.Sigs,
			Recipients:   recipients,
		})
		if err != nil {
			return fmt.Errorf("broadcast group inception: %w", err)
		}
		return nil
	})
}

func (m *multiSigService) saveGroupRecord(ctx context.Context, entry models.QueuedGroupCreation, member models.IdentifierMetadata, op models.Operation) (models.IdentifierMetadata, error) {
	status := models.CreationStatusPending
	if op.Done {
		status = models.CreationStatusComplete
	}

	now := time.Now().UTC()
	group := models.IdentifierMetadata{
		ID:             entry.Data.GroupPrefix(),
		DisplayName:    member.DisplayName,
		Theme:          member.Theme,
		CreationStatus: status,
		GroupMemberPre: member.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := m.identifiers.Save(ctx, group)
	if errors.Is(err, store.ErrRecordAlreadyExists) {
		if group, err = m.identifiers.Get(ctx, group.ID); err != nil {
			return models.IdentifierMetadata{}, fmt.Errorf("get group record: %w", err)
		}
	} else if err != nil {
		return models.IdentifierMetadata{}, fmt.Errorf("save group record: %w", err)
	}

	if member.GroupMetadata != nil && !member.GroupMetadata.GroupCreated {
		member.GroupMetadata.GroupCreated = true
		member.UpdatedAt = now
		if err = m.identifiers.Update(ctx, member); err != nil {
			return models.IdentifierMetadata{}, fmt.Errorf("update member record: %w", err)
		}
	}
	return group, nil
}

// findQueued returns the queued attempt for name. An attempt queued under
// the same name by a different member is an error: resuming it would incept
// that member's group.
func (m *multiSigService) findQueued(ctx context.Context, name, memberPrefix string) (models.QueuedGroupCreation, bool, error) {
	queue, err := store.GetContent[models.MultisigCreationQueue](ctx, m.basic, models.MiscMultisigIdentifiersPendingCreation)
	if err != nil {
		return models.QueuedGroupCreation{}, false, fmt.Errorf("read group queue: %w", err)
	}
	entry, ok := queue.Find(name)
	if ok && entry.MemberPrefix != memberPrefix {
		return models.QueuedGroupCreation{}, false, fmt.Errorf("%w: %s is queued for %s", ErrGroupQueuedForOtherMember, name, entry.MemberPrefix)
	}
	return entry, ok, nil
}

func (m *multiSigService) enqueue(ctx context.Context, entry models.QueuedGroupCreation) error {
	err := store.MutateContent(ctx, m.basic, models.MiscMultisigIdentifiersPendingCreation, func(q *models.MultisigCreationQueue) error {
		q.Put(entry)
		return nil
	})
	if err != nil {
		return fmt.Errorf("queue group %s: %w", entry.Name, err)
	}
	return nil
}

func (m *multiSigService) ProcessGroupsPendingCreation(ctx context.Context) error {
	queue, err := store.GetContent[models.MultisigCreationQueue](ctx, m.basic, models.MiscMultisigIdentifiersPendingCreation)
	if err != nil {
		return fmt.Errorf("read group queue: %w", err)
	}

	for _, entry := range queue.Queued {
		if entry.Initiator {
			req := models.CreateGroupRequest{
				MemberPrefix: entry.MemberPrefix,
				Connections:  entry.GroupConnections,
			}
			if entry.Threshold != nil {
				req.Threshold = *entry.Threshold
			}
			_, err = m.CreateGroup(ctx, req, true)
		} else {
			_, err = m.JoinGroup(ctx, models.JoinGroupRequest{
				NotificationID:   entry.NotificationID,
				NotificationSaid: entry.NotificationSaid,
			}, true)
		}
		if err != nil {
			return fmt.Errorf("resume group %s: %w", entry.Name, err)
		}
	}
	return nil
}

func (m *multiSigService) GetInceptionStatus(ctx context.Context, groupPrefix string) (models.InceptionStatus, error) {
	group, err := m.identifiers.Get(ctx, groupPrefix)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.InceptionStatus{}, ErrIdentifierNotFound
	}
	if err != nil {
		return models.InceptionStatus{}, fmt.Errorf("get group record: %w", err)
	}

	type snapshot struct {
		exns    []models.ExchangeMessage
		members []string
	}
	snap, err := onlineOnly(ctx, m.conn, func(ctx context.Context) (snapshot, error) {
		exns, err := m.inceptionExchanges(ctx, groupPrefix)
		if err != nil {
			return snapshot{}, err
		}
		if len(exns) == 0 {
			return snapshot{}, ErrMultiSigInceptionExchangeMessageNotFound
		}

		members, err := m.keria.GetMembers(ctx, groupPrefix)
		if errors.Is(err, adapter.ErrNotFound) {
			return snapshot{exns: exns, members: exns[0].Exn.A.Smids}, nil
		}
		if err != nil {
			return snapshot{}, fmt.Errorf("get group members: %w", err)
		}
		return snapshot{exns: exns, members: members.SigningAids()}, nil
	})
	if err != nil {
		return models.InceptionStatus{}, err
	}

	accepted := make(map[string]struct{}, len(snap.exns))
	for _, e := range snap.exns {
		accepted[e.Exn.I] = struct{}{}
	}
	// our member's contribution is the inception we submitted
	accepted[group.GroupMemberPre] = struct{}{}

	status := models.InceptionStatus{
		Threshold: models.GroupThreshold{Signing: len(snap.members), Rotation: len(snap.members)},
		Members:   make([]models.MemberStatus, 0, len(snap.members)),
	}
	for _, e := range snap.exns {
		if icp := e.Exn.E.Icp; icp != nil {
			status.Threshold = models.GroupThreshold{Signing: int(icp.Kt), Rotation: int(icp.Nt)}
			break
		}
	}

	for _, aid := range snap.members {
		_, ok := accepted[aid]
		ms := models.MemberStatus{AID: aid, HasAccepted: ok, IsCurrentUser: aid == group.GroupMemberPre}
		if ms.IsCurrentUser {
			ms.Alias = group.DisplayName
		} else if contact, err := m.contacts.Get(ctx, aid); err == nil {
			ms.Alias = contact.Alias
		}
		status.Members = append(status.Members, ms)
	}
	return status, nil
}

// inceptionExchanges pages through every /multisig/icp exchange of the group.
func (m *multiSigService) inceptionExchanges(ctx context.Context, groupPrefix string) ([]models.ExchangeMessage, error) {
	var all []models.ExchangeMessage
	for skip := 0; ; skip += exchangePageSize {
		page, err := m.keria.QueryExchanges(ctx, models.ExchangeQuery{
			Route:   models.RouteMultisigIcp,
			GroupID: groupPrefix,
			Skip:    skip,
			Limit:   exchangePageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("query group exchanges: %w", err)
		}
		all = append(all, page...)
		if len(page) < exchangePageSize {
			return all, nil
		}
	}
}

func (m *multiSigService) GetMultisigIcpDetails(ctx context.Context, notificationSaid string) (models.MultisigIcpDetails, error) {
	request, err := m.groupRequest(ctx, notificationSaid)
	if err != nil {
		return models.MultisigIcpDetails{}, err
	}

	exn := request.Exn
	icp := exn.E.Icp
	if icp == nil {
		return models.MultisigIcpDetails{}, fmt.Errorf("%w: no inception embedded in %s", ErrExnMessageNotFound, notificationSaid)
	}

	sender, err := m.contacts.Get(ctx, exn.I)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.MultisigIcpDetails{}, fmt.Errorf("%w: sender %s", ErrUnknownAidsInMultisigIcp, exn.I)
	}
	if err != nil {
		return models.MultisigIcpDetails{}, fmt.Errorf("get sender contact: %w", err)
	}

	member, err := m.localMember(ctx, exn.A.Smids)
	if err != nil {
		return models.MultisigIcpDetails{}, err
	}

	details := models.MultisigIcpDetails{
		Sender:        models.NewConnectionShortDetails(sender, nil),
		OurIdentifier: member.ShortDetails(),
		Threshold:     models.GroupThreshold{Signing: int(icp.Kt), Rotation: int(icp.Nt)},
	}

	for _, aid := range exn.A.Smids {
		if aid == member.ID || aid == exn.I {
			continue
		}
		contact, err := m.contacts.Get(ctx, aid)
		if errors.Is(err, store.ErrRecordNotFound) {
			return models.MultisigIcpDetails{}, fmt.Errorf("%w: %s", ErrUnknownAidsInMultisigIcp, aid)
		}
		if err != nil {
			return models.MultisigIcpDetails{}, fmt.Errorf("get member contact: %w", err)
		}
		details.OtherConnections = append(details.OtherConnections, models.NewConnectionShortDetails(contact, nil))
	}
	return details, nil
}

// EndRoleAuthorization proposes our agent as an agent end role of the group
// and sends the signed reply to every other signing member.
func (m *multiSigService) EndRoleAuthorization(ctx context.Context, groupPrefix string) error {
	group, err := m.groupRecord(ctx, groupPrefix)
	if err != nil {
		return err
	}

	return onlineOnlyErr(ctx, m.conn, func(ctx context.Context) error {
		res, err := m.keria.AddEndRole(ctx, groupPrefix, models.EndRoleAgent, m.keria.AgentPrefix(), time.Time{})
		if err != nil {
			return fmt.Errorf("add end role: %w", err)
		}
		return m.sendEndRole(ctx, group, res)
	})
}

// JoinAuthorization co-signs an end role reply another member proposed.
func (m *multiSigService) JoinAuthorization(ctx context.Context, requestExn models.Exn) error {
	rpy := requestExn.E.Rpy
	if rpy == nil {
		return fmt.Errorf("%w: no reply embedded in %s", ErrExnMessageNotFound, requestExn.D)
	}

	groupPrefix := requestExn.A.Gid
	if groupPrefix == "" {
		groupPrefix = rpy.A.Cid
	}
	group, err := m.groupRecord(ctx, groupPrefix)
	if err != nil {
		return err
	}

	stamp, err := time.Parse(keri.DateTimeFormat, rpy.Dt)
	if err != nil {
		return fmt.Errorf("%w: bad reply timestamp %q", ErrInvalidDataProvided, rpy.Dt)
	}

	return onlineOnlyErr(ctx, m.conn, func(ctx context.Context) error {
		res, err := m.keria.AddEndRole(ctx, groupPrefix, rpy.A.Role, rpy.A.Eid, stamp)
		if err != nil {
			return fmt.Errorf("add end role: %w", err)
		}
		return m.sendEndRole(ctx, group, res)
	})
}

func (m *multiSigService) sendEndRole(ctx context.Context, group models.IdentifierMetadata, res models.EndRoleResult) error {
	members, err := m.keria.GetMembers(ctx, group.ID)
	if err != nil {
		return fmt.Errorf("get group members: %w", err)
	}

	recipients := others(members.SigningAids(), group.GroupMemberPre)
	if len(recipients) == 0 {
		return nil
	}

	rpy := res.Rpy
	_, err = m.keria.SendExchange(ctx, models.ExchangeRequest{
		SenderPrefix: group.GroupMemberPre,
		Topic:        models.ExchangeTopicMultisig,
		Route:        models.RouteMultisigRpy,
		Payload:      models.ExnAttributes{Gid: group.ID},
		Embeds:       models.ExnEmbeds{Rpy: &rpy},
		EmbedSigs:    res.Sigs,
		Recipients:   recipients,
	})
	if err != nil {
		return fmt.Errorf("send end role: %w", err)
	}
	return nil
}

// groupName is the agent-side name of the group: the member's name without
// its group part.
func (m *multiSigService) groupName(member models.IdentifierMetadata) string {
	return models.IdentifierName{Version: m.version, Theme: member.Theme, DisplayName: member.DisplayName}.String()
}

func (m *multiSigService) memberMetadata(ctx context.Context, prefix string) (models.IdentifierMetadata, error) {
	meta, err := m.identifiers.Get(ctx, prefix)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.IdentifierMetadata{}, ErrIdentifierNotFound
	}
	if err != nil {
		return models.IdentifierMetadata{}, fmt.Errorf("get member identifier: %w", err)
	}
	return meta, nil
}

func (m *multiSigService) groupRecord(ctx context.Context, prefix string) (models.IdentifierMetadata, error) {
	group, err := m.identifiers.Get(ctx, prefix)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.IdentifierMetadata{}, ErrIdentifierNotFound
	}
	if err != nil {
		return models.IdentifierMetadata{}, fmt.Errorf("get group record: %w", err)
	}
	if !group.IsGroup() {
		return models.IdentifierMetadata{}, fmt.Errorf("%w: %s is not a group", ErrMemberAidNotFound, prefix)
	}
	return group, nil
}

// localMember returns the first of smids this wallet controls as a member.
func (m *multiSigService) localMember(ctx context.Context, smids []string) (models.IdentifierMetadata, error) {
	for _, aid := range smids {
		meta, err := m.identifiers.Get(ctx, aid)
		if errors.Is(err, store.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return models.IdentifierMetadata{}, fmt.Errorf("get identifier %s: %w", aid, err)
		}
		if meta.IsGroup() || meta.PendingDeletion {
			continue
		}
		return meta, nil
	}
	return models.IdentifierMetadata{}, ErrMemberAidNotFound
}

func (m *multiSigService) groupRequest(ctx context.Context, said string) (models.GroupRequest, error) {
	requests, err := onlineOnly(ctx, m.conn, func(ctx context.Context) ([]models.GroupRequest, error) {
		return m.keria.GetGroupRequest(ctx, said)
	})
	if errors.Is(err, adapter.ErrNotFound) || (err == nil && len(requests) == 0) {
		return models.GroupRequest{}, fmt.Errorf("%w: %s", ErrExnMessageNotFound, said)
	}
	if err != nil {
		return models.GroupRequest{}, fmt.Errorf("get group request: %w", err)
	}
	return requests[0], nil
}

func others(aids []string, self string) []string {
	out := make([]string, 0, len(aids))
	for _, aid := range aids {
		if aid != self {
			out = append(out, aid)
		}
	}
	return out
}
