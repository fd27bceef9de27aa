package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/internal/utils"
	"github.com/MKhiriev/go-keri-wallet/models"
)

const (
	minWitnesses = 6
	maxWitnesses = 12
)

type identifierService struct {
	identifiers store.IdentifierRepository
	basic       store.BasicRepository
	connections ConnectionService
	operations  OperationService
	keria       adapter.KeriaAdapter
	events      bus.Emitter
	conn        *Connectivity

	version string
	logger  *logger.Logger
}

func NewIdentifierService(
	storages *store.Storages,
	connections ConnectionService,
	operations OperationService,
	keria adapter.KeriaAdapter,
	events bus.Emitter,
	conn *Connectivity,
	cfg config.WalletApp,
	logger *logger.Logger,
) IdentifierService {
	return &identifierService{
		identifiers: storages.Identifiers,
		basic:       storages.Basic,
		connections: connections,
		operations:  operations,
		keria:       keria,
		events:      events,
		conn:        conn,
		version:     cfg.IdentifierVersion,
		logger:      logger,
	}
}

func (s *identifierService) GetIdentifiers(ctx context.Context) ([]models.IdentifierShortDetails, error) {
	no := false
	records, err := s.identifiers.Find(ctx, models.IdentifierFilter{IsDeleted: &no, PendingDeletion: &no})
	if err != nil {
		return nil, fmt.Errorf("list identifiers: %w", err)
	}

	result := make([]models.IdentifierShortDetails, 0, len(records))
	for _, r := range records {
		result = append(result, r.ShortDetails())
	}
	return result, nil
}

func (s *identifierService) GetIdentifier(ctx context.Context, id string) (models.IdentifierDetails, error) {
	meta, err := s.getMetadata(ctx, id)
	if err != nil {
		return models.IdentifierDetails{}, err
	}
	if meta.CreationStatus == models.CreationStatusPending {
		return models.IdentifierDetails{}, ErrIdentifierIsPending
	}

	return onlineOnly(ctx, s.conn, func(ctx context.Context) (models.IdentifierDetails, error) {
		hab, err := s.keria.GetIdentifier(ctx, id)
		if errors.Is(err, adapter.ErrNotFound) {
			return models.IdentifierDetails{}, fmt.Errorf("%w: identifier %s", ErrMissingDataOnKeria, id)
		}
		if err != nil {
			return models.IdentifierDetails{}, fmt.Errorf("get remote identifier: %w", err)
		}

		details := models.IdentifierDetails{
			IdentifierShortDetails: meta.ShortDetails(),
			SequenceNumber:         hab.State.S,
			Signing:                hab.State.Kt,
			Keys:                   hab.State.K,
			NextSigning:            hab.State.Nt,
			NextKeys:               hab.State.N,
			Toad:                   hab.State.Bt,
			Witnesses:              hab.State.B,
		}

		if meta.IsGroup() {
			members, err := s.keria.GetMembers(ctx, id)
			if err != nil {
				return models.IdentifierDetails{}, fmt.Errorf("get group members: %w", err)
			}
			details.Members = members.SigningAids()
		}
		return details, nil
	})
}

func (s *identifierService) getMetadata(ctx context.Context, id string) (models.IdentifierMetadata, error) {
	meta, err := s.identifiers.Get(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.IdentifierMetadata{}, ErrIdentifierNotFound
	}
	if err != nil {
		return models.IdentifierMetadata{}, fmt.Errorf("get identifier %s: %w", id, err)
	}
	return meta, nil
}

// GetAvailableWitnesses deduplicates the agent's witness introduction URLs
// by witness prefix, keeps at most twelve and derives the receipt threshold.
func (s *identifierService) GetAvailableWitnesses(ctx context.Context) (models.WitnessSet, error) {
	cfg, err := onlineOnly(ctx, s.conn, s.keria.GetConfig)
	if err != nil {
		return models.WitnessSet{}, err
	}
	return witnessesFromConfig(cfg)
}

func witnessesFromConfig(cfg models.AgentConfig) (models.WitnessSet, error) {
	if len(cfg.Iurls) == 0 {
		return models.WitnessSet{}, ErrMisconfiguredAgentConfiguration
	}

	seen := make(map[string]struct{}, len(cfg.Iurls))
	witnesses := make([]string, 0, maxWitnesses)
	for _, iurl := range cfg.Iurls {
		prefix, ok := witnessPrefix(iurl)
		if !ok {
			continue
		}
		if _, dup := seen[prefix]; dup {
			continue
		}
		seen[prefix] = struct{}{}
		witnesses = append(witnesses, prefix)
		if len(witnesses) == maxWitnesses {
			break
		}
	}

	if len(witnesses) == 0 {
		return models.WitnessSet{}, ErrMisconfiguredAgentConfiguration
	}
	if len(witnesses) < minWitnesses {
		return models.WitnessSet{}, fmt.Errorf("%w: %d configured", ErrInsufficientWitnessesAvailable, len(witnesses))
	}

	return models.WitnessSet{Toad: witnessToad(len(witnesses)), Witnesses: witnesses}, nil
}

// witnessPrefix extracts the prefix following "/oobi/" in an introduction URL.
func witnessPrefix(iurl string) (string, bool) {
	_, rest, ok := strings.Cut(iurl, "/oobi/")
	if !ok {
		return "", false
	}
	prefix, _, _ := strings.Cut(rest, "/")
	prefix, _, _ = strings.Cut(prefix, "?")
	return prefix, prefix != ""
}

// witnessToad is the receipt threshold for n witnesses (6 <= n <= 12).
func witnessToad(n int) int {
	switch {
	case n <= 6:
		return 4
	case n == 7:
		return 5
	case n == 8:
		return 6
	case n <= 10:
		return 7
	default:
		return 8
	}
}

func (s *identifierService) CreateIdentifier(ctx context.Context, inputs models.CreateIdentifierInputs, skipNameQueue bool) (models.CreateIdentifierResult, error) {
	name := s.identifierName(inputs.DisplayName, inputs.Theme, inputs.GroupMetadata)

	if !skipNameQueue {
		err := store.MutateContent(ctx, s.basic, models.MiscIdentifiersPendingCreation, func(q *models.IdentifierCreationQueue) error {
			q.Add(name.String())
			return nil
		})
		if err != nil {
			return models.CreateIdentifierResult{}, fmt.Errorf("queue identifier name: %w", err)
		}
	}

	return s.createNamed(ctx, name)
}

func (s *identifierService) identifierName(displayName string, theme int, group *models.GroupMetadata) models.IdentifierName {
	name := models.IdentifierName{Version: s.version, Theme: theme, DisplayName: displayName}
	if group != nil {
		name.Group = &models.GroupNameMetadata{GroupID: group.GroupID, GroupInitiator: group.GroupInitiator}
	}
	return name
}

// createNamed incepts the identifier and dequeues its name. An identifier
// the agent already holds under the same name is adopted.
func (s *identifierService) createNamed(ctx context.Context, name models.IdentifierName) (models.CreateIdentifierResult, error) {
	raw := name.String()

	type created struct {
		prefix string
		op     models.Operation
	}
	res, err := onlineOnly(ctx, s.conn, func(ctx context.Context) (created, error) {
		wits, err := s.GetAvailableWitnesses(ctx)
		if err != nil {
			return created{}, err
		}

		prefix, op, err := s.keria.CreateIdentifier(ctx, raw, wits)
		if adapter.IsAlreadyIncepted(err) {
			prefix, err = s.findRemoteByName(ctx, raw)
			op = models.Operation{Name: models.PendingOperationID(models.OperationWitness, prefix), Done: true}
		}
		if err != nil {
			return created{}, fmt.Errorf("create remote identifier: %w", err)
		}
		return created{prefix: prefix, op: op}, nil
	})
	if err != nil {
		return models.CreateIdentifierResult{}, err
	}

	status := models.CreationStatusPending
	if res.op.Done {
		status = models.CreationStatusComplete
	}

	now := time.Now().UTC()
	meta := models.IdentifierMetadata{
		ID:             res.prefix,
		DisplayName:    name.DisplayName,
		Theme:          name.Theme,
		CreationStatus: status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if name.Group != nil {
		meta.GroupMetadata = &models.GroupMetadata{GroupID: name.Group.GroupID, GroupInitiator: name.Group.GroupInitiator}
	}

	err = s.identifiers.Save(ctx, meta)
	if errors.Is(err, store.ErrRecordAlreadyExists) {
		if meta, err = s.identifiers.Get(ctx, res.prefix); err != nil {
			return models.CreateIdentifierResult{}, fmt.Errorf("get identifier: %w", err)
		}
	} else if err != nil {
		return models.CreateIdentifierResult{}, fmt.Errorf("save identifier: %w", err)
	}

	if !res.op.Done {
		err = s.operations.Track(ctx, models.PendingOperation{
			ID:            res.op.Name,
			RecordType:    models.OperationWitness,
			CorrelationID: res.prefix,
			Metadata:      models.OperationMetadata{Identifier: res.prefix},
		})
		if err != nil {
			return models.CreateIdentifierResult{}, err
		}
	}

	err = store.MutateContent(ctx, s.basic, models.MiscIdentifiersPendingCreation, func(q *models.IdentifierCreationQueue) error {
		q.Remove(raw)
		return nil
	})
	if err != nil {
		return models.CreateIdentifierResult{}, fmt.Errorf("dequeue identifier name: %w", err)
	}

	s.events.Emit(ctx, models.Event{
		Type:    models.EventIdentifierAdded,
		Payload: models.IdentifierPayload{Identifier: meta.ShortDetails()},
	})

	return models.CreateIdentifierResult{
		Identifier:     meta.ID,
		CreationStatus: meta.CreationStatus,
		CreatedAt:      meta.CreatedAt,
	}, nil
}

func (s *identifierService) findRemoteByName(ctx context.Context, name string) (string, error) {
	habs, err := s.keria.ListIdentifiers(ctx)
	if err != nil {
		return "", err
	}
	for _, hab := range habs {
		if hab.Name == name {
			return hab.Prefix, nil
		}
	}
	return "", fmt.Errorf("%w: identifier named %q", ErrMissingDataOnKeria, name)
}

func (s *identifierService) ProcessIdentifiersPendingCreation(ctx context.Context) error {
	queue, err := store.GetContent[models.IdentifierCreationQueue](ctx, s.basic, models.MiscIdentifiersPendingCreation)
	if err != nil {
		return fmt.Errorf("read identifier queue: %w", err)
	}

	for _, raw := range queue.QueuedDisplayNames {
		name, err := models.ParseIdentifierName(raw)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "*identifierService.ProcessIdentifiersPendingCreation").
				Str("name", raw).Msg("dropping unparsable queued name")
			dropErr := store.MutateContent(ctx, s.basic, models.MiscIdentifiersPendingCreation, func(q *models.IdentifierCreationQueue) error {
				q.Remove(raw)
				return nil
			})
			if dropErr != nil {
				return fmt.Errorf("dequeue identifier name: %w", dropErr)
			}
			continue
		}

		if _, err = s.createNamed(ctx, name); err != nil {
			return fmt.Errorf("create queued identifier %q: %w", raw, err)
		}
	}
	return nil
}

// UpdateIdentifier renames the identifier locally and on the agent. While
// offline the change stays marked pending and is pushed on reconnect.
func (s *identifierService) UpdateIdentifier(ctx context.Context, id, displayName string, theme int) error {
	meta, err := s.getMetadata(ctx, id)
	if err != nil {
		return err
	}

	meta.DisplayName = displayName
	meta.Theme = theme
	meta.PendingUpdate = true
	meta.UpdatedAt = time.Now().UTC()
	if err = s.identifiers.Update(ctx, meta); err != nil {
		return fmt.Errorf("update identifier: %w", err)
	}

	err = s.pushUpdate(ctx, meta)
	if errors.Is(err, ErrKeriaConnectionBroken) {
		return nil
	}
	return err
}

func (s *identifierService) pushUpdate(ctx context.Context, meta models.IdentifierMetadata) error {
	name := s.identifierName(meta.DisplayName, meta.Theme, meta.GroupMetadata)

	err := onlineOnlyErr(ctx, s.conn, func(ctx context.Context) error {
		return s.keria.RenameIdentifier(ctx, meta.ID, name.String())
	})
	if err != nil {
		return fmt.Errorf("rename remote identifier: %w", err)
	}

	meta.PendingUpdate = false
	if err = s.identifiers.Update(ctx, meta); err != nil {
		return fmt.Errorf("update identifier: %w", err)
	}
	return nil
}

func (s *identifierService) ProcessIdentifiersPendingUpdate(ctx context.Context) error {
	yes := true
	pending, err := s.identifiers.Find(ctx, models.IdentifierFilter{PendingUpdate: &yes})
	if err != nil {
		return fmt.Errorf("find identifiers pending update: %w", err)
	}

	for _, meta := range pending {
		if err = s.pushUpdate(ctx, meta); err != nil {
			return err
		}
	}
	return nil
}

func (s *identifierService) RotateIdentifier(ctx context.Context, id string) error {
	meta, err := s.getMetadata(ctx, id)
	if err != nil {
		return err
	}
	if meta.IsGroup() {
		return ErrCannotRotateGroup
	}

	op, err := onlineOnly(ctx, s.conn, func(ctx context.Context) (models.Operation, error) {
		return s.keria.RotateIdentifier(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("rotate identifier: %w", err)
	}

	if op.Done {
		return nil
	}
	return s.operations.Track(ctx, models.PendingOperation{
		ID:            op.Name,
		RecordType:    models.OperationWitness,
		CorrelationID: id,
		Metadata:      models.OperationMetadata{Identifier: id},
	})
}

func (s *identifierService) MarkIdentifierPendingDelete(ctx context.Context, id string) error {
	meta, err := s.getMetadata(ctx, id)
	if err != nil {
		return err
	}

	meta.PendingDeletion = true
	meta.UpdatedAt = time.Now().UTC()
	if err = s.identifiers.Update(ctx, meta); err != nil {
		return fmt.Errorf("update identifier: %w", err)
	}

	s.events.Emit(ctx, models.Event{
		Type:    models.EventIdentifierRemoved,
		Payload: models.IdentifierPayload{Identifier: meta.ShortDetails()},
	})
	return nil
}

func (s *identifierService) RemoveIdentifiersPendingDeletion(ctx context.Context) error {
	yes := true
	pending, err := s.identifiers.Find(ctx, models.IdentifierFilter{PendingDeletion: &yes})
	if err != nil {
		return fmt.Errorf("find identifiers pending deletion: %w", err)
	}

	for _, meta := range pending {
		if err = s.DeleteIdentifier(ctx, meta.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteIdentifier retires the identifier. KERI has no delete, so the agent
// copy is renamed with the deletion marker and sync ignores it afterwards.
func (s *identifierService) DeleteIdentifier(ctx context.Context, id string) error {
	meta, err := s.identifiers.Get(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get identifier %s: %w", id, err)
	}

	if err = s.disconnectPeer(ctx, id); err != nil {
		return err
	}

	if meta.IsGroupMember() && meta.GroupMetadata.GroupID != "" {
		if err = s.connections.DeleteAllConnectionsForGroup(ctx, meta.GroupMetadata.GroupID); err != nil {
			return fmt.Errorf("delete group connections: %w", err)
		}
	}
	if err = s.connections.DeleteAllConnectionsForIdentifier(ctx, id); err != nil {
		return fmt.Errorf("delete connections: %w", err)
	}

	if err = s.retireRemote(ctx, id); err != nil {
		return err
	}

	if meta.IsGroup() {
		if err = s.retireMember(ctx, meta.GroupMemberPre); err != nil {
			return err
		}
	}

	if err = s.identifiers.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("delete identifier: %w", err)
	}

	s.events.Emit(ctx, models.Event{
		Type:    models.EventIdentifierRemoved,
		Payload: models.IdentifierPayload{Identifier: meta.ShortDetails()},
	})
	return nil
}

func (s *identifierService) retireMember(ctx context.Context, memberPrefix string) error {
	if memberPrefix == "" {
		return nil
	}
	if err := s.retireRemote(ctx, memberPrefix); err != nil {
		return err
	}
	if err := s.identifiers.Delete(ctx, memberPrefix); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("delete member identifier: %w", err)
	}
	return nil
}

// retireRemote renames the agent copy to "XX-{salt}:{previous name}".
func (s *identifierService) retireRemote(ctx context.Context, id string) error {
	return onlineOnlyErr(ctx, s.conn, func(ctx context.Context) error {
		hab, err := s.keria.GetIdentifier(ctx, id)
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get remote identifier: %w", err)
		}
		if models.IsDeletedIdentifierName(hab.Name) {
			return nil
		}

		salt, err := utils.NewSalt()
		if err != nil {
			return err
		}
		if err = s.keria.RenameIdentifier(ctx, id, models.DeletedIdentifierName(salt, hab.Name)); err != nil {
			return fmt.Errorf("rename remote identifier: %w", err)
		}
		return nil
	})
}

func (s *identifierService) disconnectPeer(ctx context.Context, id string) error {
	peer, err := store.GetContent[models.ConnectedWallet](ctx, s.basic, models.MiscConnectedWallet)
	if err != nil {
		return fmt.Errorf("read connected wallet: %w", err)
	}
	if peer.Identifier != id {
		return nil
	}

	if err = s.basic.Delete(ctx, models.MiscConnectedWallet); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("forget connected wallet: %w", err)
	}

	s.events.Emit(ctx, models.Event{
		Type:    models.EventPeerDisconnected,
		Payload: models.PeerDisconnectedPayload{WalletID: peer.WalletID, Identifier: id},
	})
	return nil
}

// SyncKeriaIdentifiers records identifiers the agent holds but this wallet
// does not know yet. Names carry the theme and group part so the metadata
// can be rebuilt; retired names are skipped.
func (s *identifierService) SyncKeriaIdentifiers(ctx context.Context) error {
	habs, err := onlineOnly(ctx, s.conn, s.keria.ListIdentifiers)
	if err != nil {
		return fmt.Errorf("list remote identifiers: %w", err)
	}

	local, err := s.identifiers.Find(ctx, models.IdentifierFilter{})
	if err != nil {
		return fmt.Errorf("list identifiers: %w", err)
	}
	known := make(map[string]struct{}, len(local))
	for _, m := range local {
		known[m.ID] = struct{}{}
	}

	incepted := make(map[string]struct{})
	for _, hab := range habs {
		if hab.IsGroup() && hab.Group.Mhab != nil {
			incepted[hab.Group.Mhab.Prefix] = struct{}{}
		}
	}

	now := time.Now().UTC()
	for _, hab := range habs {
		if models.IsDeletedIdentifierName(hab.Name) {
			continue
		}
		if _, ok := known[hab.Prefix]; ok {
			continue
		}

		meta := models.IdentifierMetadata{
			ID:             hab.Prefix,
			DisplayName:    hab.Name,
			CreationStatus: models.CreationStatusComplete,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if name, err := models.ParseIdentifierName(hab.Name); err == nil {
			meta.DisplayName = name.DisplayName
			meta.Theme = name.Theme
			if name.Group != nil && !hab.IsGroup() {
				_, created := incepted[hab.Prefix]
				meta.GroupMetadata = &models.GroupMetadata{
					GroupID:        name.Group.GroupID,
					GroupInitiator: name.Group.GroupInitiator,
					GroupCreated:   created,
				}
			}
		}

		if hab.IsGroup() && hab.Group.Mhab != nil {
			meta.GroupMemberPre = hab.Group.Mhab.Prefix
		}

		if err = s.identifiers.Save(ctx, meta); err != nil && !errors.Is(err, store.ErrRecordAlreadyExists) {
			return fmt.Errorf("save synced identifier: %w", err)
		}
	}
	return nil
}
