// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/internal/utils"
	"github.com/MKhiriev/go-keri-wallet/internal/validators"
	"github.com/MKhiriev/go-keri-wallet/models"
)

const (
	defaultOobiResolveTimeout = 5 * time.Second
	oobiPollInterval          = 250 * time.Millisecond
)

type connectionService struct {
	contacts    store.ContactRepository
	pairs       store.ConnectionPairRepository
	identifiers store.IdentifierRepository
	pending     store.OperationPendingRepository
	operations  OperationService
	keria       adapter.KeriaAdapter
	events      bus.Emitter
	conn        *Connectivity
	ids         *utils.UUIDGenerator

	resolveTimeout time.Duration
	pollInterval   time.Duration

	logger *logger.Logger
}

func NewConnectionService(
	storages *store.Storages,
	operations OperationService,
	keria adapter.KeriaAdapter,
	events bus.Emitter,
	conn *Connectivity,
	cfg config.WalletKeria,
	logger *logger.Logger,
) ConnectionService {
	timeout := cfg.OobiResolveTimeout
	if timeout <= 0 {
		timeout = defaultOobiResolveTimeout
	}

	return &connectionService{
		contacts:       storages.Contacts,
		pairs:          storages.ConnectionPairs,
		identifiers:    storages.Identifiers,
		pending:        storages.Operations,
		operations:     operations,
		keria:          keria,
		events:         events,
		conn:           conn,
		ids:            utils.NewUUIDGenerator(),
		resolveTimeout: timeout,
		pollInterval:   oobiPollInterval,
		logger:         logger,
	}
}

func (c *connectionService) ConnectByOobiURL(ctx context.Context, oobiURL, sharedIdentifier string) (models.OobiScanResult, error) {
	oobi, err := validators.ParseOobi(oobiURL)
	if err != nil {
		return models.OobiScanResult{}, err
	}

	if oobi.IsGroupInvite() {
		return c.connectGroupInvite(ctx, oobi, oobiURL, sharedIdentifier)
	}

	if sharedIdentifier == "" {
		return models.OobiScanResult{}, ErrNormalConnectionRequiresSharedIdentifier
	}
	if _, err = c.identifiers.Get(ctx, sharedIdentifier); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return models.OobiScanResult{}, ErrIdentifierNotFound
		}
		return models.OobiScanResult{}, fmt.Errorf("get shared identifier: %w", err)
	}

	now := time.Now().UTC()
	contact, err := c.saveContact(ctx, models.Contact{
		ID:        oobi.Prefix,
		Alias:     c.alias(oobi),
		Oobi:      oobiURL,
		CreatedAt: now,
	})
	if err != nil {
		return models.OobiScanResult{}, err
	}

	pair := models.ConnectionPair{
		ID:             models.ConnectionPairID(sharedIdentifier, contact.ID),
		ContactID:      contact.ID,
		Identifier:     sharedIdentifier,
		CreationStatus: models.CreationStatusPending,
		CreatedAt:      now,
	}
	err = c.pairs.Save(ctx, pair)
	if errors.Is(err, store.ErrRecordAlreadyExists) {
		existing, getErr := c.pairs.Get(ctx, pair.ID)
		if getErr != nil {
			return models.OobiScanResult{}, fmt.Errorf("get connection pair: %w", getErr)
		}
		return models.OobiScanResult{
			Type:       models.OobiScanNormal,
			Connection: models.NewConnectionShortDetails(contact, &existing),
		}, nil
	}
	if err != nil {
		return models.OobiScanResult{}, fmt.Errorf("save connection pair: %w", err)
	}

	c.events.Emit(ctx, models.Event{
		Type: models.EventConnectionStateChanged,
		Payload: models.ConnectionStatePayload{
			ConnectionID: contact.ID,
			Identifier:   sharedIdentifier,
			Status:       models.ConnectionStatusPending,
			URL:          oobiURL,
		},
	})

	return models.OobiScanResult{
		Type:       models.OobiScanNormal,
		Connection: models.NewConnectionShortDetails(contact, &pair),
	}, nil
}

// connectGroupInvite resolves a group invite synchronously. The contact id
// comes from the resolved state, not from the URL path.
func (c *connectionService) connectGroupInvite(ctx context.Context, oobi validators.Oobi, oobiURL, sharedIdentifier string) (models.OobiScanResult, error) {
	alias := c.alias(oobi)

	op, err := c.resolve(ctx, oobi, alias, true, models.OperationMetadata{})
	if err != nil {
		return models.OobiScanResult{}, err
	}

	contactID := op.ResponsePrefix()
	if contactID == "" {
		contactID = oobi.Prefix
	}

	members, err := c.identifiers.Find(ctx, models.IdentifierFilter{GroupID: oobi.GroupID})
	if err != nil {
		return models.OobiScanResult{}, fmt.Errorf("find group members: %w", err)
	}

	now := time.Now().UTC()
	contact, err := c.saveContact(ctx, models.Contact{
		ID:        contactID,
		Alias:     alias,
		Oobi:      oobiURL,
		GroupID:   oobi.GroupID,
		CreatedAt: now,
	})
	if err != nil {
		return models.OobiScanResult{}, err
	}

	err = onlineOnlyErr(ctx, c.conn, func(ctx context.Context) error {
		return c.keria.UpdateContact(ctx, contactID, map[string]any{models.ContactKeyGroupID: oobi.GroupID})
	})
	if err != nil {
		return models.OobiScanResult{}, fmt.Errorf("tag group contact: %w", err)
	}

	if len(members) > 0 {
		// the group relationship already exists through our member identifier
		return models.OobiScanResult{
			Type:       models.OobiScanNormal,
			GroupID:    oobi.GroupID,
			Connection: models.NewConnectionShortDetails(contact, nil),
		}, nil
	}

	var pair *models.ConnectionPair
	if sharedIdentifier != "" {
		p := models.ConnectionPair{
			ID:             models.ConnectionPairID(sharedIdentifier, contactID),
			ContactID:      contactID,
			Identifier:     sharedIdentifier,
			CreationStatus: models.CreationStatusComplete,
			CreatedAt:      now,
		}
		if err = c.pairs.Save(ctx, p); err != nil && !errors.Is(err, store.ErrRecordAlreadyExists) {
			return models.OobiScanResult{}, fmt.Errorf("save connection pair: %w", err)
		}
		pair = &p
	}

	c.events.Emit(ctx, models.Event{
		Type: models.EventConnectionStateChanged,
		Payload: models.ConnectionStatePayload{
			ConnectionID: contactID,
			Identifier:   sharedIdentifier,
			Status:       models.ConnectionStatusConfirmed,
			URL:          oobiURL,
		},
	})

	return models.OobiScanResult{
		Type:       models.OobiScanMultiSigInitiator,
		GroupID:    oobi.GroupID,
		Connection: models.NewConnectionShortDetails(contact, pair),
	}, nil
}

func (c *connectionService) saveContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	err := c.contacts.Save(ctx, contact)
	if errors.Is(err, store.ErrRecordAlreadyExists) {
		existing, getErr := c.contacts.Get(ctx, contact.ID)
		if getErr != nil {
			return models.Contact{}, fmt.Errorf("get contact: %w", getErr)
		}
		if contact.GroupID != "" && existing.GroupID != contact.GroupID {
			existing.GroupID = contact.GroupID
			if err = c.contacts.Update(ctx, existing); err != nil {
				return models.Contact{}, fmt.Errorf("update contact: %w", err)
			}
		}
		return existing, nil
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("save contact: %w", err)
	}
	return contact, nil
}

// alias is the decoded name parameter, or a random label.
func (c *connectionService) alias(oobi validators.Oobi) string {
	if oobi.Name != "" {
		return oobi.Name
	}
	return c.ids.Generate()
}

func (c *connectionService) ResolveOobi(ctx context.Context, oobiURL string, wait bool) (models.Operation, error) {
	oobi, err := validators.ParseOobi(oobiURL)
	if err != nil {
		return models.Operation{}, err
	}
	return c.resolve(ctx, oobi, c.alias(oobi), wait, models.OperationMetadata{})
}

func (c *connectionService) resolve(ctx context.Context, oobi validators.Oobi, alias string, wait bool, meta models.OperationMetadata) (models.Operation, error) {
	return onlineOnly(ctx, c.conn, func(ctx context.Context) (models.Operation, error) {
		op, err := c.keria.ResolveOobi(ctx, oobi.WithoutName(), alias)
		if err != nil {
			return models.Operation{}, fmt.Errorf("resolve oobi: %w", err)
		}

		if wait {
			return c.waitOperation(ctx, op)
		}

		if !op.Done {
			err = c.operations.Track(ctx, models.PendingOperation{
				ID:            op.Name,
				RecordType:    models.OperationOobi,
				CorrelationID: meta.ConnectionID,
				Metadata:      meta,
			})
			if err != nil {
				return models.Operation{}, err
			}
		}
		return op, nil
	})
}

// waitOperation polls op until done or the resolve timeout elapses.
func (c *connectionService) waitOperation(ctx context.Context, op models.Operation) (models.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.resolveTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		if op.Done {
			if op.Error != nil {
				return op, fmt.Errorf("%w: %s", ErrFailedToResolveOobi, op.ErrorMessage())
			}
			return op, nil
		}

		select {
		case <-ctx.Done():
			return op, fmt.Errorf("%w: no result after %s", ErrFailedToResolveOobi, c.resolveTimeout)
		case <-ticker.C:
		}

		next, err := c.keria.GetOperation(ctx, op.Name)
		if errors.Is(err, context.DeadlineExceeded) {
			continue
		}
		if err != nil {
			return op, fmt.Errorf("poll oobi operation: %w", err)
		}
		op = next
	}
}

func (c *connectionService) OnConnectionAdded(ctx context.Context, added models.ConnectionStatePayload) error {
	if added.Status != models.ConnectionStatusPending || added.Identifier == "" {
		return nil
	}

	oobiURL := added.URL
	if oobiURL == "" {
		contact, err := c.contacts.Get(ctx, added.ConnectionID)
		if err != nil {
			return fmt.Errorf("get contact %s: %w", added.ConnectionID, err)
		}
		oobiURL = contact.Oobi
	}

	oobi, err := validators.ParseOobi(oobiURL)
	if err != nil {
		return err
	}

	contact, err := c.contacts.Get(ctx, added.ConnectionID)
	alias := c.alias(oobi)
	if err == nil && contact.Alias != "" {
		alias = contact.Alias
	}

	_, err = c.resolve(ctx, oobi, alias, false, models.OperationMetadata{
		ConnectionID: added.ConnectionID,
		Identifier:   added.Identifier,
	})
	return err
}

func (c *connectionService) ResolvePendingConnections(ctx context.Context) error {
	notDeleted := false
	pending, err := c.pairs.Find(ctx, models.ConnectionPairFilter{
		CreationStatus:  models.CreationStatusPending,
		PendingDeletion: &notDeleted,
	})
	if err != nil {
		return fmt.Errorf("find pending connections: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	tracked, err := c.pending.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list pending operations: %w", err)
	}
	inFlight := make(map[string]struct{}, len(tracked))
	for _, op := range tracked {
		if op.RecordType == models.OperationOobi {
			inFlight[models.ConnectionPairID(op.Metadata.Identifier, op.Metadata.ConnectionID)] = struct{}{}
		}
	}

	for _, pair := range pending {
		if _, ok := inFlight[pair.ID]; ok {
			continue
		}
		err = c.OnConnectionAdded(ctx, models.ConnectionStatePayload{
			ConnectionID: pair.ContactID,
			Identifier:   pair.Identifier,
			Status:       models.ConnectionStatusPending,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *connectionService) GetConnections(ctx context.Context) ([]models.ConnectionShortDetails, error) {
	contacts, err := c.contacts.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	notDeleted := false
	pairs, err := c.pairs.Find(ctx, models.ConnectionPairFilter{PendingDeletion: &notDeleted})
	if err != nil {
		return nil, fmt.Errorf("list connection pairs: %w", err)
	}

	byContact := make(map[string][]models.ConnectionPair, len(contacts))
	for _, p := range pairs {
		byContact[p.ContactID] = append(byContact[p.ContactID], p)
	}

	result := make([]models.ConnectionShortDetails, 0, len(pairs))
	for _, contact := range contacts {
		contactPairs := byContact[contact.ID]
		if len(contactPairs) == 0 {
			if contact.GroupID != "" {
				result = append(result, models.NewConnectionShortDetails(contact, nil))
			}
			continue
		}
		for i := range contactPairs {
			result = append(result, models.NewConnectionShortDetails(contact, &contactPairs[i]))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (c *connectionService) GetConnectionShortDetails(ctx context.Context, contactID, identifier string) (models.ConnectionShortDetails, error) {
	contact, err := c.contacts.Get(ctx, contactID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.ConnectionShortDetails{}, ErrConnectionNotFound
	}
	if err != nil {
		return models.ConnectionShortDetails{}, fmt.Errorf("get contact: %w", err)
	}

	if identifier == "" {
		return models.NewConnectionShortDetails(contact, nil), nil
	}

	pair, err := c.pairs.Get(ctx, models.ConnectionPairID(identifier, contactID))
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.ConnectionShortDetails{}, ErrConnectionNotFound
	}
	if err != nil {
		return models.ConnectionShortDetails{}, fmt.Errorf("get connection pair: %w", err)
	}
	return models.NewConnectionShortDetails(contact, &pair), nil
}

func (c *connectionService) GetOobi(ctx context.Context, identifier string, params OobiParams) (string, error) {
	meta, err := c.identifiers.Get(ctx, identifier)
	if errors.Is(err, store.ErrRecordNotFound) {
		return "", ErrIdentifierNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get identifier: %w", err)
	}

	oobis, err := onlineOnly(ctx, c.conn, func(ctx context.Context) ([]string, error) {
		return c.keria.GetOobi(ctx, identifier, models.EndRoleAgent)
	})
	if err != nil {
		return "", err
	}
	if len(oobis) == 0 {
		return "", fmt.Errorf("%w: no oobi for %s", ErrMissingDataOnKeria, identifier)
	}

	raw := oobis[0]
	if meta.IsGroup() {
		// a group is reached through its agent only
		for _, candidate := range oobis {
			if strings.Contains(candidate, "/oobi/"+identifier+"/agent/") {
				raw = candidate
				break
			}
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: bad oobi %q", ErrMissingDataOnKeria, raw)
	}

	q := u.Query()
	if params.Alias != "" {
		q.Set(models.OobiParamName, params.Alias)
	}
	if params.GroupID != "" {
		q.Set(models.OobiParamGroupID, params.GroupID)
	}
	if params.ExternalID != "" {
		q.Set(models.OobiParamExternalID, params.ExternalID)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *connectionService) GetOobiQR(ctx context.Context, identifier string, params OobiParams, size int) ([]byte, error) {
	oobi, err := c.GetOobi(ctx, identifier, params)
	if err != nil {
		return nil, err
	}
	return utils.QRCodePNG(oobi, size)
}

func (c *connectionService) DeleteConnectionByIDAndIdentifier(ctx context.Context, contactID, identifier string) error {
	pairID := models.ConnectionPairID(identifier, contactID)
	if _, err := c.pairs.Get(ctx, pairID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("get connection pair: %w", err)
	}

	siblings, err := c.pairs.Find(ctx, models.ConnectionPairFilter{ContactID: contactID})
	if err != nil {
		return fmt.Errorf("find pairs of contact: %w", err)
	}

	if len(siblings) <= 1 {
		err = onlineOnlyErr(ctx, c.conn, func(ctx context.Context) error {
			return c.keria.DeleteContact(ctx, contactID)
		})
		if err != nil {
			return fmt.Errorf("delete remote contact: %w", err)
		}
		if err = c.deletePair(ctx, pairID); err != nil {
			return err
		}
		if err = c.contacts.Delete(ctx, contactID); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("delete contact: %w", err)
		}
	} else {
		err = onlineOnlyErr(ctx, c.conn, func(ctx context.Context) error {
			return c.stripIdentifierFields(ctx, contactID, identifier)
		})
		if err != nil {
			return fmt.Errorf("strip remote contact fields: %w", err)
		}
		if err = c.deletePair(ctx, pairID); err != nil {
			return err
		}
	}

	c.events.Emit(ctx, models.Event{
		Type: models.EventConnectionRemoved,
		Payload: models.ConnectionStatePayload{
			ConnectionID: contactID,
			Identifier:   identifier,
			Status:       models.ConnectionStatusDeleted,
		},
	})
	return nil
}

func (c *connectionService) stripIdentifierFields(ctx context.Context, contactID, identifier string) error {
	remote, err := c.keria.GetContact(ctx, contactID)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	keys := remote.IdentifierFieldKeys(identifier)
	if len(keys) == 0 {
		return nil
	}

	fields := make(map[string]any, len(keys))
	for _, k := range keys {
		fields[k] = nil
	}
	return c.keria.UpdateContact(ctx, contactID, fields)
}

func (c *connectionService) deletePair(ctx context.Context, pairID string) error {
	if err := c.pairs.Delete(ctx, pairID); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("delete connection pair: %w", err)
	}
	return nil
}

func (c *connectionService) MarkConnectionPendingDelete(ctx context.Context, contactID, identifier string) error {
	pair, err := c.pairs.Get(ctx, models.ConnectionPairID(identifier, contactID))
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrConnectionNotFound
	}
	if err != nil {
		return fmt.Errorf("get connection pair: %w", err)
	}

	pair.PendingDeletion = true
	if err = c.pairs.Update(ctx, pair); err != nil {
		return fmt.Errorf("update connection pair: %w", err)
	}

	c.events.Emit(ctx, models.Event{
		Type: models.EventConnectionStateChanged,
		Payload: models.ConnectionStatePayload{
			ConnectionID: contactID,
			Identifier:   identifier,
			Status:       models.ConnectionStatusDeleted,
		},
	})
	return nil
}

func (c *connectionService) GetConnectionsPendingDeletion(ctx context.Context) ([]models.ConnectionPair, error) {
	pendingDeletion := true
	return c.pairs.Find(ctx, models.ConnectionPairFilter{PendingDeletion: &pendingDeletion})
}

func (c *connectionService) RemoveConnectionsPendingDeletion(ctx context.Context) error {
	pairs, err := c.GetConnectionsPendingDeletion(ctx)
	if err != nil {
		return fmt.Errorf("find connections pending deletion: %w", err)
	}

	for _, p := range pairs {
		if err = c.DeleteConnectionByIDAndIdentifier(ctx, p.ContactID, p.Identifier); err != nil {
			return err
		}
	}
	return nil
}

func (c *connectionService) DeleteAllConnectionsForGroup(ctx context.Context, groupID string) error {
	contacts, err := c.contacts.FindByGroupID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("find group contacts: %w", err)
	}

	for _, contact := range contacts {
		pairs, err := c.pairs.Find(ctx, models.ConnectionPairFilter{ContactID: contact.ID})
		if err != nil {
			return fmt.Errorf("find pairs of contact: %w", err)
		}

		if len(pairs) > 0 {
			for _, p := range pairs {
				if err = c.DeleteConnectionByIDAndIdentifier(ctx, p.ContactID, p.Identifier); err != nil {
					return err
				}
			}
			continue
		}

		err = onlineOnlyErr(ctx, c.conn, func(ctx context.Context) error {
			return c.keria.DeleteContact(ctx, contact.ID)
		})
		if err != nil {
			return fmt.Errorf("delete remote group contact: %w", err)
		}
		if err = c.contacts.Delete(ctx, contact.ID); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("delete group contact: %w", err)
		}
		c.events.Emit(ctx, models.Event{
			Type:    models.EventConnectionRemoved,
			Payload: models.ConnectionStatePayload{ConnectionID: contact.ID, Status: models.ConnectionStatusDeleted},
		})
	}
	return nil
}

func (c *connectionService) DeleteAllConnectionsForIdentifier(ctx context.Context, identifier string) error {
	pairs, err := c.pairs.Find(ctx, models.ConnectionPairFilter{Identifier: identifier})
	if err != nil {
		return fmt.Errorf("find pairs of identifier: %w", err)
	}

	for _, p := range pairs {
		if err = c.DeleteConnectionByIDAndIdentifier(ctx, p.ContactID, p.Identifier); err != nil {
			return err
		}
	}
	return nil
}

// SyncKeriaContacts recreates contacts known to the agent but missing
// locally. The agent decides which local identifiers are paired with a
// contact through its "{identifier}:createdAt" fields.
func (c *connectionService) SyncKeriaContacts(ctx context.Context) error {
	remote, err := onlineOnly(ctx, c.conn, c.keria.ListContacts)
	if err != nil {
		return fmt.Errorf("list remote contacts: %w", err)
	}

	local, err := c.contacts.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}
	known := make(map[string]struct{}, len(local))
	for _, l := range local {
		known[l.ID] = struct{}{}
	}

	identifiers, err := c.identifiers.Find(ctx, models.IdentifierFilter{})
	if err != nil {
		return fmt.Errorf("list identifiers: %w", err)
	}
	localIDs := make([]string, 0, len(identifiers))
	for _, m := range identifiers {
		localIDs = append(localIDs, m.ID)
	}
	slices.Sort(localIDs)

	now := time.Now().UTC()
	for _, rc := range remote {
		if rc.ID() == "" {
			continue
		}
		if _, ok := known[rc.ID()]; ok {
			continue
		}

		contact := models.Contact{
			ID:        rc.ID(),
			Alias:     rc.Alias(),
			Oobi:      rc.Oobi(),
			GroupID:   rc.GroupID(),
			CreatedAt: now,
		}
		if err = c.contacts.Save(ctx, contact); err != nil && !errors.Is(err, store.ErrRecordAlreadyExists) {
			return fmt.Errorf("save synced contact: %w", err)
		}

		for _, id := range localIDs {
			createdAt, ok := rc.IdentifierField(id, models.ContactFieldCreatedAt)
			if !ok {
				continue
			}

			pair := models.ConnectionPair{
				ID:             models.ConnectionPairID(id, contact.ID),
				ContactID:      contact.ID,
				Identifier:     id,
				CreationStatus: models.CreationStatusComplete,
				CreatedAt:      parseContactTime(createdAt, now),
			}
			if err = c.pairs.Save(ctx, pair); err != nil && !errors.Is(err, store.ErrRecordAlreadyExists) {
				return fmt.Errorf("save synced connection pair: %w", err)
			}
		}
	}
	return nil
}

func parseContactTime(raw string, fallback time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	return fallback
}
