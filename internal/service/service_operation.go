package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/store"
	"github.com/MKhiriev/go-keri-wallet/models"
)

type operationService struct {
	operations  store.OperationPendingRepository
	identifiers store.IdentifierRepository
	pairs       store.ConnectionPairRepository
	keria       adapter.KeriaAdapter
	events      bus.Emitter
	conn        *Connectivity

	logger *logger.Logger
}

func NewOperationService(storages *store.Storages, keria adapter.KeriaAdapter, events bus.Emitter, conn *Connectivity, logger *logger.Logger) OperationService {
	return &operationService{
		operations:  storages.Operations,
		identifiers: storages.Identifiers,
		pairs:       storages.ConnectionPairs,
		keria:       keria,
		events:      events,
		conn:        conn,
		logger:      logger,
	}
}

func (o *operationService) Track(ctx context.Context, op models.PendingOperation) error {
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now().UTC()
	}

	err := o.operations.Save(ctx, op)
	if errors.Is(err, store.ErrRecordAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("track operation %s: %w", op.ID, err)
	}
	return nil
}

func (o *operationService) ProcessPendingOperations(ctx context.Context) error {
	return onlineOnlyErr(ctx, o.conn, o.processPendingOperations)
}

func (o *operationService) processPendingOperations(ctx context.Context) error {
	pending, err := o.operations.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list pending operations: %w", err)
	}

	for _, op := range pending {
		remote, err := o.keria.GetOperation(ctx, op.ID)
		if errors.Is(err, adapter.ErrNotFound) {
			o.logger.Warn().Str("func", "*operationService.ProcessPendingOperations").
				Str("operation", op.ID).Msg("operation unknown to agent, dropping")
			if err = o.forget(ctx, op, false); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("get operation %s: %w", op.ID, err)
		}

		if !remote.Done {
			continue
		}

		if remote.Error != nil {
			err = o.fail(ctx, op, remote.ErrorMessage())
		} else {
			err = o.complete(ctx, op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *operationService) complete(ctx context.Context, op models.PendingOperation) error {
	switch op.RecordType {
	case models.OperationWitness:
		if err := o.setIdentifierStatus(ctx, o.subject(op), models.CreationStatusComplete); err != nil {
			return err
		}

	case models.OperationGroup:
		prefix := o.subject(op)
		if err := o.setIdentifierStatus(ctx, prefix, models.CreationStatusComplete); err != nil {
			return err
		}
		if group, err := o.identifiers.Get(ctx, prefix); err == nil {
			o.events.Emit(ctx, models.Event{
				Type:    models.EventGroupCreated,
				Payload: models.GroupCreatedPayload{Group: group.ShortDetails()},
			})
		}

	case models.OperationOobi:
		if err := o.completeOobi(ctx, op); err != nil {
			return err
		}
	}

	if err := o.forget(ctx, op, true); err != nil {
		return err
	}

	o.events.Emit(ctx, models.Event{
		Type:    models.EventOperationCompleted,
		Payload: models.OperationPayload{OperationID: op.ID, RecordType: op.RecordType},
	})
	return nil
}

func (o *operationService) completeOobi(ctx context.Context, op models.PendingOperation) error {
	meta := op.Metadata
	if meta.ConnectionID == "" || meta.Identifier == "" {
		return nil
	}

	pair, err := o.pairs.Get(ctx, models.ConnectionPairID(meta.Identifier, meta.ConnectionID))
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get connection pair: %w", err)
	}

	pair.CreationStatus = models.CreationStatusComplete
	if err = o.pairs.Update(ctx, pair); err != nil {
		return fmt.Errorf("update connection pair: %w", err)
	}

	field := models.ContactFieldKey(meta.Identifier, models.ContactFieldCreatedAt)
	err = o.keria.UpdateContact(ctx, meta.ConnectionID, map[string]any{
		field: pair.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("tag remote contact: %w", err)
	}

	o.events.Emit(ctx, models.Event{
		Type: models.EventConnectionStateChanged,
		Payload: models.ConnectionStatePayload{
			ConnectionID: meta.ConnectionID,
			Identifier:   meta.Identifier,
			Status:       models.ConnectionStatusConfirmed,
		},
	})
	return nil
}

func (o *operationService) fail(ctx context.Context, op models.PendingOperation, reason string) error {
	switch op.RecordType {
	case models.OperationWitness, models.OperationGroup:
		if err := o.setIdentifierStatus(ctx, o.subject(op), models.CreationStatusFailed); err != nil {
			return err
		}

	case models.OperationOobi:
		meta := op.Metadata
		pair, err := o.pairs.Get(ctx, models.ConnectionPairID(meta.Identifier, meta.ConnectionID))
		if err == nil {
			pair.CreationStatus = models.CreationStatusFailed
			if err = o.pairs.Update(ctx, pair); err != nil {
				return fmt.Errorf("update connection pair: %w", err)
			}
			o.events.Emit(ctx, models.Event{
				Type: models.EventConnectionStateChanged,
				Payload: models.ConnectionStatePayload{
					ConnectionID: meta.ConnectionID,
					Identifier:   meta.Identifier,
					Status:       models.ConnectionStatusFailed,
				},
			})
		} else if !errors.Is(err, store.ErrRecordNotFound) {
			return fmt.Errorf("get connection pair: %w", err)
		}
	}

	if err := o.forget(ctx, op, true); err != nil {
		return err
	}

	o.logger.Warn().Str("func", "*operationService.fail").
		Str("operation", op.ID).Str("reason", reason).Msg("operation failed")

	o.events.Emit(ctx, models.Event{
		Type:    models.EventOperationFailed,
		Payload: models.OperationPayload{OperationID: op.ID, RecordType: op.RecordType, Error: reason},
	})
	return nil
}

// subject is the identifier an operation is about.
func (o *operationService) subject(op models.PendingOperation) string {
	if op.Metadata.Identifier != "" {
		return op.Metadata.Identifier
	}
	return op.CorrelationID
}

func (o *operationService) setIdentifierStatus(ctx context.Context, id string, status models.CreationStatus) error {
	meta, err := o.identifiers.Get(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get identifier %s: %w", id, err)
	}

	meta.CreationStatus = status
	meta.UpdatedAt = time.Now().UTC()
	if err = o.identifiers.Update(ctx, meta); err != nil {
		return fmt.Errorf("update identifier %s: %w", id, err)
	}
	return nil
}

// forget drops the local record and, when remote is set, the agent's copy.
func (o *operationService) forget(ctx context.Context, op models.PendingOperation, remote bool) error {
	if err := o.operations.Delete(ctx, op.ID); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("delete pending operation %s: %w", op.ID, err)
	}
	if !remote {
		return nil
	}
	if err := o.keria.DeleteOperation(ctx, op.ID); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("delete remote operation %s: %w", op.ID, err)
	}
	return nil
}

func (o *operationService) RemoveByCorrelationID(ctx context.Context, correlationID string) error {
	linked, err := o.operations.FindByCorrelationID(ctx, correlationID)
	if err != nil {
		return fmt.Errorf("find operations for %s: %w", correlationID, err)
	}

	for _, op := range linked {
		if err = o.forget(ctx, op, true); err != nil {
			return err
		}
	}
	return nil
}
