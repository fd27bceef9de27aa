// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the wallet's durable local state: identifier metadata,
// contacts, connection pairs, pending remote operations, notifications,
// credentials and small JSON documents ("basic records") such as the group
// creation queues.
//
// Every repository has a SQLite implementation (sqlx + squirrel, schema
// applied by goose) and an in-memory one used for ":memory:" DSNs and tests.
package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// IdentifierRepository stores [models.IdentifierMetadata].
type IdentifierRepository interface {
	// Save inserts m. Returns [ErrRecordAlreadyExists] if m.ID is stored.
	Save(ctx context.Context, m models.IdentifierMetadata) error
	// Get returns the record or [ErrRecordNotFound].
	Get(ctx context.Context, id string) (models.IdentifierMetadata, error)
	// Update replaces the mutable fields of an existing record.
	Update(ctx context.Context, m models.IdentifierMetadata) error
	// Delete removes the record. Returns [ErrRecordNotFound] if absent.
	Delete(ctx context.Context, id string) error
	// Find returns every record matching filter, oldest first.
	Find(ctx context.Context, filter models.IdentifierFilter) ([]models.IdentifierMetadata, error)
}

// ContactRepository stores [models.Contact].
type ContactRepository interface {
	Save(ctx context.Context, c models.Contact) error
	Get(ctx context.Context, id string) (models.Contact, error)
	Update(ctx context.Context, c models.Contact) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	FindByGroupID(ctx context.Context, groupID string) ([]models.Contact, error)
}

// ConnectionPairRepository stores [models.ConnectionPair].
type ConnectionPairRepository interface {
	Save(ctx context.Context, p models.ConnectionPair) error
	Get(ctx context.Context, id string) (models.ConnectionPair, error)
	Update(ctx context.Context, p models.ConnectionPair) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filter models.ConnectionPairFilter) ([]models.ConnectionPair, error)
}

// OperationPendingRepository is the pending-operation tracker. It only
// stores and retrieves; completion events are raised by the poller.
type OperationPendingRepository interface {
	// Save returns [ErrRecordAlreadyExists] if op.ID is already tracked.
	Save(ctx context.Context, op models.PendingOperation) error
	Get(ctx context.Context, id string) (models.PendingOperation, error)
	GetAll(ctx context.Context) ([]models.PendingOperation, error)
	// FindByCorrelationID returns every operation linked to correlationID,
	// either through the CorrelationID field or the ".{correlationID}" id
	// suffix.
	FindByCorrelationID(ctx context.Context, correlationID string) ([]models.PendingOperation, error)
	Delete(ctx context.Context, id string) error
}

// BasicRepository stores JSON documents under fixed keys.
type BasicRepository interface {
	// Get returns the record or [ErrRecordNotFound].
	Get(ctx context.Context, id models.MiscRecordID) (models.BasicRecord, error)
	// Save creates or replaces the record.
	Save(ctx context.Context, record models.BasicRecord) error
	Delete(ctx context.Context, id models.MiscRecordID) error
	// Mutate atomically reads the content stored under id (nil if absent),
	// passes it to fn and stores what fn returns. Concurrent calls on the same
	// id are serialised.
	Mutate(ctx context.Context, id models.MiscRecordID, fn func(content json.RawMessage) (json.RawMessage, error)) error
}

// NotificationRepository stores [models.Notification].
type NotificationRepository interface {
	Save(ctx context.Context, n models.Notification) error
	Get(ctx context.Context, id string) (models.Notification, error)
	GetAll(ctx context.Context) ([]models.Notification, error)
	Delete(ctx context.Context, id string) error
}

// CredentialRepository stores [models.CredentialMetadata].
type CredentialRepository interface {
	Save(ctx context.Context, c models.CredentialMetadata) error
	Get(ctx context.Context, id string) (models.CredentialMetadata, error)
	Update(ctx context.Context, c models.CredentialMetadata) error
	Delete(ctx context.Context, id string) error
	FindPendingDeletion(ctx context.Context) ([]models.CredentialMetadata, error)
}
