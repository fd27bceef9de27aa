// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the wallet's business logic: connections, single-sig
// identifiers, multi-signature groups, pending remote operations, credentials
// and local data migrations.
//
// Services talk to the cloud agent only through [adapter.KeriaAdapter] and
// keep durable state in the repositories of package store. Every method that
// needs the agent goes through the online-only guard (see [Connectivity]):
// while offline it fails fast with [ErrKeriaConnectionBroken], and a network
// failure flips the wallet offline so the agent can reconnect.
package service

import (
	"context"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// OperationService tracks long-running agent operations and applies their
// outcome once the agent reports them done.
type OperationService interface {
	// Track stores op. An operation already tracked is not an error.
	Track(ctx context.Context, op models.PendingOperation) error
	// ProcessPendingOperations polls every tracked operation once.
	ProcessPendingOperations(ctx context.Context) error
	// RemoveByCorrelationID forgets every operation linked to correlationID,
	// locally and on the agent.
	RemoveByCorrelationID(ctx context.Context, correlationID string) error
}

// ConnectionService owns contacts and connection pairs.
type ConnectionService interface {
	// ConnectByOobiURL accepts an invitation. A normal invite needs
	// sharedIdentifier and resolves in the background; a group invite is
	// resolved synchronously.
	ConnectByOobiURL(ctx context.Context, oobiURL, sharedIdentifier string) (models.OobiScanResult, error)
	// ResolveOobi submits oobiURL without its name parameter. With wait it
	// polls the operation until done or the resolve timeout; otherwise the
	// operation is tracked and returned immediately.
	ResolveOobi(ctx context.Context, oobiURL string, wait bool) (models.Operation, error)
	// OnConnectionAdded resolves the OOBI of a pending pair in the background.
	OnConnectionAdded(ctx context.Context, added models.ConnectionStatePayload) error
	ResolvePendingConnections(ctx context.Context) error

	GetConnections(ctx context.Context) ([]models.ConnectionShortDetails, error)
	GetConnectionShortDetails(ctx context.Context, contactID, identifier string) (models.ConnectionShortDetails, error)
	GetOobi(ctx context.Context, identifier string, params OobiParams) (string, error)
	GetOobiQR(ctx context.Context, identifier string, params OobiParams, size int) ([]byte, error)

	DeleteConnectionByIDAndIdentifier(ctx context.Context, contactID, identifier string) error
	MarkConnectionPendingDelete(ctx context.Context, contactID, identifier string) error
	GetConnectionsPendingDeletion(ctx context.Context) ([]models.ConnectionPair, error)
	RemoveConnectionsPendingDeletion(ctx context.Context) error
	DeleteAllConnectionsForGroup(ctx context.Context, groupID string) error
	DeleteAllConnectionsForIdentifier(ctx context.Context, identifier string) error

	SyncKeriaContacts(ctx context.Context) error
}

// OobiParams are the query parameters appended to a shared OOBI.
type OobiParams struct {
	Alias      string
	GroupID    string
	ExternalID string
}

// IdentifierService owns the single-signer identifier lifecycle.
type IdentifierService interface {
	GetIdentifiers(ctx context.Context) ([]models.IdentifierShortDetails, error)
	GetIdentifier(ctx context.Context, id string) (models.IdentifierDetails, error)
	// CreateIdentifier incepts a new identifier. Unless skipNameQueue is set
	// the name is queued first so an interrupted creation is retried on
	// reconnect.
	CreateIdentifier(ctx context.Context, inputs models.CreateIdentifierInputs, skipNameQueue bool) (models.CreateIdentifierResult, error)
	UpdateIdentifier(ctx context.Context, id, displayName string, theme int) error
	RotateIdentifier(ctx context.Context, id string) error
	DeleteIdentifier(ctx context.Context, id string) error
	MarkIdentifierPendingDelete(ctx context.Context, id string) error

	ProcessIdentifiersPendingCreation(ctx context.Context) error
	ProcessIdentifiersPendingUpdate(ctx context.Context) error
	RemoveIdentifiersPendingDeletion(ctx context.Context) error
	SyncKeriaIdentifiers(ctx context.Context) error

	GetAvailableWitnesses(ctx context.Context) (models.WitnessSet, error)
}

// MultisigService orchestrates group ceremonies.
type MultisigService interface {
	// CreateGroup incepts the group as its initiator. With backgroundTask
	// the call only resumes a queued attempt.
	CreateGroup(ctx context.Context, req models.CreateGroupRequest, backgroundTask bool) (string, error)
	// JoinGroup incepts the group from an incoming request, honoring the
	// thresholds the initiator broadcast.
	JoinGroup(ctx context.Context, req models.JoinGroupRequest, backgroundTask bool) (string, error)
	GetInceptionStatus(ctx context.Context, groupPrefix string) (models.InceptionStatus, error)
	GetMultisigIcpDetails(ctx context.Context, notificationSaid string) (models.MultisigIcpDetails, error)
	EndRoleAuthorization(ctx context.Context, groupPrefix string) error
	JoinAuthorization(ctx context.Context, requestExn models.Exn) error
	ProcessGroupsPendingCreation(ctx context.Context) error
}

// CredentialService handles the deletion side of held credentials.
type CredentialService interface {
	MarkCredentialPendingDelete(ctx context.Context, id string) error
	DeleteCredential(ctx context.Context, id string) error
	RemoveCredentialsPendingDeletion(ctx context.Context) error
}

// MigrationService runs versioned data migrations against the agent.
type MigrationService interface {
	RunMigrations(ctx context.Context) error
}

// MultisigServiceWrapper decorates a MultisigService, e.g. with validation.
type MultisigServiceWrapper interface {
	Wrap(MultisigService) MultisigService
}
