// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the wallet's gateway to its cloud agent (KERIA).
//
// The primary abstraction is [KeriaAdapter], which decouples the service layer
// from the agent's REST protocol. The package ships an HTTP implementation
// ([NewHTTPKeriaAdapter]) that signs every request and every event with a
// [ProtocolClient].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrNetwork] when the agent is
// unreachable).
package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-keri-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keria_adapter_mock.go -package=mock

// KeriaAdapter is the set of agent operations the wallet services rely on.
// Implementations map transport failures to [ErrNetwork] and HTTP statuses to
// the sentinel errors of this package.
type KeriaAdapter interface {
	// Connect authenticates against the agent, booting a fresh agent first
	// when the controller is unknown and a boot URL is configured.
	Connect(ctx context.Context) error
	// AgentPrefix is the agent identifier learned by Connect.
	AgentPrefix() string
	// GetConfig returns the agent configuration (witness introduction URLs).
	GetConfig(ctx context.Context) (models.AgentConfig, error)

	ListIdentifiers(ctx context.Context) ([]models.HabState, error)
	GetIdentifier(ctx context.Context, prefix string) (models.HabState, error)
	// CreateIdentifier incepts a single-signature identifier named name with
	// the given witnesses and returns its prefix and the inception operation.
	CreateIdentifier(ctx context.Context, name string, wits models.WitnessSet) (string, models.Operation, error)
	RenameIdentifier(ctx context.Context, prefix, name string) error
	RotateIdentifier(ctx context.Context, prefix string) (models.Operation, error)

	GetMembers(ctx context.Context, groupPrefix string) (models.GroupMembers, error)
	GetKeyStates(ctx context.Context, prefixes []string) ([]models.KeyState, error)
	// BuildGroupInception builds the group inception event and signs it with
	// the local member's key. Nothing is sent to the agent.
	BuildGroupInception(ctx context.Context, req models.GroupInceptionRequest) (models.GroupInceptionData, error)
	SubmitGroupInception(ctx context.Context, data models.GroupInceptionData) (models.Operation, error)
	// AddEndRole authorizes eid in role for prefix. For a group prefix the
	// reply is signed by the local member only. A non-zero stamp reproduces a
	// reply another member already proposed.
	AddEndRole(ctx context.Context, prefix, role, eid string, stamp time.Time) (models.EndRoleResult, error)

	SendExchange(ctx context.Context, req models.ExchangeRequest) (models.ExchangeMessage, error)
	GetExchange(ctx context.Context, said string) (models.ExchangeMessage, error)
	QueryExchanges(ctx context.Context, query models.ExchangeQuery) ([]models.ExchangeMessage, error)
	GetGroupRequest(ctx context.Context, said string) ([]models.GroupRequest, error)

	ListContacts(ctx context.Context) ([]models.KeriaContact, error)
	GetContact(ctx context.Context, id string) (models.KeriaContact, error)
	// UpdateContact merges fields into the contact. A nil value removes the
	// field.
	UpdateContact(ctx context.Context, id string, fields map[string]any) error
	// DeleteContact removes a contact. A contact already gone is not an error.
	DeleteContact(ctx context.Context, id string) error

	GetOobi(ctx context.Context, prefix, role string) ([]string, error)
	ResolveOobi(ctx context.Context, url, alias string) (models.Operation, error)

	GetOperation(ctx context.Context, name string) (models.Operation, error)
	DeleteOperation(ctx context.Context, name string) error

	MarkNotification(ctx context.Context, id string) error
	DeleteCredential(ctx context.Context, said string) error
}

// ProtocolClient is the signing side of the agent protocol: it owns the
// controller identifier and the keys of identifiers derived from the wallet
// passcode. *keri.Client implements it.
type ProtocolClient interface {
	ControllerPrefix() string
	ControllerInception() (models.InceptionEvent, string)
	AuthenticateRequest(req *http.Request) error
	// Keys returns the current verification key and the next key digest of a
	// salty identifier.
	Keys(st models.SaltyState) (string, string, error)
	// Sign returns the indexed signature of ser by the current key of st.
	Sign(st models.SaltyState, ser []byte, index int) (string, error)
	Now() time.Time
}
