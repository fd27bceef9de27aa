// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Notification is the local copy of a remote agent notification. Said is the
// id of the linked exchange and is the correlation id of every pending
// operation spawned by it.
type Notification struct {
	ID           string    `json:"id"`
	Route        string    `json:"route"`
	Said         string    `json:"said"`
	ConnectionID string    `json:"connectionId,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CredentialMetadata is the local record of a held credential.
type CredentialMetadata struct {
	ID              string    `json:"id"`
	IdentifierID    string    `json:"identifierId"`
	ConnectionID    string    `json:"connectionId,omitempty"`
	SchemaSaid      string    `json:"schemaSaid"`
	Status          string    `json:"status"`
	IsArchived      bool      `json:"isArchived"`
	PendingDeletion bool      `json:"pendingDeletion"`
	CreatedAt       time.Time `json:"createdAt"`
}
