// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is one remote party known to the local agent. A contact may be
// shared by several local identifiers through ConnectionPair records.
type Contact struct {
	ID        string    `json:"id"`
	Alias     string    `json:"alias"`
	Oobi      string    `json:"oobi"`
	GroupID   string    `json:"groupId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConnectionPair links a local identifier to a contact.
type ConnectionPair struct {
	ID              string         `json:"id"`
	ContactID       string         `json:"contactId"`
	Identifier      string         `json:"identifier"`
	CreationStatus  CreationStatus `json:"creationStatus"`
	PendingDeletion bool           `json:"pendingDeletion"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// ConnectionPairID builds the composite id "{identifier}:{contactId}".
func ConnectionPairID(identifier, contactID string) string {
	return identifier + ":" + contactID
}

// ConnectionPairFilter narrows ConnectionPairRepository.Find. Zero values
// are ignored.
type ConnectionPairFilter struct {
	ContactID       string
	Identifier      string
	CreationStatus  CreationStatus
	PendingDeletion *bool
}

// ConnectionStatus is the status reported to the UI for a connection.
type ConnectionStatus string

const (
	ConnectionStatusPending   ConnectionStatus = "pending"
	ConnectionStatusConfirmed ConnectionStatus = "confirmed"
	ConnectionStatusFailed    ConnectionStatus = "failed"
	ConnectionStatusDeleted   ConnectionStatus = "deleted"
)

// ConnectionStatusFromCreation maps a pair creation status to the status the
// UI shows.
func ConnectionStatusFromCreation(status CreationStatus) ConnectionStatus {
	switch status {
	case CreationStatusComplete:
		return ConnectionStatusConfirmed
	case CreationStatusFailed:
		return ConnectionStatusFailed
	default:
		return ConnectionStatusPending
	}
}

// ConnectionShortDetails is the list view of one (identifier, contact) pair,
// or of a group contact when Identifier is empty.
type ConnectionShortDetails struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Oobi       string           `json:"oobi"`
	GroupID    string           `json:"groupId,omitempty"`
	Identifier string           `json:"identifier,omitempty"`
	Status     ConnectionStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// NewConnectionShortDetails combines a contact with one of its pairs. pair
// may be nil for group contacts.
func NewConnectionShortDetails(contact Contact, pair *ConnectionPair) ConnectionShortDetails {
	details := ConnectionShortDetails{
		ID:        contact.ID,
		Label:     contact.Alias,
		Oobi:      contact.Oobi,
		GroupID:   contact.GroupID,
		Status:    ConnectionStatusConfirmed,
		CreatedAt: contact.CreatedAt,
	}
	if pair != nil {
		details.Identifier = pair.Identifier
		details.Status = ConnectionStatusFromCreation(pair.CreationStatus)
		details.CreatedAt = pair.CreatedAt
	}
	return details
}
