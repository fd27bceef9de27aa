// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// MiscRecordID is the key of a basic key-value record.
type MiscRecordID string

const (
	MiscMultisigIdentifiersPendingCreation MiscRecordID = "multisig-identifiers-pending-creation"
	MiscIdentifiersPendingCreation         MiscRecordID = "identifiers-pending-creation"
	MiscCloudMigrationVersion              MiscRecordID = "cloud-migration-version"
	MiscConnectedWallet                    MiscRecordID = "connected-wallet"
	MiscKeriaPasscode                      MiscRecordID = "keria-passcode"
)

// BasicRecord is a JSON document stored under a MiscRecordID.
type BasicRecord struct {
	ID        MiscRecordID    `json:"id"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// GroupThreshold is the signing/rotation threshold pair of a group.
type GroupThreshold struct {
	Signing  int `json:"signingThreshold"`
	Rotation int `json:"rotationThreshold"`
}

// QueuedGroupCreation is the durable record of a group ceremony that was
// started but not yet confirmed locally. Initiator entries carry
// GroupConnections and Threshold, joiner entries carry the notification.
type QueuedGroupCreation struct {
	Name         string             `json:"name"`
	MemberPrefix string             `json:"memberPrefix"`
	Data         GroupInceptionData `json:"data"`
	Initiator    bool               `json:"initiator"`

	GroupConnections []ConnectionShortDetails `json:"groupConnections,omitempty"`
	Threshold        *GroupThreshold          `json:"threshold,omitempty"`

	NotificationID   string `json:"notificationId,omitempty"`
	NotificationSaid string `json:"notificationSaid,omitempty"`
}

// MultisigCreationQueue is the content of MiscMultisigIdentifiersPendingCreation.
type MultisigCreationQueue struct {
	Queued []QueuedGroupCreation `json:"queued"`
}

// Find returns the entry queued under name.
func (q MultisigCreationQueue) Find(name string) (QueuedGroupCreation, bool) {
	for _, item := range q.Queued {
		if item.Name == name {
			return item, true
		}
	}
	return QueuedGroupCreation{}, false
}

// Put appends entry, or replaces the entry with the same name.
func (q *MultisigCreationQueue) Put(entry QueuedGroupCreation) {
	for i, item := range q.Queued {
		if item.Name == entry.Name {
			q.Queued[i] = entry
			return
		}
	}
	q.Queued = append(q.Queued, entry)
}

// Remove drops the entry queued under name.
func (q *MultisigCreationQueue) Remove(name string) {
	kept := q.Queued[:0]
	for _, item := range q.Queued {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	q.Queued = kept
}

// IdentifierCreationQueue is the content of MiscIdentifiersPendingCreation.
type IdentifierCreationQueue struct {
	QueuedDisplayNames []string `json:"queuedDisplayNames"`
}

// Contains reports whether name is queued.
func (q IdentifierCreationQueue) Contains(name string) bool {
	for _, n := range q.QueuedDisplayNames {
		if n == name {
			return true
		}
	}
	return false
}

// Add queues name once.
func (q *IdentifierCreationQueue) Add(name string) {
	if !q.Contains(name) {
		q.QueuedDisplayNames = append(q.QueuedDisplayNames, name)
	}
}

// Remove drops name.
func (q *IdentifierCreationQueue) Remove(name string) {
	kept := q.QueuedDisplayNames[:0]
	for _, n := range q.QueuedDisplayNames {
		if n != name {
			kept = append(kept, n)
		}
	}
	q.QueuedDisplayNames = kept
}

// ConnectedWallet is the peer wallet session bound to one identifier.
type ConnectedWallet struct {
	WalletID   string `json:"walletId"`
	Identifier string `json:"identifier"`
}

// CloudMigrationState is the content of MiscCloudMigrationVersion.
type CloudMigrationState struct {
	Version int `json:"version"`
}

// SealedPasscode is the content of MiscKeriaPasscode: the KERIA passcode
// encrypted under a key derived from the wallet password.
type SealedPasscode struct {
	Salt []byte `json:"salt"`
	Blob []byte `json:"blob"`
}
