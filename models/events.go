// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventType names an event published on the wallet event bus.
type EventType string

const (
	EventOperationCompleted     EventType = "OperationCompleted"
	EventOperationFailed        EventType = "OperationFailed"
	EventConnectionStateChanged EventType = "ConnectionStateChanged"
	EventConnectionRemoved      EventType = "ConnectionRemoved"
	EventIdentifierAdded        EventType = "IdentifierAdded"
	EventIdentifierRemoved      EventType = "IdentifierRemoved"
	EventGroupCreated           EventType = "GroupCreated"
	EventNotificationRemoved    EventType = "NotificationRemoved"
	EventAgentStatusChanged     EventType = "AgentStatusChanged"
	EventPeerDisconnected       EventType = "PeerDisconnected"
)

// Event is a single bus message. Payload holds one of the *Payload types.
type Event struct {
	Type    EventType
	Payload any
}

type OperationPayload struct {
	OperationID string
	RecordType  OperationRecordType
	Error       string
}

type ConnectionStatePayload struct {
	ConnectionID string
	Identifier   string
	Status       ConnectionStatus
	URL          string
}

type IdentifierPayload struct {
	Identifier IdentifierShortDetails
}

type GroupCreatedPayload struct {
	Group IdentifierShortDetails
}

type NotificationPayload struct {
	NotificationID string
}

type AgentStatusPayload struct {
	Online bool
}

type PeerDisconnectedPayload struct {
	WalletID   string
	Identifier string
}
