// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// OperationRecordType classifies a tracked long-running remote operation.
type OperationRecordType string

const (
	OperationWitness                   OperationRecordType = "witness"
	OperationGroup                     OperationRecordType = "group"
	OperationOobi                      OperationRecordType = "oobi"
	OperationExchangeReceiveCredential OperationRecordType = "exchange.receivecredential"
	OperationExchangeOfferCredential   OperationRecordType = "exchange.offercredential"
	OperationExchangePresentCredential OperationRecordType = "exchange.presentcredential"
	OperationExchangeRevokeCredential  OperationRecordType = "exchange.revokecredential"
)

// OperationMetadata carries optional context needed when the operation
// completes.
type OperationMetadata struct {
	ConnectionID string `json:"connectionId,omitempty"`
	Identifier   string `json:"identifier,omitempty"`
}

// PendingOperation is the local index entry for a remote operation that is
// not awaited synchronously.
//
// ID is the remote operation name. CorrelationID is the linked request id
// (notification said, group prefix, ...). Legacy records may have an empty
// CorrelationID and carry it only as the ".{id}" suffix of ID, so lookups by
// correlation match both.
type PendingOperation struct {
	ID            string              `json:"id"`
	RecordType    OperationRecordType `json:"recordType"`
	CorrelationID string              `json:"correlationId,omitempty"`
	Metadata      OperationMetadata   `json:"metadata"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// PendingOperationID joins a record type and a correlation id the way the
// remote agent names operations ("group.{prefix}", "witness.{prefix}").
func PendingOperationID(recordType OperationRecordType, correlationID string) string {
	return string(recordType) + "." + correlationID
}

// CorrelatesWith reports whether the operation is linked to correlationID,
// through the explicit field or the legacy id suffix.
func (o PendingOperation) CorrelatesWith(correlationID string) bool {
	if correlationID == "" {
		return false
	}
	if o.CorrelationID == correlationID {
		return true
	}
	return strings.HasSuffix(o.ID, "."+correlationID)
}
