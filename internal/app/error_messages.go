// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// wallet services and the local control API.
//
// All Msg* constants are human-readable message strings carried by service
// errors and written into API response bodies. UI code matches them by
// exact string identity, so they must never change once released.
package app

// Validation messages. These are raised before any network call.
const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or misses required fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidThreshold is returned when a signing or rotation threshold is
	// below 1 or above the group size.
	MsgInvalidThreshold = "Invalid threshold"

	// MsgMissingGroupMetadata is returned when a member identifier has no
	// group metadata.
	MsgMissingGroupMetadata = "Identifier is missing group metadata"

	// MsgOnlyAllowGroupInitiator is returned when a non-initiator member
	// calls CreateGroup.
	MsgOnlyAllowGroupInitiator = "Only the group initiator can create the group"

	// MsgOnlyAllowLinkedContacts is returned when a prospective co-signer is
	// not tagged with the group id.
	MsgOnlyAllowLinkedContacts = "Only contacts linked to this group can be members"

	// MsgOobiInvalid is returned for a URL that is not an agent or witness
	// OOBI.
	MsgOobiInvalid = "OOBI URL is invalid"

	// MsgNormalConnectionRequiresSharedIdentifier is returned when a normal
	// invite is accepted without choosing the identifier to share.
	MsgNormalConnectionRequiresSharedIdentifier = "Shared identifier is required for a normal connection"

	// MsgInsufficientWitnessesAvailable is returned when fewer than six
	// distinct witnesses are configured on the agent.
	MsgInsufficientWitnessesAvailable = "Insufficient witnesses available"

	// MsgMisconfiguredAgentConfiguration is returned when the agent exposes
	// no usable witness configuration.
	MsgMisconfiguredAgentConfiguration = "Misconfigured agent configuration"

	// MsgCannotRotateGroup is returned when a group identifier is rotated
	// through the single-signer path.
	MsgCannotRotateGroup = "Group identifiers cannot be rotated here"
)

// Connectivity and drift messages.
const (
	// MsgKeriaConnectionBroken is returned when the cloud agent cannot be
	// reached, or the wallet is offline.
	MsgKeriaConnectionBroken = "Failed to connect through the cloud agent"

	// MsgMissingDataOnKeria is returned when a local record has no
	// counterpart on the cloud agent.
	MsgMissingDataOnKeria = "Data is missing on the cloud agent"

	// MsgFailedToResolveOobi is returned when OOBI resolution times out or is
	// rejected.
	MsgFailedToResolveOobi = "Failed to resolve OOBI"
)

// Not-found messages.
const (
	MsgIdentifierNotFound   = "Identifier not found"
	MsgIdentifierIsPending  = "Identifier is still pending creation"
	MsgConnectionNotFound   = "Connection not found"
	MsgCredentialNotFound   = "Credential not found"
	MsgNotificationNotFound = "Notification not found"

	MsgExnMessageNotFound                       = "Exchange message not found"
	MsgMemberAidNotFound                        = "None of our identifiers is a member of this group"
	MsgQueuedGroupDataMissing                   = "Queued group creation data is missing"
	MsgMultiSigInceptionExchangeMessageNotFound = "No group inception exchange messages found"
	MsgUnknownAidsInMultisigIcp                 = "Group inception request names unknown identifiers"
)

// Group ceremony conflicts.
const (
	MsgGroupQueuedForOtherMember = "A group with this name is already being created by another member identifier"
	MsgGroupInceptionMismatch    = "Rebuilt group inception does not match the requested group"
)

// MsgInternalServerError is returned by the control API when an unexpected
// failure occurs that the caller cannot resolve.
const MsgInternalServerError = "internal server error"
