// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OobiScanType tells the caller how an OOBI invitation was interpreted.
type OobiScanType string

const (
	OobiScanMultiSigInitiator OobiScanType = "MULTI_SIG_INITIATOR"
	OobiScanNormal            OobiScanType = "NORMAL"
)

// OobiScanResult is returned by ConnectByOobiURL.
type OobiScanResult struct {
	Type       OobiScanType           `json:"type"`
	GroupID    string                 `json:"groupId,omitempty"`
	Connection ConnectionShortDetails `json:"connection"`
}

// OOBI query parameters.
const (
	OobiParamName       = "name"
	OobiParamGroupID    = "groupId"
	OobiParamExternalID = "externalId"
)

// WitnessSet is the witness configuration used for an inception.
type WitnessSet struct {
	Toad      int      `json:"toad"`
	Witnesses []string `json:"witnesses"`
}

// CreateGroupRequest starts a group ceremony as the initiator.
type CreateGroupRequest struct {
	MemberPrefix string                   `json:"memberPrefix"`
	Connections  []ConnectionShortDetails `json:"connections"`
	Threshold    GroupThreshold           `json:"threshold"`
}

// JoinGroupRequest joins a ceremony from an incoming notification.
type JoinGroupRequest struct {
	NotificationID   string `json:"notificationId"`
	NotificationSaid string `json:"notificationSaid"`
}

// MemberStatus is the acceptance state of one group member.
type MemberStatus struct {
	AID           string `json:"aid"`
	Alias         string `json:"alias,omitempty"`
	HasAccepted   bool   `json:"hasAccepted"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// InceptionStatus aggregates the acceptance state of a group ceremony.
type InceptionStatus struct {
	Threshold GroupThreshold `json:"threshold"`
	Members   []MemberStatus `json:"members"`
}

// MultisigIcpDetails describes an incoming group inception request.
type MultisigIcpDetails struct {
	Sender           ConnectionShortDetails   `json:"sender"`
	OurIdentifier    IdentifierShortDetails   `json:"ourIdentifier"`
	OtherConnections []ConnectionShortDetails `json:"otherConnections"`
	Threshold        GroupThreshold           `json:"threshold"`
}
