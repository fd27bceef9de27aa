// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreationStatus tracks whether an inception (or OOBI resolution) has been
// confirmed by the remote agent.
type CreationStatus string

const (
	CreationStatusPending  CreationStatus = "PENDING"
	CreationStatusComplete CreationStatus = "COMPLETE"
	CreationStatusFailed   CreationStatus = "FAILED"
)

// GroupMetadata is present only on a member identifier that participates
// (or will participate) in a multi-signature group.
type GroupMetadata struct {
	// GroupID is the local correlation id shared by all members of the
	// ceremony before the group prefix exists.
	GroupID string `json:"groupId"`
	// GroupInitiator marks the member that is allowed to call CreateGroup.
	GroupInitiator bool `json:"groupInitiator"`
	// GroupCreated flips to true once this member has incepted or joined.
	GroupCreated bool `json:"groupCreated"`
}

// IdentifierMetadata is the local record kept for every identifier the wallet
// controls, single-sig, group member or group.
type IdentifierMetadata struct {
	ID              string         `json:"id"`
	DisplayName     string         `json:"displayName"`
	Theme           int            `json:"theme"`
	CreationStatus  CreationStatus `json:"creationStatus"`
	IsDeleted       bool           `json:"isDeleted"`
	PendingDeletion bool           `json:"pendingDeletion"`
	PendingUpdate   bool           `json:"pendingUpdate"`

	// GroupMetadata is set on member identifiers only.
	GroupMetadata *GroupMetadata `json:"groupMetadata,omitempty"`
	// GroupMemberPre is set on group identifiers only and points at the
	// member prefix through which the group is controlled locally.
	GroupMemberPre string `json:"groupMemberPre,omitempty"`
	// MultisigManageAid is the single-sig manager of a group, if any.
	MultisigManageAid string `json:"multisigManageAid,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsGroupMember reports whether the record is a member of a group ceremony.
func (m IdentifierMetadata) IsGroupMember() bool {
	return m.GroupMetadata != nil
}

// IsGroup reports whether the record describes a group identifier.
func (m IdentifierMetadata) IsGroup() bool {
	return m.GroupMemberPre != ""
}

// ShortDetails projects the record onto the list view shape.
func (m IdentifierMetadata) ShortDetails() IdentifierShortDetails {
	return IdentifierShortDetails{
		ID:             m.ID,
		DisplayName:    m.DisplayName,
		Theme:          m.Theme,
		CreationStatus: m.CreationStatus,
		CreatedAt:      m.CreatedAt,
		GroupMetadata:  m.GroupMetadata,
		GroupMemberPre: m.GroupMemberPre,
	}
}

// IdentifierShortDetails is returned by list operations.
type IdentifierShortDetails struct {
	ID             string         `json:"id"`
	DisplayName    string         `json:"displayName"`
	Theme          int            `json:"theme"`
	CreationStatus CreationStatus `json:"creationStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	GroupMetadata  *GroupMetadata `json:"groupMetadata,omitempty"`
	GroupMemberPre string         `json:"groupMemberPre,omitempty"`
}

// IdentifierDetails joins the local record with the key state reported by
// the remote agent.
type IdentifierDetails struct {
	IdentifierShortDetails

	SequenceNumber string    `json:"s"`
	Signing        Threshold `json:"kt"`
	Keys           []string  `json:"k"`
	NextSigning    Threshold `json:"nt"`
	NextKeys       []string  `json:"n"`
	Toad           Threshold `json:"bt"`
	Witnesses      []string  `json:"b"`
	Members        []string  `json:"members,omitempty"`
}

// CreateIdentifierInputs are the user-supplied fields of a new identifier.
type CreateIdentifierInputs struct {
	DisplayName   string         `json:"displayName"`
	Theme         int            `json:"theme"`
	GroupMetadata *GroupMetadata `json:"groupMetadata,omitempty"`
}

// CreateIdentifierResult is returned once the identifier has been submitted.
type CreateIdentifierResult struct {
	Identifier     string         `json:"identifier"`
	CreationStatus CreationStatus `json:"creationStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// IdentifierFilter narrows IdentifierRepository.Find.
type IdentifierFilter struct {
	GroupID         string
	CreationStatus  CreationStatus
	PendingDeletion *bool
	PendingUpdate   *bool
	IsDeleted       *bool
}
