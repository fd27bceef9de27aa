// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DeletedNamePrefix marks identifiers that were retired by renaming them on
// the remote agent. Sync skips such names.
const DeletedNamePrefix = "XX"

// ErrInvalidIdentifierName is returned when a remote name does not follow
// the "{version}:{theme}:{displayName}" layout.
var ErrInvalidIdentifierName = errors.New("invalid identifier name")

// IdentifierName is the structured form of the name stored on the remote
// agent. Group members carry their group id and initiator flag inside the
// name so another device can rebuild GroupMetadata from it.
type IdentifierName struct {
	Version     string
	Theme       int
	DisplayName string
	Group       *GroupNameMetadata
}

// GroupNameMetadata is the group part of a member identifier name.
type GroupNameMetadata struct {
	GroupID        string
	GroupInitiator bool
}

// String renders the name as
// "{version}:{theme}:{displayName}" or
// "{version}:{theme}:{1|0}-{groupId}:{displayName}".
func (n IdentifierName) String() string {
	head := n.Version + ":" + strconv.Itoa(n.Theme) + ":"
	if n.Group == nil {
		return head + n.DisplayName
	}

	initiator := "0"
	if n.Group.GroupInitiator {
		initiator = "1"
	}
	return head + initiator + "-" + n.Group.GroupID + ":" + n.DisplayName
}

// ParseIdentifierName is the inverse of IdentifierName.String.
func ParseIdentifierName(raw string) (IdentifierName, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return IdentifierName{}, fmt.Errorf("%w: %q", ErrInvalidIdentifierName, raw)
	}

	theme, err := strconv.Atoi(parts[1])
	if err != nil {
		return IdentifierName{}, fmt.Errorf("%w: bad theme in %q", ErrInvalidIdentifierName, raw)
	}

	name := IdentifierName{Version: parts[0], Theme: theme, DisplayName: parts[2]}

	rest := parts[2]
	if len(rest) > 2 && (rest[0] == '0' || rest[0] == '1') && rest[1] == '-' {
		groupID, displayName, ok := strings.Cut(rest[2:], ":")
		if ok && groupID != "" {
			name.Group = &GroupNameMetadata{GroupID: groupID, GroupInitiator: rest[0] == '1'}
			name.DisplayName = displayName
		}
	}

	return name, nil
}

// DeletedIdentifierName renames a retired identifier so it is never picked
// up again by sync, while keeping the previous name readable.
func DeletedIdentifierName(salt, previous string) string {
	return DeletedNamePrefix + "-" + salt + ":" + previous
}

// IsDeletedIdentifierName reports whether name was produced by
// DeletedIdentifierName.
func IsDeletedIdentifierName(name string) bool {
	return strings.HasPrefix(name, DeletedNamePrefix+"-")
}
