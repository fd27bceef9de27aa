// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// Exchange routes used by the multi-signature ceremony.
const (
	RouteMultisigIcp = "/multisig/icp"
	RouteMultisigRpy = "/multisig/rpy"
	RouteMultisigRot = "/multisig/rot"
	RouteMultisigExn = "/multisig/exn"

	ExchangeTopicMultisig = "multisig"
	EndRoleAgent          = "agent"
)

// AgentConfig is returned by the remote agent's /config endpoint.
type AgentConfig struct {
	Iurls []string `json:"iurls"`
}

// OperationError is the error body of a failed remote operation.
type OperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Operation is a long-running operation as reported by the remote agent.
type Operation struct {
	Name     string          `json:"name"`
	Done     bool            `json:"done"`
	Error    *OperationError `json:"error,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}

// ErrorMessage returns the remote error text, if any.
func (o Operation) ErrorMessage() string {
	if o.Error == nil {
		return ""
	}
	return o.Error.Message
}

// ResponsePrefix extracts the subject prefix "i" from the operation
// response (OOBI resolution, inception).
func (o Operation) ResponsePrefix() string {
	if len(o.Response) == 0 {
		return ""
	}
	var r struct {
		I string `json:"i"`
	}
	if err := json.Unmarshal(o.Response, &r); err != nil {
		return ""
	}
	return r.I
}

// KeyState is the current key state of an identifier.
type KeyState struct {
	I  string    `json:"i"`
	S  string    `json:"s"`
	D  string    `json:"d"`
	Kt Threshold `json:"kt"`
	K  []string  `json:"k"`
	Nt Threshold `json:"nt"`
	N  []string  `json:"n"`
	Bt Threshold `json:"bt"`
	B  []string  `json:"b"`
	Di string    `json:"di,omitempty"`
}

// HabState is an identifier ("habitat") as listed by the remote agent.
type HabState struct {
	Name   string      `json:"name"`
	Prefix string      `json:"prefix"`
	State  KeyState    `json:"state"`
	Salty  *SaltyState `json:"salty,omitempty"`
	Group  *HabGroup   `json:"group,omitempty"`
}

// SaltyState are the key derivation parameters KERIA keeps for an
// identifier whose keys are derived from the wallet passcode.
type SaltyState struct {
	Stem string `json:"stem"`
	Pidx int    `json:"pidx"`
	Kidx int    `json:"kidx"`
	Tier string `json:"tier,omitempty"`
}

// HabGroup is present on group identifiers; Mhab is the local member.
type HabGroup struct {
	Mhab *HabState `json:"mhab,omitempty"`
}

// IsGroup reports whether the habitat is a group identifier.
func (h HabState) IsGroup() bool {
	return h.Group != nil
}

// GroupMember is one entry of the group membership lists.
type GroupMember struct {
	Aid  string                       `json:"aid"`
	Ends map[string]map[string]string `json:"ends,omitempty"`
}

// GroupMembers is returned by the members endpoint of a group identifier.
type GroupMembers struct {
	Signing  []GroupMember `json:"signing"`
	Rotation []GroupMember `json:"rotation"`
}

// SigningAids lists the signing member prefixes in order.
func (m GroupMembers) SigningAids() []string {
	aids := make([]string, 0, len(m.Signing))
	for _, s := range m.Signing {
		aids = append(aids, s.Aid)
	}
	return aids
}

// InceptionEvent is a KERI inception event (icp).
type InceptionEvent struct {
	V  string    `json:"v"`
	T  string    `json:"t"`
	D  string    `json:"d"`
	I  string    `json:"i"`
	S  string    `json:"s"`
	Kt Threshold `json:"kt"`
	K  []string  `json:"k"`
	Nt Threshold `json:"nt"`
	N  []string  `json:"n"`
	Bt Threshold `json:"bt"`
	B  []string  `json:"b"`
	C  []string  `json:"c"`
	A  []any     `json:"a"`
}

// RotationEvent is a KERI rotation event (rot).
type RotationEvent struct {
	V  string    `json:"v"`
	T  string    `json:"t"`
	D  string    `json:"d"`
	I  string    `json:"i"`
	S  string    `json:"s"`
	P  string    `json:"p"`
	Kt Threshold `json:"kt"`
	K  []string  `json:"k"`
	Nt Threshold `json:"nt"`
	N  []string  `json:"n"`
	Bt Threshold `json:"bt"`
	Br []string  `json:"br"`
	Ba []string  `json:"ba"`
	A  []any     `json:"a"`
}

// EndRoleAttributes is the payload of an end-role reply.
type EndRoleAttributes struct {
	Cid  string `json:"cid"`
	Role string `json:"role"`
	Eid  string `json:"eid"`
}

// ReplyEvent is a KERI reply (rpy) event.
type ReplyEvent struct {
	V  string            `json:"v"`
	T  string            `json:"t"`
	D  string            `json:"d"`
	Dt string            `json:"dt"`
	R  string            `json:"r"`
	A  EndRoleAttributes `json:"a"`
}

// ExnAttributes is the "a" block of a multisig exchange.
type ExnAttributes struct {
	Gid   string   `json:"gid,omitempty"`
	Smids []string `json:"smids,omitempty"`
	Rmids []string `json:"rmids,omitempty"`
}

// ExnEmbeds is the "e" block of a multisig exchange.
type ExnEmbeds struct {
	Icp *InceptionEvent `json:"icp,omitempty"`
	Rpy *ReplyEvent     `json:"rpy,omitempty"`
	D   string          `json:"d,omitempty"`
}

// Exn is a peer exchange message.
type Exn struct {
	V  string        `json:"v"`
	T  string        `json:"t"`
	D  string        `json:"d"`
	I  string        `json:"i"`
	Rp string        `json:"rp,omitempty"`
	P  string        `json:"p,omitempty"`
	Dt string        `json:"dt"`
	R  string        `json:"r"`
	A  ExnAttributes `json:"a"`
	E  ExnEmbeds     `json:"e"`
}

// ExchangeMessage wraps an exn with its attachments.
type ExchangeMessage struct {
	Exn    Exn               `json:"exn"`
	Pathed map[string]string `json:"pathed,omitempty"`
}

// GroupRequest is one entry of the group request lookup by notification said.
type GroupRequest struct {
	Exn        Exn               `json:"exn"`
	Paths      map[string]string `json:"paths,omitempty"`
	GroupName  string            `json:"groupName,omitempty"`
	MemberName string            `json:"memberName,omitempty"`
	SenderName string            `json:"sender,omitempty"`
}

// ExchangeRequest describes an outgoing peer exchange.
type ExchangeRequest struct {
	SenderPrefix string
	Topic        string
	Route        string
	Payload      ExnAttributes
	Embeds       ExnEmbeds
	// EmbedSigs are the signatures over the embedded event.
	EmbedSigs    []string
	Recipients   []string
}

// ExchangeQuery filters the exchange listing. Zero values are ignored.
type ExchangeQuery struct {
	Route   string
	GroupID string
	Sender  string
	Skip    int
	Limit   int
}

// GroupInceptionRequest is the input for building a group inception event.
type GroupInceptionRequest struct {
	Name         string
	MemberPrefix string
	States       []KeyState
	RStates      []KeyState
	Isith        Threshold
	Nsith        Threshold
	Toad         int
	Wits         []string
}

// GroupInceptionData is a built and member-signed group inception event,
// ready to be submitted. It is what the creation queue persists so a retry
// never submits a different event under the same name.
type GroupInceptionData struct {
	Name         string         `json:"name"`
	MemberPrefix string         `json:"memberPrefix"`
	Icp          InceptionEvent `json:"icp"`
	Sigs         []string       `json:"sigs"`
	Smids        []string       `json:"smids"`
	Rmids        []string       `json:"rmids"`
}

// GroupPrefix is the prefix the group will have once incepted.
func (d GroupInceptionData) GroupPrefix() string {
	return d.Icp.I
}

// EndRoleResult is returned when an end role is proposed for an identifier.
type EndRoleResult struct {
	Rpy       ReplyEvent `json:"rpy"`
	Sigs      []string   `json:"sigs"`
	Operation Operation  `json:"op"`
}

// KeriaContact is a contact object as stored on the remote agent. Besides
// the well-known keys it carries per-identifier fields namespaced as
// "{identifier}:{field}".
type KeriaContact map[string]any

const (
	ContactKeyID      = "id"
	ContactKeyAlias   = "alias"
	ContactKeyOobi    = "oobi"
	ContactKeyGroupID = "groupCreationId"

	ContactFieldCreatedAt = "createdAt"
)

func (c KeriaContact) str(key string) string {
	v, _ := c[key].(string)
	return v
}

// ID returns the contact prefix.
func (c KeriaContact) ID() string { return c.str(ContactKeyID) }

// Alias returns the contact alias.
func (c KeriaContact) Alias() string { return c.str(ContactKeyAlias) }

// Oobi returns the resolved OOBI URL.
func (c KeriaContact) Oobi() string { return c.str(ContactKeyOobi) }

// GroupID returns the group correlation id, if the contact is a group peer.
func (c KeriaContact) GroupID() string { return c.str(ContactKeyGroupID) }

// IdentifierField returns the value stored under "{identifier}:{field}".
func (c KeriaContact) IdentifierField(identifier, field string) (string, bool) {
	v, ok := c[identifier+":"+field].(string)
	return v, ok
}

// IdentifierFieldKeys returns every key namespaced to identifier.
func (c KeriaContact) IdentifierFieldKeys(identifier string) []string {
	prefix := identifier + ":"
	keys := make([]string, 0)
	for k := range c {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// ContactFieldKey builds the namespaced contact field name.
func ContactFieldKey(identifier, field string) string {
	return identifier + ":" + field
}
