// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// OobiKind is the addressing shape of an OOBI URL.
type OobiKind string

const (
	OobiKindAgent   OobiKind = "agent"
	OobiKindWitness OobiKind = "witness"
)

var (
	agentOobiPath   = regexp.MustCompile(`/oobi/([^/]+)/agent/([^/]+)/?$`)
	witnessOobiPath = regexp.MustCompile(`/oobi/([^/]+)/witness(?:/([^/]+))?/?$`)
	// bare /oobi/{aid}: agent-only, the endpoint is left to the agent.
	bareOobiPath = regexp.MustCompile(`/oobi/([^/]+)/?$`)
)

// OobiURL is a raw out-of-band introduction URL to validate.
type OobiURL string

// Oobi is a parsed OOBI URL.
type Oobi struct {
	URL  *url.URL
	Kind OobiKind
	// Prefix is the identifier named in the path. Group invites may address
	// the group differently, so it is only a hint.
	Prefix string
	// Endpoint is the agent or witness prefix, if present.
	Endpoint string

	Name       string
	GroupID    string
	ExternalID string
}

// ParseOobi checks raw against the agent, bare agent-only and witness OOBI
// shapes and extracts its query parameters. The name is returned decoded.
func ParseOobi(raw string) (Oobi, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Oobi{}, fmt.Errorf("%w: %q", ErrOobiInvalid, raw)
	}

	o := Oobi{URL: u}
	if m := agentOobiPath.FindStringSubmatch(u.Path); m != nil {
		o.Kind, o.Prefix, o.Endpoint = OobiKindAgent, m[1], m[2]
	} else if m = witnessOobiPath.FindStringSubmatch(u.Path); m != nil {
		o.Kind, o.Prefix, o.Endpoint = OobiKindWitness, m[1], m[2]
	} else if m = bareOobiPath.FindStringSubmatch(u.Path); m != nil {
		o.Kind, o.Prefix = OobiKindAgent, m[1]
	} else {
		return Oobi{}, fmt.Errorf("%w: %q", ErrOobiInvalid, raw)
	}

	q := u.Query()
	o.Name = q.Get(models.OobiParamName)
	o.GroupID = q.Get(models.OobiParamGroupID)
	o.ExternalID = q.Get(models.OobiParamExternalID)
	return o, nil
}

// IsGroupInvite reports whether the OOBI carries a group id.
func (o Oobi) IsGroupInvite() bool {
	return o.GroupID != ""
}

// WithoutName returns the URL with the local-only name parameter removed.
func (o Oobi) WithoutName() string {
	u := *o.URL
	q := u.Query()
	q.Del(models.OobiParamName)
	u.RawQuery = q.Encode()
	return u.String()
}
