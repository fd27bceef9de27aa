package keri

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// Event type and route identifiers.
const (
	IlkIcp = "icp"
	IlkRot = "rot"
	IlkRpy = "rpy"
	IlkExn = "exn"

	RouteEndRoleAdd = "/end/role/add"
)

// DateTimeFormat is the KERI timestamp layout used in "dt" fields.
const DateTimeFormat = "2006-01-02T15:04:05.000000-07:00"

var ErrNoKeys = errors.New("event needs at least one key")

// InceptionArgs are the inputs of an inception event.
type InceptionArgs struct {
	Keys  []string
	Ndigs []string
	Isith models.Threshold
	Nsith models.Threshold
	Toad  int
	Wits  []string
}

// Incept builds a self-addressing inception event: its prefix and digest
// are both the event SAID. It returns the event and its serialization.
func Incept(args InceptionArgs) (models.InceptionEvent, []byte, error) {
	if len(args.Keys) == 0 {
		return models.InceptionEvent{}, nil, ErrNoKeys
	}

	isith := args.Isith
	if isith == 0 {
		isith = models.Threshold(max(1, (len(args.Keys)+1)/2))
	}
	nsith := args.Nsith
	if nsith == 0 && len(args.Ndigs) > 0 {
		nsith = models.Threshold(max(1, (len(args.Ndigs)+1)/2))
	}

	icp := models.InceptionEvent{
		T:  IlkIcp,
		S:  "0",
		Kt: isith,
		K:  args.Keys,
		Nt: nsith,
		N:  nonNil(args.Ndigs),
		Bt: models.Threshold(args.Toad),
		B:  nonNil(args.Wits),
		C:  []string{},
		A:  []any{},
	}

	raw, err := Saidify(&icp, func(version, said string) {
		icp.V, icp.D, icp.I = version, said, said
	})
	if err != nil {
		return models.InceptionEvent{}, nil, err
	}
	return icp, raw, nil
}

// Rotate builds a rotation event moving state to keys and committing to
// ndigs. Witnesses are left unchanged.
func Rotate(state models.KeyState, keys, ndigs []string) (models.RotationEvent, []byte, error) {
	if len(keys) == 0 {
		return models.RotationEvent{}, nil, ErrNoKeys
	}

	sn, err := strconv.ParseInt(state.S, 16, 64)
	if err != nil {
		return models.RotationEvent{}, nil, fmt.Errorf("invalid sequence number %q: %w", state.S, err)
	}

	kt := state.Nt
	if kt == 0 {
		kt = 1
	}
	rot := models.RotationEvent{
		T:  IlkRot,
		I:  state.I,
		S:  strconv.FormatInt(sn+1, 16),
		P:  state.D,
		Kt: kt,
		K:  keys,
		Nt: models.Threshold(max(1, (len(ndigs)+1)/2)),
		N:  nonNil(ndigs),
		Bt: state.Bt,
		Br: []string{},
		Ba: []string{},
		A:  []any{},
	}

	raw, err := Saidify(&rot, func(version, said string) {
		rot.V, rot.D = version, said
	})
	if err != nil {
		return models.RotationEvent{}, nil, err
	}
	return rot, raw, nil
}

// EndRoleReply builds a reply authorizing eid in role for cid.
func EndRoleReply(cid, role, eid string, now time.Time) (models.ReplyEvent, []byte, error) {
	rpy := models.ReplyEvent{
		T:  IlkRpy,
		Dt: now.UTC().Format(DateTimeFormat),
		R:  RouteEndRoleAdd,
		A:  models.EndRoleAttributes{Cid: cid, Role: role, Eid: eid},
	}

	raw, err := Saidify(&rpy, func(version, said string) {
		rpy.V, rpy.D = version, said
	})
	if err != nil {
		return models.ReplyEvent{}, nil, err
	}
	return rpy, raw, nil
}

// Exchange builds a peer exchange message from sender on route. The
// embeds block gets its own digest when it carries an event.
func Exchange(sender, route string, attrs models.ExnAttributes, embeds models.ExnEmbeds, now time.Time) (models.Exn, []byte, error) {
	if embeds.Icp != nil || embeds.Rpy != nil {
		if _, err := SaidifyBlock(&embeds, func(said string) { embeds.D = said }); err != nil {
			return models.Exn{}, nil, err
		}
	}

	exn := models.Exn{
		T:  IlkExn,
		I:  sender,
		Dt: now.UTC().Format(DateTimeFormat),
		R:  route,
		A:  attrs,
		E:  embeds,
	}

	raw, err := Saidify(&exn, func(version, said string) {
		exn.V, exn.D = version, said
	})
	if err != nil {
		return models.Exn{}, nil, err
	}
	return exn, raw, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
