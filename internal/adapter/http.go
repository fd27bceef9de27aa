package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/keri"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/utils"
	"github.com/MKhiriev/go-keri-wallet/models"
	"github.com/go-resty/resty/v2"
)

const (
	identifierStemPrefix = "signify:aid:"
	saltTier             = "low"
	identifiersPageSize  = 25
)

type httpKeriaAdapter struct {
	client *utils.HTTPClient
	boot   *utils.HTTPClient

	protocol ProtocolClient

	mu          sync.RWMutex
	agentPrefix string

	logger *logger.Logger
}

// NewHTTPKeriaAdapter constructs an HTTP/REST implementation of [KeriaAdapter].
// It normalises and validates the agent and boot URLs from cfg and installs a
// pre-request hook that signs every request with protocol.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL, or
// if a non-empty cfg.BootURL is invalid.
func NewHTTPKeriaAdapter(cfg config.WalletKeria, protocol ProtocolClient, logger *logger.Logger) (KeriaAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid keria url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
		return protocol.AuthenticateRequest(req)
	})

	a := &httpKeriaAdapter{client: client, protocol: protocol, logger: logger}

	if strings.TrimSpace(cfg.BootURL) != "" {
		bootURL, err := normalizeBaseURL(cfg.BootURL)
		if err != nil {
			return nil, fmt.Errorf("invalid keria boot url: %w", err)
		}
		a.boot = utils.NewHTTPClient(bootURL, cfg.RequestTimeout)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Connect implements [KeriaAdapter]. It reads GET /agent/{controller}; on 404
// it boots a new agent through the boot URL and reads the state again.
func (h *httpKeriaAdapter) Connect(ctx context.Context) error {
	controller := h.protocol.ControllerPrefix()

	var state agentState
	err := h.do(ctx, "connect", http.MethodGet, "/agent/"+url.PathEscape(controller), nil, &state)
	if errors.Is(err, ErrNotFound) {
		if err = h.bootAgent(ctx); err != nil {
			return err
		}
		err = h.do(ctx, "connect", http.MethodGet, "/agent/"+url.PathEscape(controller), nil, &state)
	}
	if err != nil {
		return err
	}
	if state.Agent.I == "" {
		return fmt.Errorf("connect: %w: missing agent prefix", ErrUnexpectedPayload)
	}

	h.mu.Lock()
	h.agentPrefix = state.Agent.I
	h.mu.Unlock()

	h.logger.Debug().
		Str("func", "httpKeriaAdapter.Connect").
		Str("controller", controller).
		Str("agent", state.Agent.I).
		Msg("connected to agent")
	return nil
}

func (h *httpKeriaAdapter) bootAgent(ctx context.Context) error {
	if h.boot == nil {
		return ErrNoBootURL
	}

	icp, sig := h.protocol.ControllerInception()
	body := bootRequest{Icp: icp, Sig: sig, Stem: keri.ControllerStem, Pidx: 1, Tier: saltTier}

	resp, err := h.boot.R().SetContext(ctx).SetBody(body).Post("/boot")
	if err != nil {
		return transportError("boot agent", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("boot agent: %w", err)
	}

	h.logger.Info().
		Str("func", "httpKeriaAdapter.bootAgent").
		Str("controller", icp.I).
		Msg("booted new agent")
	return nil
}

// AgentPrefix implements [KeriaAdapter].
func (h *httpKeriaAdapter) AgentPrefix() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.agentPrefix
}

// GetConfig implements [KeriaAdapter] via GET /config.
func (h *httpKeriaAdapter) GetConfig(ctx context.Context) (models.AgentConfig, error) {
	var cfg models.AgentConfig
	err := h.do(ctx, "get config", http.MethodGet, "/config", nil, &cfg)
	return cfg, err
}

// ListIdentifiers implements [KeriaAdapter]. It pages through GET /identifiers
// using the aids range header.
func (h *httpKeriaAdapter) ListIdentifiers(ctx context.Context) ([]models.HabState, error) {
	habs := make([]models.HabState, 0)
	for start := 0; ; start += identifiersPageSize {
		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("Range", fmt.Sprintf("aids=%d-%d", start, start+identifiersPageSize-1)).
			Get("/identifiers")
		if err != nil {
			return nil, transportError("list identifiers", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, fmt.Errorf("list identifiers: %w", err)
		}

		var page []models.HabState
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("decode identifiers: %w", err)
		}
		habs = append(habs, page...)

		if len(page) < identifiersPageSize {
			return habs, nil
		}
	}
}

// GetIdentifier implements [KeriaAdapter] via GET /identifiers/{prefix}.
func (h *httpKeriaAdapter) GetIdentifier(ctx context.Context, prefix string) (models.HabState, error) {
	var hab models.HabState
	err := h.do(ctx, "get identifier", http.MethodGet, "/identifiers/"+url.PathEscape(prefix), nil, &hab)
	return hab, err
}

// CreateIdentifier implements [KeriaAdapter]. Keys are derived under a fresh
// stem so every identifier has its own key sequence; the salty parameters are
// stored on the agent with the inception.
func (h *httpKeriaAdapter) CreateIdentifier(ctx context.Context, name string, wits models.WitnessSet) (string, models.Operation, error) {
	suffix, err := utils.RandomBase58(12)
	if err != nil {
		return "", models.Operation{}, err
	}
	st := models.SaltyState{Stem: identifierStemPrefix + suffix, Tier: saltTier}

	verfer, ndig, err := h.protocol.Keys(st)
	if err != nil {
		return "", models.Operation{}, fmt.Errorf("derive keys: %w", err)
	}

	icp, raw, err := keri.Incept(keri.InceptionArgs{
		Keys:  []string{verfer},
		Ndigs: []string{ndig},
		Isith: 1,
		Nsith: 1,
		Toad:  wits.Toad,
		Wits:  wits.Witnesses,
	})
	if err != nil {
		return "", models.Operation{}, err
	}

	sig, err := h.protocol.Sign(st, raw, 0)
	if err != nil {
		return "", models.Operation{}, fmt.Errorf("sign inception: %w", err)
	}

	body := createIdentifierRequest{Name: name, Icp: icp, Sigs: []string{sig}, Salty: &st}

	var op models.Operation
	if err = h.do(ctx, "create identifier", http.MethodPost, "/identifiers", body, &op); err != nil {
		return "", models.Operation{}, err
	}
	return icp.I, op, nil
}

// RenameIdentifier implements [KeriaAdapter] via PUT /identifiers/{prefix}.
func (h *httpKeriaAdapter) RenameIdentifier(ctx context.Context, prefix, name string) error {
	body := map[string]string{"name": name}
	return h.do(ctx, "rename identifier", http.MethodPut, "/identifiers/"+url.PathEscape(prefix), body, nil)
}

// RotateIdentifier implements [KeriaAdapter]. It advances the salty key index
// and posts the signed rotation to /identifiers/{name}/events.
func (h *httpKeriaAdapter) RotateIdentifier(ctx context.Context, prefix string) (models.Operation, error) {
	hab, err := h.GetIdentifier(ctx, prefix)
	if err != nil {
		return models.Operation{}, err
	}
	if hab.Salty == nil {
		return models.Operation{}, fmt.Errorf("rotate %s: %w", prefix, ErrNoSaltyState)
	}

	next := *hab.Salty
	next.Kidx++

	verfer, ndig, err := h.protocol.Keys(next)
	if err != nil {
		return models.Operation{}, fmt.Errorf("derive keys: %w", err)
	}

	rot, raw, err := keri.Rotate(hab.State, []string{verfer}, []string{ndig})
	if err != nil {
		return models.Operation{}, err
	}

	sig, err := h.protocol.Sign(next, raw, 0)
	if err != nil {
		return models.Operation{}, fmt.Errorf("sign rotation: %w", err)
	}

	body := rotateIdentifierRequest{Rot: rot, Sigs: []string{sig}, Salty: &next}

	var op models.Operation
	err = h.do(ctx, "rotate identifier", http.MethodPost, identifierPath(hab.Name, "events"), body, &op)
	return op, err
}

// GetMembers implements [KeriaAdapter] via GET /identifiers/{prefix}/members.
func (h *httpKeriaAdapter) GetMembers(ctx context.Context, groupPrefix string) (models.GroupMembers, error) {
	var members models.GroupMembers
	err := h.do(ctx, "get members", http.MethodGet, identifierPath(groupPrefix, "members"), nil, &members)
	return members, err
}

// GetKeyStates implements [KeriaAdapter] via GET /states?pre=...
func (h *httpKeriaAdapter) GetKeyStates(ctx context.Context, prefixes []string) ([]models.KeyState, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(url.Values{"pre": prefixes}).
		Get("/states")
	if err != nil {
		return nil, transportError("get key states", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get key states: %w", err)
	}

	var states []models.KeyState
	if err = json.Unmarshal(resp.Body(), &states); err != nil {
		return nil, fmt.Errorf("decode key states: %w", err)
	}
	return states, nil
}

// BuildGroupInception implements [KeriaAdapter]. The signing keys come from
// req.States, the next key digests from req.RStates; the local member signs at
// its position in the signing list.
func (h *httpKeriaAdapter) BuildGroupInception(ctx context.Context, req models.GroupInceptionRequest) (models.GroupInceptionData, error) {
	mhab, err := h.GetIdentifier(ctx, req.MemberPrefix)
	if err != nil {
		return models.GroupInceptionData{}, err
	}
	if mhab.Salty == nil {
		return models.GroupInceptionData{}, fmt.Errorf("member %s: %w", req.MemberPrefix, ErrNoSaltyState)
	}

	smids := statePrefixes(req.States)
	rmids := statePrefixes(req.RStates)
	index := slices.Index(smids, req.MemberPrefix)
	if index < 0 {
		return models.GroupInceptionData{}, ErrMemberNotInGroup
	}

	keys := make([]string, 0, len(req.States))
	for _, s := range req.States {
		if len(s.K) == 0 {
			return models.GroupInceptionData{}, fmt.Errorf("%w: %s has no current key", ErrUnexpectedPayload, s.I)
		}
		keys = append(keys, s.K[0])
	}
	ndigs := make([]string, 0, len(req.RStates))
	for _, s := range req.RStates {
		if len(s.N) == 0 {
			return models.GroupInceptionData{}, fmt.Errorf("%w: %s has no next key digest", ErrUnexpectedPayload, s.I)
		}
		ndigs = append(ndigs, s.N[0])
	}

	icp, raw, err := keri.Incept(keri.InceptionArgs{
		Keys:  keys,
		Ndigs: ndigs,
		Isith: req.Isith,
		Nsith: req.Nsith,
		Toad:  req.Toad,
		Wits:  req.Wits,
	})
	if err != nil {
		return models.GroupInceptionData{}, err
	}

	sig, err := h.protocol.Sign(*mhab.Salty, raw, index)
	if err != nil {
		return models.GroupInceptionData{}, fmt.Errorf("sign group inception: %w", err)
	}

	return models.GroupInceptionData{
		Name:         req.Name,
		MemberPrefix: req.MemberPrefix,
		Icp:          icp,
		Sigs:         []string{sig},
		Smids:        smids,
		Rmids:        rmids,
	}, nil
}

// SubmitGroupInception implements [KeriaAdapter] via POST /identifiers with
// the group block naming the local member.
func (h *httpKeriaAdapter) SubmitGroupInception(ctx context.Context, data models.GroupInceptionData) (models.Operation, error) {
	mhab, err := h.GetIdentifier(ctx, data.MemberPrefix)
	if err != nil {
		return models.Operation{}, err
	}

	body := createIdentifierRequest{
		Name: data.Name,
		Icp:  data.Icp,
		Sigs: data.Sigs,
		Group: &groupBlock{
			Mhab:  mhab,
			Keys:  data.Icp.K,
			Ndigs: data.Icp.N,
		},
		Smids: data.Smids,
		Rmids: data.Rmids,
	}

	var op models.Operation
	err = h.do(ctx, "submit group inception", http.MethodPost, "/identifiers", body, &op)
	return op, err
}

// AddEndRole implements [KeriaAdapter] via POST /identifiers/{name}/endroles.
func (h *httpKeriaAdapter) AddEndRole(ctx context.Context, prefix, role, eid string, stamp time.Time) (models.EndRoleResult, error) {
	hab, err := h.GetIdentifier(ctx, prefix)
	if err != nil {
		return models.EndRoleResult{}, err
	}

	st, index, err := h.signingState(ctx, hab)
	if err != nil {
		return models.EndRoleResult{}, err
	}

	if stamp.IsZero() {
		stamp = h.protocol.Now()
	}

	rpy, raw, err := keri.EndRoleReply(hab.Prefix, role, eid, stamp)
	if err != nil {
		return models.EndRoleResult{}, err
	}

	sig, err := h.protocol.Sign(st, raw, index)
	if err != nil {
		return models.EndRoleResult{}, fmt.Errorf("sign end role: %w", err)
	}

	body := endRoleRequest{Rpy: rpy, Sigs: []string{sig}}

	var op models.Operation
	if err = h.do(ctx, "add end role", http.MethodPost, identifierPath(hab.Name, "endroles"), body, &op); err != nil {
		return models.EndRoleResult{}, err
	}
	return models.EndRoleResult{Rpy: rpy, Sigs: body.Sigs, Operation: op}, nil
}

// signingState returns the salty state that signs for hab and the index of
// its key. For a group it is the local member's key within the group keys.
func (h *httpKeriaAdapter) signingState(ctx context.Context, hab models.HabState) (models.SaltyState, int, error) {
	if !hab.IsGroup() {
		if hab.Salty == nil {
			return models.SaltyState{}, 0, fmt.Errorf("%s: %w", hab.Prefix, ErrNoSaltyState)
		}
		return *hab.Salty, 0, nil
	}

	if hab.Group.Mhab == nil {
		return models.SaltyState{}, 0, ErrMemberNotInGroup
	}
	mhab := *hab.Group.Mhab
	if mhab.Salty == nil {
		full, err := h.GetIdentifier(ctx, mhab.Prefix)
		if err != nil {
			return models.SaltyState{}, 0, err
		}
		mhab = full
	}
	if mhab.Salty == nil || len(mhab.State.K) == 0 {
		return models.SaltyState{}, 0, fmt.Errorf("%s: %w", mhab.Prefix, ErrNoSaltyState)
	}

	index := slices.Index(hab.State.K, mhab.State.K[0])
	if index < 0 {
		return models.SaltyState{}, 0, ErrMemberNotInGroup
	}
	return *mhab.Salty, index, nil
}

// SendExchange implements [KeriaAdapter] via
// POST /identifiers/{name}/exchanges.
func (h *httpKeriaAdapter) SendExchange(ctx context.Context, req models.ExchangeRequest) (models.ExchangeMessage, error) {
	sender, err := h.GetIdentifier(ctx, req.SenderPrefix)
	if err != nil {
		return models.ExchangeMessage{}, err
	}

	st, index, err := h.signingState(ctx, sender)
	if err != nil {
		return models.ExchangeMessage{}, err
	}

	exn, raw, err := keri.Exchange(sender.Prefix, req.Route, req.Payload, req.Embeds, h.protocol.Now())
	if err != nil {
		return models.ExchangeMessage{}, err
	}

	sig, err := h.protocol.Sign(st, raw, index)
	if err != nil {
		return models.ExchangeMessage{}, fmt.Errorf("sign exchange: %w", err)
	}

	atc := ""
	if len(req.EmbedSigs) > 0 {
		if atc, err = keri.IndexedSigsAttachment(req.EmbedSigs); err != nil {
			return models.ExchangeMessage{}, err
		}
	}

	body := exchangeRequest{Topic: req.Topic, Exn: exn, Sigs: []string{sig}, Atc: atc, Rec: req.Recipients}
	if err = h.do(ctx, "send exchange", http.MethodPost, identifierPath(sender.Name, "exchanges"), body, nil); err != nil {
		return models.ExchangeMessage{}, err
	}

	msg := models.ExchangeMessage{Exn: exn}
	if atc != "" {
		msg.Pathed = map[string]string{embedPath(req.Embeds): atc}
	}
	return msg, nil
}

// GetExchange implements [KeriaAdapter] via GET /exchanges/{said}.
func (h *httpKeriaAdapter) GetExchange(ctx context.Context, said string) (models.ExchangeMessage, error) {
	var msg models.ExchangeMessage
	err := h.do(ctx, "get exchange", http.MethodGet, "/exchanges/"+url.PathEscape(said), nil, &msg)
	return msg, err
}

// QueryExchanges implements [KeriaAdapter] via POST /exchanges/query.
func (h *httpKeriaAdapter) QueryExchanges(ctx context.Context, query models.ExchangeQuery) ([]models.ExchangeMessage, error) {
	filter := make(map[string]string)
	if query.Route != "" {
		filter["-r"] = query.Route
	}
	if query.GroupID != "" {
		filter["-a-gid"] = query.GroupID
	}
	if query.Sender != "" {
		filter["-i"] = query.Sender
	}

	body := exchangeQueryRequest{Filter: filter, Skip: query.Skip, Limit: query.Limit}

	msgs := make([]models.ExchangeMessage, 0)
	err := h.do(ctx, "query exchanges", http.MethodPost, "/exchanges/query", body, &msgs)
	return msgs, err
}

// GetGroupRequest implements [KeriaAdapter] via GET /multisig/request/{said}.
func (h *httpKeriaAdapter) GetGroupRequest(ctx context.Context, said string) ([]models.GroupRequest, error) {
	reqs := make([]models.GroupRequest, 0)
	err := h.do(ctx, "get group request", http.MethodGet, "/multisig/request/"+url.PathEscape(said), nil, &reqs)
	return reqs, err
}

// ListContacts implements [KeriaAdapter] via GET /contacts.
func (h *httpKeriaAdapter) ListContacts(ctx context.Context) ([]models.KeriaContact, error) {
	contacts := make([]models.KeriaContact, 0)
	err := h.do(ctx, "list contacts", http.MethodGet, "/contacts", nil, &contacts)
	return contacts, err
}

// GetContact implements [KeriaAdapter] via GET /contacts/{id}.
func (h *httpKeriaAdapter) GetContact(ctx context.Context, id string) (models.KeriaContact, error) {
	var contact models.KeriaContact
	err := h.do(ctx, "get contact", http.MethodGet, "/contacts/"+url.PathEscape(id), nil, &contact)
	return contact, err
}

// UpdateContact implements [KeriaAdapter] via PUT /contacts/{id}. Nil values
// are sent as JSON null, which the agent treats as removal.
func (h *httpKeriaAdapter) UpdateContact(ctx context.Context, id string, fields map[string]any) error {
	return h.do(ctx, "update contact", http.MethodPut, "/contacts/"+url.PathEscape(id), fields, nil)
}

// DeleteContact implements [KeriaAdapter] via DELETE /contacts/{id}.
func (h *httpKeriaAdapter) DeleteContact(ctx context.Context, id string) error {
	err := h.do(ctx, "delete contact", http.MethodDelete, "/contacts/"+url.PathEscape(id), nil, nil)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// GetOobi implements [KeriaAdapter] via GET /identifiers/{prefix}/oobis.
func (h *httpKeriaAdapter) GetOobi(ctx context.Context, prefix, role string) ([]string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("role", role).
		Get(identifierPath(prefix, "oobis"))
	if err != nil {
		return nil, transportError("get oobi", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("get oobi: %w", err)
	}

	var result oobiResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode oobis: %w", err)
	}
	return result.Oobis, nil
}

// ResolveOobi implements [KeriaAdapter] via POST /oobis.
func (h *httpKeriaAdapter) ResolveOobi(ctx context.Context, oobi, alias string) (models.Operation, error) {
	body := resolveOobiRequest{URL: oobi, Alias: alias}

	var op models.Operation
	err := h.do(ctx, "resolve oobi", http.MethodPost, "/oobis", body, &op)
	return op, err
}

// GetOperation implements [KeriaAdapter] via GET /operations/{name}.
func (h *httpKeriaAdapter) GetOperation(ctx context.Context, name string) (models.Operation, error) {
	var op models.Operation
	err := h.do(ctx, "get operation", http.MethodGet, "/operations/"+url.PathEscape(name), nil, &op)
	return op, err
}

// DeleteOperation implements [KeriaAdapter] via DELETE /operations/{name}.
func (h *httpKeriaAdapter) DeleteOperation(ctx context.Context, name string) error {
	return h.do(ctx, "delete operation", http.MethodDelete, "/operations/"+url.PathEscape(name), nil, nil)
}

// MarkNotification implements [KeriaAdapter] via PUT /notifications/{id}.
func (h *httpKeriaAdapter) MarkNotification(ctx context.Context, id string) error {
	return h.do(ctx, "mark notification", http.MethodPut, "/notifications/"+url.PathEscape(id), nil, nil)
}

// DeleteCredential implements [KeriaAdapter] via DELETE /credentials/{said}.
func (h *httpKeriaAdapter) DeleteCredential(ctx context.Context, said string) error {
	return h.do(ctx, "delete credential", http.MethodDelete, "/credentials/"+url.PathEscape(said), nil, nil)
}

// do sends a request to the agent and decodes a successful JSON response into
// result when result is non-nil.
func (h *httpKeriaAdapter) do(ctx context.Context, op, method, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func identifierPath(nameOrPrefix, sub string) string {
	return "/identifiers/" + url.PathEscape(nameOrPrefix) + "/" + sub
}

func statePrefixes(states []models.KeyState) []string {
	prefixes := make([]string, 0, len(states))
	for _, s := range states {
		prefixes = append(prefixes, s.I)
	}
	return prefixes
}

func embedPath(e models.ExnEmbeds) string {
	switch {
	case e.Icp != nil:
		return "icp"
	case e.Rpy != nil:
		return "rpy"
	default:
		return ""
	}
}

type agentState struct {
	Agent struct {
		I string `json:"i"`
	} `json:"agent"`
	Controller struct {
		State models.KeyState `json:"state"`
	} `json:"controller"`
}

type bootRequest struct {
	Icp  models.InceptionEvent `json:"icp"`
	Sig  string                `json:"sig"`
	Stem string                `json:"stem"`
	Pidx int                   `json:"pidx"`
	Tier string                `json:"tier"`
}

type groupBlock struct {
	Mhab  models.HabState `json:"mhab"`
	Keys  []string        `json:"keys"`
	Ndigs []string        `json:"ndigs"`
}

type createIdentifierRequest struct {
	Name  string                `json:"name"`
	Icp   models.InceptionEvent `json:"icp"`
	Sigs  []string              `json:"sigs"`
	Salty *models.SaltyState    `json:"salty,omitempty"`
	Group *groupBlock           `json:"group,omitempty"`
	Smids []string              `json:"smids,omitempty"`
	Rmids []string              `json:"rmids,omitempty"`
}

type rotateIdentifierRequest struct {
	Rot   models.RotationEvent `json:"rot"`
	Sigs  []string             `json:"sigs"`
	Salty *models.SaltyState   `json:"salty,omitempty"`
}

type endRoleRequest struct {
	Rpy  models.ReplyEvent `json:"rpy"`
	Sigs []string          `json:"sigs"`
}

type exchangeRequest struct {
	Topic string     `json:"tpc"`
	Exn   models.Exn `json:"exn"`
	Sigs  []string   `json:"sigs"`
	Atc   string     `json:"atc"`
	Rec   []string   `json:"rec"`
}

type exchangeQueryRequest struct {
	Filter map[string]string `json:"filter"`
	Skip   int               `json:"skip,omitempty"`
	Limit  int               `json:"limit,omitempty"`
}

type resolveOobiRequest struct {
	URL   string `json:"url"`
	Alias string `json:"oobialias,omitempty"`
}

type oobiResponse struct {
	Role  string   `json:"role"`
	Oobis []string `json:"oobis"`
}
