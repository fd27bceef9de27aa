package keri

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-keri-wallet/models"
)

// ControllerStem is the derivation stem of the agent controller keys.
const ControllerStem = "signify:controller"

// Request signing header names understood by the agent.
const (
	HeaderResource       = "Signify-Resource"
	HeaderTimestamp      = "Signify-Timestamp"
	HeaderSignatureInput = "Signature-Input"
	HeaderSignature      = "Signature"
)

// Client is the wallet side of the agent protocol. It owns the controller
// identifier, signs every request sent to the agent and signs events for
// identifiers whose keys derive from the same passcode.
type Client struct {
	*Salter

	controller    *KeyPair
	controllerIcp models.InceptionEvent
	controllerSig string
	now           func() time.Time
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	time   uint32
	memory uint32
	now    func() time.Time
}

// WithStretchCost overrides the argon2id cost used for key derivation.
func WithStretchCost(time, memoryKiB uint32) Option {
	return func(o *clientOptions) {
		o.time, o.memory = time, memoryKiB
	}
}

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) {
		o.now = now
	}
}

// NewClient derives the controller from bran and incepts it locally.
func NewClient(bran string, opts ...Option) (*Client, error) {
	o := clientOptions{time: DefaultStretchTime, memory: DefaultStretchMemory, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	salter, err := NewSalter(bran, o.time, o.memory)
	if err != nil {
		return nil, err
	}

	st := models.SaltyState{Stem: ControllerStem}
	verfer, ndig, err := salter.Keys(st)
	if err != nil {
		return nil, fmt.Errorf("derive controller keys: %w", err)
	}

	icp, raw, err := Incept(InceptionArgs{Keys: []string{verfer}, Ndigs: []string{ndig}, Isith: 1, Nsith: 1})
	if err != nil {
		return nil, fmt.Errorf("incept controller: %w", err)
	}
	sig, err := salter.Sign(st, raw, 0)
	if err != nil {
		return nil, fmt.Errorf("sign controller inception: %w", err)
	}

	return &Client{
		Salter:        salter,
		controller:    salter.KeyPair(KeyPath(st.Stem, st.Pidx, st.Kidx)),
		controllerIcp: icp,
		controllerSig: sig,
		now:           o.now,
	}, nil
}

// ControllerPrefix is the prefix of the controller identifier.
func (c *Client) ControllerPrefix() string {
	return c.controllerIcp.I
}

// ControllerInception returns the controller inception event and its
// signature, as sent when booting a new agent.
func (c *Client) ControllerInception() (models.InceptionEvent, string) {
	return c.controllerIcp, c.controllerSig
}

// Now returns the client clock.
func (c *Client) Now() time.Time {
	return c.now()
}

// AuthenticateRequest signs the method, path and signify headers of req
// with the controller key.
func (c *Client) AuthenticateRequest(req *http.Request) error {
	now := c.now().UTC()
	timestamp := now.Format(DateTimeFormat)
	req.Header.Set(HeaderResource, c.ControllerPrefix())
	req.Header.Set(HeaderTimestamp, timestamp)

	verfer, err := c.controller.Verfer()
	if err != nil {
		return err
	}
	params := fmt.Sprintf(`("@method" "@path" "signify-resource" "signify-timestamp");created=%d;keyid="%s";alg="ed25519"`,
		now.Unix(), verfer)

	sig, err := c.controller.Sign([]byte(SignatureBase(req.Method, req.URL.Path, c.ControllerPrefix(), timestamp, params)))
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	req.Header.Set(HeaderSignatureInput, "signify="+params)
	req.Header.Set(HeaderSignature, fmt.Sprintf(`indexed="?0";signify="%s"`, sig))
	return nil
}

// SignatureBase is the string covered by a request signature.
func SignatureBase(method, path, resource, timestamp, params string) string {
	lines := []string{
		fmt.Sprintf(`"@method": %s`, method),
		fmt.Sprintf(`"@path": %s`, path),
		fmt.Sprintf(`"signify-resource": %s`, resource),
		fmt.Sprintf(`"signify-timestamp": %s`, timestamp),
		fmt.Sprintf(`"@signature-params": %s`, params),
	}
	return strings.Join(lines, "\n")
}
