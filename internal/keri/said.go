package keri

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	versionFormat = "KERI10JSON%06x_"
	saidLength    = 44
)

var saidPlaceholder = strings.Repeat("#", saidLength)

// Version returns the KERI version string for a JSON serialization of size
// bytes.
func Version(size int) string {
	return fmt.Sprintf(versionFormat, size)
}

// Saidify computes the version string and self-addressing digest of event
// and returns its final serialization. set must store the version and the
// digest in every self-addressing field of event. It is first called with a
// placeholder of the digest's length so the serialization size is stable.
func Saidify(event any, set func(version, said string)) ([]byte, error) {
	set(Version(0), saidPlaceholder)
	raw, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("serialize event: %w", err)
	}

	version := Version(len(raw))
	said, err := digestWith(event, func(d string) { set(version, d) })
	if err != nil {
		return nil, err
	}

	set(version, said)
	return json.Marshal(event)
}

// SaidifyBlock computes the digest of a block that has a "d" field but no
// version string, such as the embeds of an exchange message.
func SaidifyBlock(block any, set func(said string)) (string, error) {
	said, err := digestWith(block, set)
	if err != nil {
		return "", err
	}
	set(said)
	return said, nil
}

func digestWith(event any, set func(said string)) (string, error) {
	set(saidPlaceholder)
	raw, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("serialize event: %w", err)
	}
	return Digest(raw)
}

// Digest returns the Blake2b-256 digest of raw in qb64.
func Digest(raw []byte) (string, error) {
	sum := blake2b.Sum256(raw)
	return Encode(CodeBlake2b256, sum[:])
}
