// Package keri holds the small part of the KERI protocol client the wallet
// needs to talk to a KERIA agent: CESR qb64 encoding of keys, digests and
// signatures, self-addressing identifiers (SAIDs) of events and salty key
// derivation from the wallet passcode.
package keri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// CESR derivation codes used by the wallet.
const (
	CodeEd25519        = "D"  // transferable Ed25519 verification key
	CodeEd25519N       = "B"  // non-transferable Ed25519 verification key
	CodeBlake2b256     = "F"  // Blake2b-256 digest
	CodeEd25519Sig     = "0B" // unindexed Ed25519 signature
	CodeSalt128        = "0A" // 128 bit salt
	codeIndexedEd25519 = "A"  // indexed Ed25519 signature, followed by the index char
)

// rawSizes maps each fixed size code to its raw length in bytes.
var rawSizes = map[string]int{
	CodeEd25519:    32,
	CodeEd25519N:   32,
	CodeBlake2b256: 32,
	CodeEd25519Sig: 64,
	CodeSalt128:    16,
}

const b64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var (
	ErrInvalidQB64 = errors.New("invalid qb64 primitive")
	ErrCodeSize    = errors.New("code size does not match raw size")
	ErrIndexRange  = errors.New("signature index out of range")
)

// padSize is the number of lead bytes CESR prepends to raw so it encodes
// without base64 padding.
func padSize(raw []byte) int {
	return (3 - len(raw)%3) % 3
}

// Encode returns the qb64 text form of raw under code. The code length must
// equal the pad size of raw, and raw must have the code's size when the code
// is one of the known fixed size codes.
func Encode(code string, raw []byte) (string, error) {
	ps := padSize(raw)
	if size, ok := rawSizes[code]; (ok && size != len(raw)) || len(code) != ps {
		return "", fmt.Errorf("%w: code %q, raw %d bytes", ErrCodeSize, code, len(raw))
	}

	padded := make([]byte, ps+len(raw))
	copy(padded[ps:], raw)
	b64 := base64.RawURLEncoding.EncodeToString(padded)
	return code + b64[ps:], nil
}

// Decode splits a qb64 primitive into its code and raw bytes. Only the
// fixed size codes in rawSizes are accepted.
func Decode(qb64 string) (string, []byte, error) {
	if qb64 == "" {
		return "", nil, ErrInvalidQB64
	}

	cs := 1
	if qb64[0] == '0' {
		cs = 2
	}
	if len(qb64) <= cs || len(qb64)%4 != 0 {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidQB64, qb64)
	}

	code := qb64[:cs]
	size, ok := rawSizes[code]
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown code %q", ErrInvalidQB64, code)
	}

	padded, err := base64.RawURLEncoding.DecodeString(strings.Repeat("A", cs) + qb64[cs:])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidQB64, err)
	}
	if len(padded)-cs != size {
		return "", nil, fmt.Errorf("%w: code %q wants %d bytes, got %d", ErrInvalidQB64, code, size, len(padded)-cs)
	}
	return code, padded[cs:], nil
}

// EncodeIndexedSig returns an indexed Ed25519 signature in qb64. Index is
// the position of the signing key in the event's key list.
func EncodeIndexedSig(sig []byte, index int) (string, error) {
	if index < 0 || index >= len(b64Alphabet) {
		return "", fmt.Errorf("%w: %d", ErrIndexRange, index)
	}
	return Encode(codeIndexedEd25519+string(b64Alphabet[index]), sig)
}

// IndexedSigsAttachment frames indexed signatures as a controller signature
// attachment group.
func IndexedSigsAttachment(sigs []string) (string, error) {
	if len(sigs) >= len(b64Alphabet)*len(b64Alphabet) {
		return "", fmt.Errorf("%w: %d signatures", ErrIndexRange, len(sigs))
	}
	count := string(b64Alphabet[len(sigs)/64]) + string(b64Alphabet[len(sigs)%64])
	return "-A" + count + strings.Join(sigs, ""), nil
}
