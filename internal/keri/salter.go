// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keri

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-keri-wallet/models"
	"golang.org/x/crypto/argon2"
)

// BranLength is the number of passcode characters used as key material.
const BranLength = 21

// Default argon2id cost used to stretch key paths.
const (
	DefaultStretchTime   uint32 = 2
	DefaultStretchMemory uint32 = 64 * 1024
)

var (
	ErrShortPasscode   = errors.New("passcode must be at least 21 characters")
	ErrInvalidPasscode = errors.New("passcode is not valid base64url")
)

// Salter derives Ed25519 key pairs from the passcode. Every key is addressed
// by a path; the same passcode and path always produce the same key.
type Salter struct {
	salt   []byte
	time   uint32
	memory uint32

	mu    sync.Mutex
	cache map[string]*KeyPair
}

// NewSalter builds a Salter from the first [BranLength] characters of bran.
func NewSalter(bran string, time, memory uint32) (*Salter, error) {
	if len(bran) < BranLength {
		return nil, ErrShortPasscode
	}

	_, salt, err := Decode(CodeSalt128 + "A" + bran[:BranLength])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPasscode, err)
	}

	return &Salter{
		salt:   salt,
		time:   time,
		memory: memory,
		cache:  make(map[string]*KeyPair),
	}, nil
}

// KeyPath is the derivation path of key kidx of identifier pidx under stem.
func KeyPath(stem string, pidx, kidx int) string {
	return fmt.Sprintf("%s%x%x", stem, pidx, kidx)
}

// KeyPair returns the key pair at path.
func (s *Salter) KeyPair(path string) *KeyPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	if kp, ok := s.cache[path]; ok {
		return kp
	}

	seed := argon2.IDKey([]byte(path), s.salt, s.time, s.memory, 1, ed25519.SeedSize)
	kp := &KeyPair{private: ed25519.NewKeyFromSeed(seed)}
	s.cache[path] = kp
	return kp
}

// Keys returns the current verification key and the digest of the next key
// of a salty identifier.
func (s *Salter) Keys(st models.SaltyState) (string, string, error) {
	current := s.KeyPair(KeyPath(st.Stem, st.Pidx, st.Kidx))
	next := s.KeyPair(KeyPath(st.Stem, st.Pidx, st.Kidx+1))

	verfer, err := current.Verfer()
	if err != nil {
		return "", "", err
	}
	digest, err := next.NextDigest()
	if err != nil {
		return "", "", err
	}
	return verfer, digest, nil
}

// Sign signs ser with the current key of a salty identifier and returns an
// indexed signature.
func (s *Salter) Sign(st models.SaltyState, ser []byte, index int) (string, error) {
	return s.KeyPair(KeyPath(st.Stem, st.Pidx, st.Kidx)).SignIndexed(ser, index)
}

// KeyPair is an Ed25519 signing key.
type KeyPair struct {
	private ed25519.PrivateKey
}

// Public returns the raw public key.
func (k *KeyPair) Public() ed25519.PublicKey {
	return k.private.Public().(ed25519.PublicKey)
}

// Verfer returns the transferable verification key in qb64.
func (k *KeyPair) Verfer() (string, error) {
	return Encode(CodeEd25519, k.Public())
}

// NextDigest returns the digest committing to this key as a next key.
func (k *KeyPair) NextDigest() (string, error) {
	verfer, err := k.Verfer()
	if err != nil {
		return "", err
	}
	return Digest([]byte(verfer))
}

// Sign returns an unindexed signature of ser in qb64.
func (k *KeyPair) Sign(ser []byte) (string, error) {
	return Encode(CodeEd25519Sig, ed25519.Sign(k.private, ser))
}

// SignIndexed returns an indexed signature of ser in qb64.
func (k *KeyPair) SignIndexed(ser []byte, index int) (string, error) {
	return EncodeIndexedSig(ed25519.Sign(k.private, ser), index)
}
