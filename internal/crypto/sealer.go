// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-keri-wallet/models"
)

var (
	// ErrWrongPassword is returned by [Sealer.Open] when the GCM tag does not
	// verify, which in practice means the password is wrong.
	ErrWrongPassword = errors.New("wrong password")
	// ErrEmptyPassword is returned when sealing or opening without a password.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrMalformedSealedPasscode is returned for a blob shorter than the nonce.
	ErrMalformedSealedPasscode = errors.New("malformed sealed passcode")
)

const saltSize = 16

// argonSealer is the private implementation of [Sealer].
type argonSealer struct {
	// Argon2id tuning parameters, adjustable per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer() Sealer {
	return &argonSealer{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

func (s *argonSealer) Seal(passcode, password string) (models.SealedPasscode, error) {
	if password == "" {
		return models.SealedPasscode{}, ErrEmptyPassword
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.SealedPasscode{}, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.aead(password, salt)
	if err != nil {
		return models.SealedPasscode{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return models.SealedPasscode{}, fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, []byte(passcode), nil)
	return models.SealedPasscode{Salt: salt, Blob: blob}, nil
}

func (s *argonSealer) Open(sealed models.SealedPasscode, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	gcm, err := s.aead(password, sealed.Salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed.Blob) < nonceSize {
		return "", ErrMalformedSealedPasscode
	}
	nonce, ciphertext := sealed.Blob[:nonceSize], sealed.Blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrongPassword, err)
	}
	return string(plaintext), nil
}

// aead derives the KEK from password and salt and wraps it in AES-256-GCM.
func (s *argonSealer) aead(password string, salt []byte) (cipher.AEAD, error) {
	kek := argon2.IDKey([]byte(password), salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
