// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
)

// PasscodeLength is the length of a KERIA agent passcode (bran).
const PasscodeLength = 21

// RandomBase58 returns n random bytes encoded with the Bitcoin base58
// alphabet, so the result never contains ':' or '-' and is safe inside an
// identifier name.
func RandomBase58(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base58.Encode(buf), nil
}

// NewSalt returns a short random salt for the deletion rename marker.
func NewSalt() (string, error) {
	return RandomBase58(8)
}

// NewPasscode returns a fresh random KERIA passcode.
func NewPasscode() (string, error) {
	// 18 random bytes always encode to more than 21 base58 characters
	encoded, err := RandomBase58(18)
	if err != nil {
		return "", err
	}
	return encoded[:PasscodeLength], nil
}
