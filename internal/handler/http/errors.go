// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the bearer-token middleware.
var (
	// ErrEmptyAuthorizationHeader means the request has no "Authorization"
	// header while the control API requires a token.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the bearer scheme is present without a token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidToken means the token does not match the configured one.
	ErrInvalidToken = errors.New("invalid api token")

	errInvalidJSON = errors.New("invalid JSON was passed")
)
