// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// credential from a request. Callers can match against them with [errors.Is].
var (
	// ErrNoCredentials is returned by the auth middleware when the incoming
	// request carries neither an "Authorization" header nor a token query
	// parameter.
	ErrNoCredentials = errors.New("no `Authorization` header or `token` query parameter")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "<scheme> <credential>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
