// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is provided in the server configuration. The application fails at
	// startup in this case.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errEmptyRouteNamespace is returned by NewHandlers when the extension
	// routes would be mounted directly under the base URL.
	errEmptyRouteNamespace = errors.New("route namespace is empty")
)
