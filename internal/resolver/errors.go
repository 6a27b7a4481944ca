// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by [Resolver.Resolve] when no search directory
	// contains the configuration file.
	ErrNotFound = errors.New("configuration file not found")

	// ErrNotObject is returned when the matched file holds valid, non-empty
	// JSON whose top-level value is not an object.
	ErrNotObject = errors.New("configuration is not a JSON object")

	// ErrEmptyExtensionName is returned when Resolve is called without an
	// extension name.
	ErrEmptyExtensionName = errors.New("empty extension name")

	// ErrUnknownOrder is returned by [ParseOrder] for unsupported values.
	ErrUnknownOrder = errors.New("unknown search order")
)

// ParseError reports a matched configuration file whose content is not valid
// JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing configuration file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
