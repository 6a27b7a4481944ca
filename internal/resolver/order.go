package resolver

import (
	"fmt"
	"slices"
	"strings"
)

// Order controls which end of the directory list is searched first.
type Order string

const (
	// LastListedFirst searches the directory listed last first. The notebook
	// host reports its search path most-specific first, so with this order a
	// system-wide file overrides a per-user one.
	LastListedFirst Order = "last-listed-first"

	// FirstListedFirst searches the directories in the order given.
	FirstListedFirst Order = "first-listed-first"
)

// ParseOrder converts a configuration value into an [Order]. An empty string
// yields [LastListedFirst].
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", LastListedFirst:
		return LastListedFirst, nil
	case FirstListedFirst:
		return FirstListedFirst, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// Apply returns a copy of dirs arranged in search order. The input slice is
// never modified.
func (o Order) Apply(dirs []string) []string {
	ordered := slices.Clone(dirs)
	if o != FirstListedFirst {
		slices.Reverse(ordered)
	}

	return ordered
}
