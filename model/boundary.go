package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Boundary selects how neighbours beyond the grid edge are resolved
type Boundary int

const (
	// Bounded truncates the neighbourhood at the edges
	Bounded Boundary = iota
	// Toroidal wraps each edge around to the opposite one
	Toroidal
)

func (b Boundary) String() string {
	switch b {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return "unknown"
	}
}

// ParseBoundary converts a config or flag value into a Boundary
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bounded":
		return Bounded, nil
	case "toroidal":
		return Toroidal, nil
	default:
		return Bounded, errors.Wrapf(ErrUnknownBoundary, "[ParseBoundary] %q", name)
	}
}
