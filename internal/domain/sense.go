package domain

import (
	"fmt"
	"strings"
)

// Sense is the optimization direction of the solved problem. It fixes the
// comparison direction for every bound in the tree.
type Sense string

const (
	Minimize Sense = "min"
	Maximize Sense = "max"
)

// Sentinel is the "no bound yet" value used for fresh nodes.
const Sentinel = 1.0e+99

// UnboundedLimit is the magnitude above which a bound is treated as infinite.
const UnboundedLimit = 0.99e+20

// ParseSense accepts min/max and minimize/maximize, case-insensitive.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	}
	return "", &ConfigError{Msg: fmt.Sprintf("invalid problem sense %q (want min or max)", s)}
}

// Initial returns the sentinel bound a new node starts with.
func (s Sense) Initial() float64 {
	if s == Maximize {
		return -Sentinel
	}
	return Sentinel
}

// Better reports whether a is strictly better than b.
func (s Sense) Better(a, b float64) bool {
	if s == Maximize {
		return a > b
	}
	return a < b
}

// AtLeastAsGood reports whether a is better than or equal to b.
func (s Sense) AtLeastAsGood(a, b float64) bool {
	return a == b || s.Better(a, b)
}

// Best returns the better of a and b.
func (s Sense) Best(a, b float64) float64 {
	if s.Better(b, a) {
		return b
	}
	return a
}

// Bounded reports whether v is a finite bound rather than a sentinel.
func Bounded(v float64) bool {
	if v < 0 {
		v = -v
	}
	return v < UnboundedLimit
}
