package entities

import (
	"fmt"

	"github.com/CWSpear/stumpy/internal/errors"
)

// Availability is the graded answer to "can this objective be reached".
// Values are ordered from weakest to strongest guarantee.
type Availability int

// Availability values, weakest first
const (
	Unavailable Availability = iota
	Possible
	GlitchesVisible
	Glitches
	Visible
	Available
)

var availabilityNames = [...]string{
	Unavailable:     "unavailable",
	Possible:        "possible",
	GlitchesVisible: "glitches_visible",
	Glitches:        "glitches",
	Visible:         "visible",
	Available:       "available",
}

// AllAvailabilities lists every verdict in lattice order
func AllAvailabilities() []Availability {
	return []Availability{Unavailable, Possible, GlitchesVisible, Glitches, Visible, Available}
}

// String returns the wire name of the verdict
func (a Availability) String() string {
	if a < Unavailable || a > Available {
		return fmt.Sprintf("availability(%d)", int(a))
	}
	return availabilityNames[a]
}

// ParseAvailability parses a wire name
func ParseAvailability(s string) (Availability, error) {
	for i, name := range availabilityNames {
		if name == s {
			return Availability(i), nil
		}
	}
	return Unavailable, errors.InvalidArgumentf("unknown availability %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (a Availability) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Availability) UnmarshalText(text []byte) error {
	parsed, err := ParseAvailability(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Reachable reports whether the contents can be collected in some way.
// Visible-only and unavailable verdicts are not reachable.
func (a Availability) Reachable() bool {
	switch a {
	case Possible, Glitches, Available:
		return true
	default:
		return false
	}
}

// Min is the AND-combine: the weaker verdict wins
func Min(a, b Availability) Availability {
	if a < b {
		return a
	}
	return b
}

// Max is the OR-combine: the stronger verdict wins
func Max(a, b Availability) Availability {
	if a > b {
		return a
	}
	return b
}

// OnlyIf returns v when cond holds and Unavailable otherwise
func OnlyIf(cond bool, v Availability) Availability {
	if cond {
		return v
	}
	return Unavailable
}

// Either returns Available when cond holds and fallback otherwise
func Either(cond bool, fallback Availability) Availability {
	if cond {
		return Available
	}
	return fallback
}
