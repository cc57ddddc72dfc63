package model

import (
	"errors"
	"fmt"
)

// Suffix selects among the alternate simple-survey definitions of the
// simulated catalog. It modifies both the simulated-survey file name and
// the output file name.
type Suffix int

// Known survey suffixes. SuffixNone selects the full survey model.
const (
	SuffixNone Suffix = iota
	SuffixBen
	SuffixHarry
)

// ErrUnknownSuffix is returned when parsing an unrecognized suffix name.
var ErrUnknownSuffix = errors.New("unknown survey suffix")

// String returns the suffix name, or "none" for the default survey.
func (s Suffix) String() string {
	switch s {
	case SuffixBen:
		return "ben"
	case SuffixHarry:
		return "harry"
	default:
		return "none"
	}
}

// Fragment returns the file-name fragment for the suffix: "-ben", "-harry",
// or the empty string for the default survey.
func (s Suffix) Fragment() string {
	switch s {
	case SuffixBen:
		return "-ben"
	case SuffixHarry:
		return "-harry"
	default:
		return ""
	}
}

// ParseSuffix converts a stored suffix name back into a Suffix. It accepts
// the values produced by String.
func ParseSuffix(name string) (Suffix, error) {
	switch name {
	case "", "none":
		return SuffixNone, nil
	case "ben":
		return SuffixBen, nil
	case "harry":
		return SuffixHarry, nil
	default:
		return SuffixNone, fmt.Errorf("%w: %q", ErrUnknownSuffix, name)
	}
}
