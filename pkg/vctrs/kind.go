package vctrs

import (
	"fmt"
	"strconv"
	"sync"
)

// Kind is the discriminant identifying what a vector's values mean.
// It carries the full tag used in banners, the short abbreviation used
// by tabular display, the closed validity range for non-missing
// elements, and the element formatter.
type Kind struct {
	Tag    string  // full name, e.g. "percent"
	Abbrev string  // short tag for column headers, e.g. "pct"
	Min    float64 // lower bound, inclusive
	Max    float64 // upper bound, inclusive

	// FormatElem renders one non-missing element. Nil means plain
	// numeric rendering.
	FormatElem func(float64) string
}

// Percent is the built-in kind: values in [0, 1] displayed as
// percentages rounded to 3 significant figures.
var Percent = Kind{
	Tag:    "percent",
	Abbrev: "pct",
	Min:    0,
	Max:    1,
	FormatElem: func(v float64) string {
		return strconv.FormatFloat(v*100, 'g', 3, 64) + "%"
	},
}

// Validate checks that the kind is well-formed.
func (k Kind) Validate() error {
	if k.Tag == "" {
		return fmt.Errorf("kind tag must not be empty: %w", ErrInvariant)
	}
	if k.Min > k.Max {
		return fmt.Errorf("kind %q range [%v, %v] is inverted: %w", k.Tag, k.Min, k.Max, ErrInvariant)
	}
	return nil
}

// format renders one element, falling back to plain numeric output
// when the kind has no formatter of its own.
func (k Kind) format(v float64) string {
	if k.FormatElem != nil {
		return k.FormatElem(v)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// contains reports whether v lies inside the kind's closed range.
func (k Kind) contains(v float64) bool {
	return v >= k.Min && v <= k.Max
}

var (
	kindsMu sync.RWMutex
	kinds   = map[string]Kind{
		Percent.Tag: Percent,
	}
)

// RegisterKind makes a kind resolvable by tag, for callers that
// reconstruct vectors from persisted data. Built-in kinds are
// pre-registered. Re-registering a tag replaces the previous entry.
func RegisterKind(k Kind) error {
	if err := k.Validate(); err != nil {
		return err
	}
	kindsMu.Lock()
	defer kindsMu.Unlock()
	kinds[k.Tag] = k
	return nil
}

// KindByTag resolves a registered kind by its full tag.
// Returns ErrUnknownKind if the tag is not registered.
func KindByTag(tag string) (Kind, error) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	k, ok := kinds[tag]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
	}
	return k, nil
}
