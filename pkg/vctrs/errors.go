package vctrs

import "errors"

// Validation errors. Constructors and write operations fail with one of
// these sentinels (usually wrapped with position or value context) and
// leave the receiver untouched. There is no partial-construction state.
var (
	// ErrType reports input that is not numeric, or not the plain
	// float64 representation a raw constructor requires.
	ErrType = errors.New("input is not numeric")

	// ErrDomain reports a non-missing element outside the kind's
	// closed validity range.
	ErrDomain = errors.New("value out of range")

	// ErrInvariant reports an attempt to attach forbidden structure
	// (element names, dimensions) or a malformed replacement shape.
	ErrInvariant = errors.New("structural invariant violated")

	// ErrUnknownKind reports a kind tag with no registered Kind.
	ErrUnknownKind = errors.New("unknown vector kind")
)

// IsTypeErr reports whether err wraps ErrType.
func IsTypeErr(err error) bool { return errors.Is(err, ErrType) }

// IsDomainErr reports whether err wraps ErrDomain.
func IsDomainErr(err error) bool { return errors.Is(err, ErrDomain) }

// IsInvariantErr reports whether err wraps ErrInvariant.
func IsInvariantErr(err error) bool { return errors.Is(err, ErrInvariant) }
