package vctrs

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// MissingToken is how missing elements render everywhere.
const MissingToken = "NA"

// Missing returns the missing-element marker.
func Missing() float64 { return math.NaN() }

// IsMissingValue reports whether v is the missing marker.
func IsMissingValue(v float64) bool { return math.IsNaN(v) }

// Vector is a kind-tagged sequence of float64 values. It is strictly
// one-dimensional and nameless; the representation admits nothing
// else. Operations never modify the receiver: every write returns a
// new vector or an error, never a half-written value.
type Vector struct {
	kind   Kind
	values []float64
}

// NewRaw is the low-level constructor. The input must already be a
// plain []float64 (or nil, for a zero-length vector); anything else
// fails with ErrType. No range validation is performed, so the caller
// is responsible for values it passes here. The slice is adopted, not
// copied.
func NewRaw(kind Kind, values any) (*Vector, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	switch v := values.(type) {
	case nil:
		return &Vector{kind: kind, values: []float64{}}, nil
	case []float64:
		if v == nil {
			v = []float64{}
		}
		return &Vector{kind: kind, values: v}, nil
	default:
		return nil, fmt.Errorf("raw %s vector requires []float64, got %T: %w", kind.Tag, values, ErrType)
	}
}

// New is the checked constructor. It accepts nil or any plain numeric
// input (float64/float32/int/int64 slices and scalars), fails with
// ErrType for anything non-numeric, fails with ErrDomain if any
// non-missing element lies outside the kind's range, copies the
// values into a fresh payload, and tags the result via the raw path.
func New(kind Kind, values any) (*Vector, error) {
	vals, err := coerceNumeric(values)
	if err != nil {
		return nil, fmt.Errorf("%s vector: %w", kind.Tag, err)
	}
	if err := checkRange(kind, vals); err != nil {
		return nil, err
	}
	return NewRaw(kind, vals)
}

// NewPercent builds a checked percent vector. NewPercent(nil) returns
// a zero-length vector that still reports its tag.
func NewPercent(values any) (*Vector, error) {
	return New(Percent, values)
}

// coerceNumeric converts supported numeric inputs into a fresh
// []float64. The copy doubles as the strip step: no names, dims, or
// aliasing survive into the payload.
func coerceNumeric(values any) ([]float64, error) {
	switch v := values.(type) {
	case nil:
		return []float64{}, nil
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)
		return out, nil
	case []float32:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out, nil
	case []int:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(v))
		for i, e := range v {
			out[i] = float64(e)
		}
		return out, nil
	case float64:
		return []float64{v}, nil
	case float32:
		return []float64{float64(v)}, nil
	case int:
		return []float64{float64(v)}, nil
	case int64:
		return []float64{float64(v)}, nil
	default:
		return nil, fmt.Errorf("%w (got %T)", ErrType, values)
	}
}

// checkRange validates every non-missing element against the kind's
// closed range. Missing markers are exempt.
func checkRange(kind Kind, vals []float64) error {
	for i, v := range vals {
		if IsMissingValue(v) {
			continue
		}
		if !kind.contains(v) {
			return fmt.Errorf("%s element %d is %v, outside [%v, %v]: %w",
				kind.Tag, i, v, kind.Min, kind.Max, ErrDomain)
		}
	}
	return nil
}

// Len returns the number of elements.
func (x *Vector) Len() int { return len(x.values) }

// Kind returns the vector's kind.
func (x *Vector) Kind() Kind { return x.kind }

// Tag returns the full kind tag, present even on zero-length vectors.
func (x *Vector) Tag() string { return x.kind.Tag }

// Summary returns the short type tag used by tabular display.
func (x *Vector) Summary() string { return x.kind.Abbrev }

// Values returns a copy of the payload.
func (x *Vector) Values() []float64 {
	out := make([]float64, len(x.values))
	copy(out, x.values)
	return out
}

// At returns the element at i, or the missing marker when i is out of
// range.
func (x *Vector) At(i int) float64 {
	if i < 0 || i >= len(x.values) {
		return Missing()
	}
	return x.values[i]
}

// IsMissing reports whether the element at i is missing. Out-of-range
// positions count as missing.
func (x *Vector) IsMissing(i int) bool { return IsMissingValue(x.At(i)) }

// Slice returns a new vector of the same kind holding the elements at
// the given positions. Repeated indices are allowed, no indices yields
// a zero-length vector, and an out-of-range index yields a missing
// element. The result never loses its tag, and no revalidation is
// needed: elements of a valid vector stay valid.
func (x *Vector) Slice(indices ...int) *Vector {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		out[i] = x.At(idx)
	}
	return &Vector{kind: x.kind, values: out}
}

// Assign returns a new vector with replacement written at the given
// positions. The replacement goes through the same checked path as
// construction, so a non-numeric replacement fails with ErrType and an
// out-of-range value with ErrDomain, before anything is written. A
// length-1 replacement recycles across every position; otherwise the
// replacement must match the index count (ErrInvariant). Positions
// past the end grow the vector with missing fill.
func (x *Vector) Assign(indices []int, replacement any) (*Vector, error) {
	repl, err := New(x.kind, replacement)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		// Validated no-op: nothing to write.
		return &Vector{kind: x.kind, values: x.Values()}, nil
	}
	switch {
	case repl.Len() == len(indices):
	case repl.Len() == 1:
	default:
		return nil, fmt.Errorf("replacement length %d does not match %d positions: %w",
			repl.Len(), len(indices), ErrInvariant)
	}

	maxIdx := len(x.values) - 1
	for _, idx := range indices {
		if idx < 0 {
			return nil, fmt.Errorf("cannot assign at negative position %d: %w", idx, ErrInvariant)
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	out := make([]float64, maxIdx+1)
	copy(out, x.values)
	for i := len(x.values); i < len(out); i++ {
		out[i] = Missing()
	}
	for i, idx := range indices {
		if repl.Len() == 1 {
			out[idx] = repl.values[0]
		} else {
			out[idx] = repl.values[i]
		}
	}
	return &Vector{kind: x.kind, values: out}, nil
}

// SetNames rejects element naming. The type is nameless by
// construction; this always fails with ErrInvariant and leaves the
// vector unchanged.
func (x *Vector) SetNames(names []string) error {
	return fmt.Errorf("vector must be nameless: %w", ErrInvariant)
}

// SetDim rejects multi-dimensional shape. Always fails with
// ErrInvariant; the vector stays strictly 1-dimensional.
func (x *Vector) SetDim(dims ...int) error {
	return fmt.Errorf("vector must be 1-dimensional: %w", ErrInvariant)
}

// Format renders every element for display, one string per element.
// Missing elements render as MissingToken. This is the single source
// of truth for display: Print and tabular printing both go through it.
func (x *Vector) Format() []string {
	out := make([]string, len(x.values))
	for i, v := range x.values {
		if IsMissingValue(v) {
			out[i] = MissingToken
			continue
		}
		out[i] = x.kind.format(v)
	}
	return out
}

// String renders the banner and, for non-empty vectors, the formatted
// elements on a second line.
func (x *Vector) String() string {
	banner := fmt.Sprintf("<%s[%d]>", x.kind.Tag, len(x.values))
	if len(x.values) == 0 {
		return banner
	}
	return banner + "\n" + strings.Join(x.Format(), " ")
}

// Print writes the vector's display form to w and returns the
// receiver unchanged, so calls can be chained.
func (x *Vector) Print(w io.Writer) *Vector {
	fmt.Fprintln(w, x.String())
	return x
}

// Equal reports element-wise equality between two vectors of the same
// kind. Missing markers compare equal to each other.
func (x *Vector) Equal(y *Vector) bool {
	if y == nil || x.kind.Tag != y.kind.Tag || len(x.values) != len(y.values) {
		return false
	}
	for i, v := range x.values {
		switch {
		case IsMissingValue(v) && IsMissingValue(y.values[i]):
		case v == y.values[i]:
		default:
			return false
		}
	}
	return true
}
