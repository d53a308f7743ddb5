// Package vctrs defines validated, kind-tagged numeric vectors.
//
// A Vector couples a plain float64 payload with a Kind: a discriminant
// naming the logical type of the values and the closed range they must
// lie in. Construction and every write path re-run validation, so a
// Vector that exists is a Vector whose invariants hold. Subsetting
// always returns a vector of the same kind; the tag never degrades to
// a raw slice mid-pipeline.
//
// Missing elements are represented as IEEE NaN and are exempt from
// range validation. They render as the "NA" token.
package vctrs
