// Package cas implements CAS Registry Numbers, the identifiers the
// Chemical Abstracts Service assigns to chemical substances.
//
// A CAS number is three hyphen-separated groups of ASCII digits, such as
// 7732-18-5 (water). The first group has 2 to 7 digits and no leading
// zero, the second exactly 2, and the last is a single check digit equal
// to the weighted digit sum of the first two groups modulo 10, where each
// digit is weighted by its 1-based position counted from the right.
//
// Number values are only produced by Parse (from text) and by a
// Generator (from randomness), so every non-zero Number is well formed.
// Equality, ordering and hashing work on the canonical text, which makes
// the type safe to use as a database column or map key.
//
// Validation is syntactic. A valid Number is not necessarily a number
// that has been registered to a substance.
package cas
