// Package callnum canonicalizes library classification call numbers.
//
// A call number is a decimal-like classification code, optionally followed by
// a short Thai-script suffix, e.g. "370.113พ". Heterogeneous textual forms of
// the same code ("370.113", "370113", "370.113 พ") collapse to one comparable
// CallNumber so range boundaries can be compared without floating-point
// error.
//
// # Canonical Key
//
// The Key is a fixed-point integer with 3 implied fractional digits:
//
//	Parse("370")     // Key 370000
//	Parse("370.1")   // Key 370100
//	Parse("370113")  // Key 370113 (implied dot after 3 digits)
//
// # Suffixes
//
// Suffixes are at most three Thai-script runes and are compared by code-point
// order. They refine ordering within a single Key and only matter when a
// query lands exactly on a range boundary. A missing suffix is the empty
// string and is a normal, common case.
//
// Parse reports false for strings with no extractable numeric body; callers
// treat that as "not a call number" and fall back to text search.
package callnum
