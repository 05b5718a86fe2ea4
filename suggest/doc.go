// Package suggest attaches "did you mean" category suggestions to search
// misses.
//
// The matching engine itself never consults this index: call-number matching
// is exact and the text fallback is a plain substring scan. Suggestions are
// an advisory layer on top, backed by an in-memory bleve index over category
// labels, display call ranges and row ids. The index is rebuilt only when
// the catalog row fingerprint changes.
package suggest
