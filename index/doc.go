// Package index builds the in-memory shelf-range index.
//
// The index is an ordered collection of ShelfRange values, one per catalog
// row, each carrying a canonical start/end boundary and the physical location
// metadata of the shelf. It is built once from externally loaded rows and is
// read-only afterwards.
//
// # Source Shapes
//
// Upstream spreadsheets vary: some supply separate decimal start/end columns
// with their own suffix columns, others only raw boundary text or a combined
// "start-end" label. Build accepts all of these; see Row.
//
// # Data Tolerance
//
// A row whose start or end key cannot be resolved is a data-quality issue,
// not a system fault: it is dropped from the index and counted, and
// construction of the remaining rows continues.
//
// # Thread Safety
//
// A built Index is immutable. Concurrent readers need no locking.
package index
