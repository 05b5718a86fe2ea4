// Package loader reads catalog rows from the library's Excel workbook and
// owns the process-lifetime cache of the built locator.
//
// Headers are bound to canonical column names by fuzzy lookup, so the usual
// spreadsheet drift ("Shelf Level", "shelf_lvl") still loads. Cell-level
// problems degrade to absent fields; rows with unparseable boundaries are
// left for the index to drop and count.
//
// CachedStore is the single-initialization barrier required when the HTTP
// layer can receive concurrent first requests: the index is built exactly
// once and shared read-only afterwards.
package loader
