// Package describe renders human-readable location summaries for shelf
// ranges, at progressive levels of detail: a one-line sentence for inline
// search results, or the full form with boundary text and map link.
package describe
