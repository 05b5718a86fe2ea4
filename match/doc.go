// Package match decides which shelf ranges contain a query call number and
// orders multiple hits by specificity.
//
// Matching is a pure predicate over the immutable index: numeric bounds
// first, then suffix code-point ordering, which is consulted only when the
// query supplied a suffix (strict mode), the key lands exactly on a boundary,
// and that boundary's recorded suffix is non-empty.
//
// Ranking prefers narrower numeric spans; the remaining sort keys exist only
// to make output deterministic, never to encode domain meaning.
package match
