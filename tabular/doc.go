// Package tabular fingerprints labeled tables by their row and column labels.
//
// A Frame or Series is fingerprinted as the pair (row labels, column labels);
// cell values are ignored. Cache is a ready purefn.Factory built on that
// fingerprint:
//
//	summarize := purefn.DecorateI1(tabular.Cache(), func(f *tabular.Frame) (Summary, error) {
//	    ...
//	})
//
// Two tables with the same labels share an entry even if their cells differ,
// and overwriting cells in place does not invalidate the entry. Call
// CacheClear after mutating a table whose results must be recomputed.
package tabular
