// Package invcache memoizes the inverse of a single mutable matrix.
//
// A Holder stores one matrix and, lazily, its inverse. Inverse computes on the
// first request and serves the stored value afterwards. ReplaceMatrix keeps the
// stored inverse when the new matrix equals the old one element for element,
// and drops it otherwise, so the cache is never stale and never recomputes for
// an unchanged matrix.
//
// Cache states:
//
//	Empty     --Inverse ok-------------------> Populated
//	Populated --ReplaceMatrix(different)-----> Empty
//	Populated --ReplaceMatrix(same)----------> Populated
//	Empty     --ReplaceMatrix(any)-----------> Empty
//	Empty     --Inverse error----------------> Empty
//
// Hits and misses are reported as DEBUG events through github.com/apex/log;
// a coerced constructor argument is reported at WARN.
//
//	h, err := invcache.New([][]float64{{2, 0}, {0, 2}}) // coerced, warns
//	inv, err := h.Inverse()                              // miss: computes
//	inv, err = h.Inverse()                               // hit
package invcache
