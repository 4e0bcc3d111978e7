package graph

import "github.com/pkg/errors"

// Sentinel error kinds. Wrap these with errors.Wrap/Wrapf for context and
// recover them with errors.Is or errors.Cause -- matching the error kind
// taxonomy the graph's construction and query surface report.
var (
	// ErrInvalidParams is returned when a Params value or a call's
	// arguments are individually well-typed but combine into something
	// the graph cannot honor (k out of range, NoCopy without 4-bit
	// input, a negative size or thread count, a query of the wrong
	// length, an out-of-range section id).
	ErrInvalidParams = errors.New("graph: invalid parameters")

	// ErrWrongState is returned when an operation is called on a graph
	// in a state that doesn't support it. Most state misuse (appending a
	// segment to an already-frozen archive, matching against a pool that
	// never built an index) is a compile-time type error under this
	// package's typed Pool/Archive/Index design; the one case that still
	// shows up at runtime is calling an operation after Clean (or Match
	// after DisableIndex), which AppendSegment, AppendLink, Freeze, Melt,
	// BuildIndex and Match all report with this error instead of
	// panicking on the cleaned state.
	ErrWrongState = errors.New("graph: operation not valid in current state")

	// ErrAllocationFailure is returned when growing an internal buffer
	// or table would require more memory than the caller has made
	// available (see Params.MaxBytes).
	ErrAllocationFailure = errors.New("graph: allocation failure")

	// ErrNotFound documents the "no match" outcome of a lookup. It is
	// never actually returned by Match: an empty result set is reported
	// as a nil/empty slice with a nil error, not this error. It's kept
	// here for callers that want to distinguish "structurally cannot
	// look this up" (ErrWrongState, ErrInvalidParams) from "looked it up
	// and found nothing" in their own code.
	ErrNotFound = errors.New("graph: not found")

	// ErrUnimplemented is returned by the reserved persistence hooks
	// (Archive.Dump, LoadArchive) and by Pool.SplitSection: this
	// generation of the graph keeps everything in memory and offers no
	// on-disk format, and section splitting was never implemented in
	// the system this package is descended from.
	ErrUnimplemented = errors.New("graph: not implemented")
)
