package graph

import "github.com/pkg/errors"

// SeqFormat selects how Pool.AppendSegment interprets the bytes it is
// given.
type SeqFormat int

const (
	// ASCII segments are plain base-letter text (IUPAC codes allowed);
	// each byte is run through seqenc.Encode4 before being stored.
	ASCII SeqFormat = iota + 1
	// FourBit segments are already one 4-bit ambiguity code per input
	// byte (values 0-15); they are taken as-is, no re-encoding.
	FourBit
)

func (f SeqFormat) String() string {
	switch f {
	case ASCII:
		return "ASCII"
	case FourBit:
		return "4BIT"
	default:
		return "unknown"
	}
}

// CopyMode selects whether AppendSegment copies its input into the
// graph's own sequence buffer or borrows the caller's backing array.
type CopyMode int

const (
	// Copy stores an independent copy of every appended segment; the
	// caller's slice may be reused or discarded immediately afterward.
	Copy CopyMode = iota + 1
	// NoCopy keeps a direct reference to the caller's backing array.
	// Only valid together with FourBit: the graph has no packing step
	// to run over ASCII input, so there would be nothing to borrow.
	// The caller must keep the slice alive and unmodified for the
	// lifetime of the graph.
	NoCopy
)

func (m CopyMode) String() string {
	switch m {
	case Copy:
		return "COPY"
	case NoCopy:
		return "NOCOPY"
	default:
		return "unknown"
	}
}

// IndexMode selects how BuildIndex answers exact-match queries.
type IndexMode int

const (
	// HashIndex builds a sorted k-mer table once and answers Match in
	// O(1) plus the number of hits.
	HashIndex IndexMode = iota + 1
	// IterIndex is reserved for a future build strategy that skips the
	// precomputed table. Per spec, this generation's BuildIndex ignores
	// IndexMode and always builds the same hash-prefix table HashIndex
	// does: "both yield the same IDX."
	IterIndex
)

func (m IndexMode) String() string {
	switch m {
	case HashIndex:
		return "HASH"
	case IterIndex:
		return "ITER"
	default:
		return "unknown"
	}
}

// Params configures a graph at construction time. The zero value of
// every field means "use the default"; call DefaultParams() for a
// fully-populated starting point, or construct a Params and call
// WithDefaults to fill in anything left at its zero value.
type Params struct {
	// K is the k-mer length the walker and index operate on, 1..32.
	// Default 14.
	K int

	// HashSize is the initial bucket count of the section name table.
	// Default 1024. Rounded up to the next power of two.
	HashSize int

	// SeqFormat selects how AppendSegment interprets its input bytes.
	// Default ASCII.
	SeqFormat SeqFormat

	// CopyMode selects whether AppendSegment copies or borrows its
	// input. Default Copy.
	CopyMode CopyMode

	// IndexMode selects how BuildIndex answers Match queries. Default
	// HashIndex.
	IndexMode IndexMode

	// NumThreads is a thread hint for sorting the k-mer table; 0 (the
	// default) means serial. BuildIndex sorts serially whatever its
	// value.
	NumThreads int

	// MaxBytes caps the total size of the packed sequence buffer and
	// link/kmer tables combined. 0 means unbounded. Exceeding it turns
	// an append or build call into ErrAllocationFailure instead of an
	// out-of-memory panic.
	MaxBytes int64
}

// DefaultParams returns a Params with every field set to its default.
func DefaultParams() Params {
	return Params{
		K:          14,
		HashSize:   1024,
		SeqFormat:  ASCII,
		CopyMode:   Copy,
		IndexMode:  HashIndex,
		NumThreads: 0,
		MaxBytes:   0,
	}
}

// WithDefaults returns a copy of p with every zero-valued field replaced
// by its default.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p.K == 0 {
		p.K = d.K
	}
	if p.HashSize == 0 {
		p.HashSize = d.HashSize
	}
	if p.SeqFormat == 0 {
		p.SeqFormat = d.SeqFormat
	}
	if p.CopyMode == 0 {
		p.CopyMode = d.CopyMode
	}
	if p.IndexMode == 0 {
		p.IndexMode = d.IndexMode
	}
	return p
}

// validate reports whether p (after WithDefaults) describes a graph that
// can actually be constructed.
func (p Params) validate() error {
	if p.K < 1 || p.K > 32 {
		return errors.Wrapf(ErrInvalidParams, "k must be in 1..32, got %d", p.K)
	}
	if p.HashSize < 0 {
		return errors.Wrapf(ErrInvalidParams, "hash_size must be >= 0, got %d", p.HashSize)
	}
	if p.SeqFormat != ASCII && p.SeqFormat != FourBit {
		return errors.Wrapf(ErrInvalidParams, "unrecognized seq_format %d", p.SeqFormat)
	}
	if p.CopyMode != Copy && p.CopyMode != NoCopy {
		return errors.Wrapf(ErrInvalidParams, "unrecognized copy_mode %d", p.CopyMode)
	}
	if p.IndexMode != HashIndex && p.IndexMode != IterIndex {
		return errors.Wrapf(ErrInvalidParams, "unrecognized index_mode %d", p.IndexMode)
	}
	if p.CopyMode == NoCopy && p.SeqFormat != FourBit {
		return errors.Wrapf(ErrInvalidParams, "copy_mode NOCOPY requires seq_format 4BIT")
	}
	if p.NumThreads < 0 {
		return errors.Wrapf(ErrInvalidParams, "num_threads must be >= 0, got %d", p.NumThreads)
	}
	if p.MaxBytes < 0 {
		return errors.Wrapf(ErrInvalidParams, "max_bytes must be >= 0, got %d", p.MaxBytes)
	}
	return nil
}

// nextPow2 rounds n up to the next power of two, with a floor of 16.
func nextPow2(n int) int {
	if n < 16 {
		return 16
	}
	p := 16
	for p < n {
		p <<= 1
	}
	return p
}
