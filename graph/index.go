package graph

import (
	"sort"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/bio-graph/seqref/seqenc"
)

// Position is a k-mer tuple with the kmer field stripped out, once the
// sorted tuple vector has been compacted down to the index's kmer_table.
type Position struct {
	GID GID
	Pos uint64
}

// Index is an archive with an exact-match k-mer lookup table built over
// it. Call Match or Match2Bit to query; call DisableIndex to drop the
// tables and get back a plain Archive.
type Index struct {
	*Archive
	kmerIdxTable []uint64 // length 4^k + 1
	kmerTable    []Position
	mask         uint64
}

// BuildIndex drains the k-mer walker, sorts its output by k-mer value,
// and builds a dense prefix-sum table over the keyspace so Match can
// answer in O(1) plus the number of hits.
//
// Params.NumThreads is accepted for parity with the abstract Sort
// collaborator's thread hint, but this generation sorts with the
// standard library's sort.Slice: none of the libraries this module
// otherwise draws on offer a parallel sort, and an 8-byte-prefix radix
// sort isn't worth hand-rolling for the table sizes this index builds.
func (a *Archive) BuildIndex() (*Index, error) {
	if a.c == nil {
		return nil, errors.Wrap(ErrWrongState, "build_index on a cleaned archive")
	}
	k := a.c.params.K
	keyspace := uint64(1) << uint(2*k)

	// kmerIdxTable is 8 bytes per keyspace entry (spec.md §6's own
	// memory-cost note for this table); checked before allocating the
	// potentially huge prefix table, ahead of draining the walker.
	if err := a.c.checkBudget(int64(keyspace+1) * 8); err != nil {
		return nil, err
	}

	tuples := a.walkAll()

	sort.Slice(tuples, func(i, j int) bool { return tuples[i].Kmer < tuples[j].Kmer })

	idxTable := make([]uint64, keyspace+1)
	var cur uint64
	var prev uint64 = 0
	seenAny := false
	for i, t := range tuples {
		if !seenAny || t.Kmer != cur {
			from := prev + 1
			if !seenAny {
				from = 0
			}
			for w := from; w <= t.Kmer; w++ {
				idxTable[w] = uint64(i)
			}
			cur = t.Kmer
			prev = t.Kmer
			seenAny = true
		}
	}
	if seenAny {
		for w := cur + 1; w <= keyspace; w++ {
			idxTable[w] = uint64(len(tuples))
		}
	}
	// An empty tuple set needs no tail fill: make() already zeroed
	// idxTable, which is the correct "0 hits everywhere" table.

	kmerTable := make([]Position, len(tuples))
	for i, t := range tuples {
		kmerTable[i] = Position{GID: t.GID, Pos: t.Pos}
	}
	a.c.chargeBudget(int64(keyspace+1)*8 + int64(len(kmerTable))*12)

	log.Printf("graph: built index: k=%d, %d tuples, %d keyspace entries", k, len(tuples), keyspace+1)

	return &Index{
		Archive:      a,
		kmerIdxTable: idxTable,
		kmerTable:    kmerTable,
		mask:         keyspace - 1,
	}, nil
}

// DisableIndex drops the index's tables and returns the underlying
// archive, unchanged and still usable. Rebuilding is idempotent:
// BuildIndex can be called again on the same archive at any time.
// Match on idx afterward reports ErrWrongState.
func (idx *Index) DisableIndex() *Archive {
	arc := idx.Archive
	idx.kmerIdxTable = nil
	idx.kmerTable = nil
	idx.Archive = nil
	return arc
}

// Match2Bit returns every occurrence of a k-mer already packed as a
// 2-bit-per-base word (see matchASCIIWord/walker.expand for the packing
// convention). Bits above the low 2k are masked off before lookup, so
// callers don't need to pre-mask their input.
func (idx *Index) Match2Bit(w uint64) []Position {
	w &= idx.mask
	return idx.kmerTable[idx.kmerIdxTable[w]:idx.kmerIdxTable[w+1]]
}

// Match returns every occurrence of an ASCII k-mer. seq must have
// exactly K bases. Each base is encoded with seqenc.Encode2, so
// ambiguity codes, N and unrecognized characters are not rejected: they
// are read as A.
func (idx *Index) Match(seq []byte) ([]Position, error) {
	if idx.Archive == nil {
		return nil, errors.Wrap(ErrWrongState, "match on a cleaned index")
	}
	k := idx.c.params.K
	if len(seq) != k {
		return nil, errors.Wrapf(ErrInvalidParams, "query length %d != k %d", len(seq), k)
	}
	return idx.Match2Bit(matchASCIIWord(seq)), nil
}

// matchASCIIWord folds an ASCII query word into the same 2-bit packed
// layout the walker emits, using the identical (w>>2)|(c<<shiftLen) fold
// so a query's bits line up with a stored k-mer's bits regardless of
// which end of the window either representation happens to call
// "first".
func matchASCIIWord(seq []byte) uint64 {
	shiftLen := uint(2 * (len(seq) - 1))
	var w uint64
	for _, c := range seq {
		w = (w >> 2) | (uint64(seqenc.Encode2(c)) << shiftLen)
	}
	return w
}

// Clean drops every resource this index owns, including its embedded
// archive's.
func (idx *Index) Clean() {
	idx.kmerIdxTable = nil
	idx.kmerTable = nil
	if idx.Archive != nil {
		idx.Archive.Clean()
	}
	idx.Archive = nil
}
