package graph

import "github.com/bio-graph/seqref/seqenc"

// Tuple is one emitted k-mer occurrence: a concrete (no ambiguity bits
// set) k-mer, the oriented section its window starts in, and the
// 0-based offset within that section.
type Tuple struct {
	Kmer uint64
	GID  GID
	Pos  uint64
}

// TermTuple is the terminal sentinel Iterator.Next returns once, after
// every real tuple has been yielded. No real tuple can collide with it:
// the tail sentinel section that produces it has length 0.
var TermTuple = Tuple{Kmer: ^uint64(0), GID: GID(^uint32(0)), Pos: 0}

// walkFrame is one entry of the arena-indexed stack the walker uses to
// enumerate every path from a root position to a complete k-length
// window. Frames are addressed by index into a shared slice (the arena)
// rather than by pointer, so the arena can grow without invalidating
// frames already on the stack.
type walkFrame struct {
	gid      GID
	segStart int // offset within gid's section this frame starts consuming from
	take     int // bases this frame contributes to the window
	succIdx  int // next successor of gid to try, once this frame is exhausted
	pushed   bool
}

// walker enumerates, for one root (gid, pos), every complete length-k
// path of 4-bit ambiguity codes reachable by staying in gid from pos or
// descending into its successor chain, then expands each path's
// ambiguous bases into the concrete 2-bit k-mers it stands for.
//
// Paths are found with an explicit frame stack rather than recursion so
// deep successor chains (bounded by k-1 in practice, but not assumed to
// be shallow) don't grow the Go call stack, and so the scratch code
// buffer can be shared and backtracked in place instead of copied at
// every branch.
type walker struct {
	a        *Archive
	k        int
	shiftLen uint
	arena    []walkFrame
	codes    []byte
}

func newWalker(a *Archive, k int) *walker {
	return &walker{
		a:        a,
		k:        k,
		shiftLen: uint(2 * (k - 1)),
		codes:    make([]byte, 0, k),
	}
}

// emitFunc receives one complete, k-long ambiguity-code path. The slice
// is only valid for the duration of the call.
type emitFunc func(codes []byte)

// walkPaths enumerates every complete path from (rootGID, pos) and
// invokes emit once per path.
func (w *walker) walkPaths(rootGID GID, pos int, emit emitFunc) {
	w.arena = w.arena[:0]
	w.codes = w.codes[:0]
	w.arena = append(w.arena, walkFrame{gid: rootGID, segStart: pos})
	w.run(emit)
}

func (w *walker) run(emit emitFunc) {
	for len(w.arena) > 0 {
		top := len(w.arena) - 1
		f := &w.arena[top]

		if !f.pushed {
			avail := w.a.sectionLen(f.gid) - f.segStart
			need := w.k - len(w.codes)
			take := avail
			if take > need {
				take = need
			}
			if take < 0 {
				take = 0
			}
			for i := 0; i < take; i++ {
				w.codes = append(w.codes, w.a.fetchBase(f.gid, f.segStart+i))
			}
			f.take = take
			f.pushed = true

			if len(w.codes) == w.k {
				emit(w.codes)
				w.codes = w.codes[:len(w.codes)-f.take]
				w.arena = w.arena[:top]
				continue
			}
			f.succIdx = 0
		}

		// Guards against a pathological zero-length section cycle
		// contributing no bases yet never exhausting its successor
		// list; not a real scenario the registry produces, but cheap
		// to rule out.
		if len(w.arena) > 4*w.k+16 {
			w.codes = w.codes[:len(w.codes)-f.take]
			w.arena = w.arena[:top]
			continue
		}

		succs := w.a.successors(f.gid)
		if f.succIdx >= len(succs) {
			// Dead end: either no successors, or all tried. This path
			// can't reach a complete window.
			w.codes = w.codes[:len(w.codes)-f.take]
			w.arena = w.arena[:top]
			continue
		}
		next := succs[f.succIdx]
		f.succIdx++
		w.arena = append(w.arena, walkFrame{gid: next, segStart: 0})
	}
}

// expand turns a k-long ambiguity-code path into the concrete 2-bit
// k-mers it represents, folding each concrete base in with the same
// formula used to fold an ASCII query word (see matchASCIIWord): each
// step right-shifts the accumulator by 2 bits and ORs the new base into
// bits [shiftLen, shiftLen+1], so both the walker's emitted words and a
// query's encoded word land in the same bit layout regardless of which
// end of the window a base happens to occupy.
func (w *walker) expand(codes []byte) []uint64 {
	words := []uint64{0}
	for _, c4 := range codes {
		concretes := seqenc.Expand(c4)
		if len(concretes) == 0 {
			return nil
		}
		next := make([]uint64, 0, len(words)*len(concretes))
		for _, word := range words {
			for _, c2 := range concretes {
				next = append(next, (word>>2)|(uint64(c2)<<w.shiftLen))
			}
		}
		words = next
	}
	return words
}

// walkAll enumerates every tuple in the graph: for every real section
// (excluding the tail sentinel) read forward, for every start position,
// every concrete k-mer reachable from it.
func (a *Archive) walkAll() []Tuple {
	k := a.c.params.K
	w := newWalker(a, k)
	var out []Tuple
	var pathBuf []byte
	for id := uint32(0); id < a.c.tailID; id++ {
		gid := NewGID(id, 0)
		length := a.sectionLen(gid)
		for pos := 0; pos < length; pos++ {
			w.walkPaths(gid, pos, func(codes []byte) {
				pathBuf = append(pathBuf[:0], codes...)
				for _, word := range w.expand(pathBuf) {
					out = append(out, Tuple{Kmer: word, GID: gid, Pos: uint64(pos)})
				}
			})
		}
	}
	return out
}

// Iterator streams the tuples BuildIndex would sort, one at a time,
// ending with TermTuple. It precomputes its full sequence up front
// (BuildIndex has to materialize the same sequence anyway, to sort it)
// and replays it; this keeps Next()'s contract identical to a lazily
// streaming walker without the bookkeeping cost of making the frame
// stack itself resumable across calls.
type Iterator struct {
	tuples   []Tuple
	idx      int
	termSent bool
}

// NewIterator creates a fresh walker over an archive.
func (a *Archive) NewIterator() *Iterator {
	return &Iterator{tuples: a.walkAll()}
}

// Next returns the next tuple, true until the sequence (including the
// terminal sentinel) is exhausted, after which it returns the zero
// Tuple, false.
func (it *Iterator) Next() (Tuple, bool) {
	if it.idx < len(it.tuples) {
		t := it.tuples[it.idx]
		it.idx++
		return t, true
	}
	if !it.termSent {
		it.termSent = true
		return TermTuple, true
	}
	return Tuple{}, false
}

// Clean discards the iterator's precomputed tuple buffer.
func (it *Iterator) Clean() {
	it.tuples = nil
	it.idx = 0
}
