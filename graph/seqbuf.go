package graph

import (
	"sort"

	"github.com/bio-graph/seqref/biosimd"
)

// seqBuffer is the append-only store backing every section's bases. In
// Copy mode it holds one growing nibble-packed buffer (two 4-bit codes
// per byte, least-significant nibble first) and section offsets are
// positions in that buffer's logical code sequence. In NoCopy mode it
// holds no storage of its own: it keeps direct references to the
// caller's backing arrays and maps global code positions onto them by
// binary search over cumulative offsets, so callers still see a single
// contiguous logical address space even though no bytes were copied.
type seqBuffer struct {
	copyMode CopyMode

	// Copy mode.
	packed   []byte
	validLen int

	// NoCopy mode.
	chunks       [][]byte
	chunkOffsets []uint64 // len(chunks)+1; chunkOffsets[i] is chunks[i]'s global start
}

func newSeqBuffer(copyMode CopyMode) *seqBuffer {
	b := &seqBuffer{copyMode: copyMode}
	if copyMode == NoCopy {
		b.chunkOffsets = []uint64{0}
	}
	return b
}

// appendCopy packs codes (4-bit ambiguity codes, one per byte) into the
// buffer and returns the [base, tail) range they occupy.
func (b *seqBuffer) appendCopy(codes []byte) (base, tail uint64) {
	base = uint64(b.validLen)
	b.packed, b.validLen = biosimd.PackSeqAppend(b.packed, b.validLen, codes)
	tail = uint64(b.validLen)
	return base, tail
}

// appendExternal records a reference to codes (one 4-bit code per byte,
// owned by the caller) without copying it, and returns the [base, tail)
// range it occupies in the buffer's logical address space.
func (b *seqBuffer) appendExternal(codes []byte) (base, tail uint64) {
	base = b.chunkOffsets[len(b.chunkOffsets)-1]
	tail = base + uint64(len(codes))
	b.chunks = append(b.chunks, codes)
	b.chunkOffsets = append(b.chunkOffsets, tail)
	return base, tail
}

// totalLen returns the number of codes appended so far.
func (b *seqBuffer) totalLen() uint64 {
	if b.copyMode == NoCopy {
		return b.chunkOffsets[len(b.chunkOffsets)-1]
	}
	return uint64(b.validLen)
}

// get returns the 4-bit code at global position pos.
func (b *seqBuffer) get(pos uint64) byte {
	if b.copyMode != NoCopy {
		return biosimd.UnpackOne(b.packed, int(pos))
	}
	offs := b.chunkOffsets
	i := sort.Search(len(offs)-1, func(i int) bool { return offs[i+1] > pos })
	return b.chunks[i][pos-offs[i]]
}

// ptr returns the packed buffer backing Copy-mode storage, or nil in
// NoCopy mode (there is no single backing array to point to).
func (b *seqBuffer) ptr() []byte {
	if b.copyMode == NoCopy {
		return nil
	}
	return b.packed
}
