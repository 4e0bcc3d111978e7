package graph

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/bio-graph/seqref/biosimd"
	"github.com/bio-graph/seqref/seqenc"
)

// Archive is a frozen graph: sections and links are immutable, and the
// link table has been compacted into a per-gid successor index. Call
// Iterator or BuildIndex to read from it; call Melt to get back a
// mutable Pool (built fresh from the archive's tables, leaving this
// Archive's own tables untouched and still valid).
type Archive struct {
	c           *core
	linkIdxBase []uint32 // length 2*(tailID+1)+1
	linkTable   []GID    // destination-only, grouped by source gid
}

// Freeze compacts a Pool's link pairs into Archive form. It adds a
// synthetic, zero-length tail sentinel section first so that every
// gid's successor range -- including sections with no outgoing links --
// has a well-defined upper bound in linkIdxBase.
func (p *Pool) Freeze() (*Archive, error) {
	if p.c == nil {
		return nil, errors.Wrap(ErrWrongState, "freeze on a cleaned pool")
	}
	tailName := fmt.Sprintf("\x00tail_sentinel_%d", p.c.tailID)
	sentinelID, _ := p.c.names.getID(tailName)
	if sentinelID != p.c.tailID {
		// Name collision with a real segment; extremely unlikely, but
		// fail cleanly rather than silently index past the wrong gid.
		return nil, errors.Wrapf(ErrAllocationFailure, "tail sentinel id mismatch: got %d want %d", sentinelID, p.c.tailID)
	}
	obj := p.c.names.object(sentinelID)
	obj.id = sentinelID
	obj.len = 0
	obj.base = p.c.seq.totalLen()

	numGIDs := 2 * (p.c.tailID + 1)

	// linkTable (GID per link) plus linkIdxBase (uint32 per gid): a rough
	// but cheap-to-compute estimate of the compacted tables' footprint.
	if err := p.c.checkBudget(int64(len(p.links))*4 + int64(numGIDs+1)*4); err != nil {
		return nil, err
	}

	sort.Slice(p.links, func(i, j int) bool {
		if p.links[i].from != p.links[j].from {
			return p.links[i].from < p.links[j].from
		}
		return p.links[i].to < p.links[j].to
	})

	linkIdxBase := make([]uint32, numGIDs+1)
	linkTable := make([]GID, len(p.links))
	cursor := uint32(0)
	for gid := uint32(0); gid < numGIDs; gid++ {
		linkIdxBase[gid] = cursor
		for cursor < uint32(len(p.links)) && uint32(p.links[cursor].from) == gid {
			linkTable[cursor] = p.links[cursor].to
			cursor++
		}
	}
	linkIdxBase[numGIDs] = cursor
	p.c.chargeBudget(int64(len(linkTable))*4 + int64(len(linkIdxBase))*4)

	p.c.tailID = sentinelID

	log.Printf("graph: froze pool into archive: %d sections, %d links", p.c.names.count(), len(linkTable))

	return &Archive{c: p.c, linkIdxBase: linkIdxBase, linkTable: linkTable}, nil
}

// Melt reconstructs a mutable Pool from an archive's compacted tables.
// The tail sentinel added by Freeze persists (it is not undone), and
// the Archive itself remains valid and usable afterward: Melt never
// mutates the receiver in place, unlike this package's C ancestor,
// which reused the same backing memory for both representations.
func (a *Archive) Melt() (*Pool, error) {
	if a.c == nil {
		return nil, errors.Wrap(ErrWrongState, "melt on a cleaned archive")
	}
	pairs := make([]linkPair, 0, len(a.linkTable))
	numGIDs := 2 * (a.c.tailID + 1)
	for gid := uint32(0); gid < numGIDs; gid++ {
		for i := a.linkIdxBase[gid]; i < a.linkIdxBase[gid+1]; i++ {
			pairs = append(pairs, linkPair{from: GID(gid), to: a.linkTable[i]})
		}
	}
	return &Pool{c: a.c, links: pairs}, nil
}

// successors returns gid's destination-only successor slice, in the
// order they sort (ascending to_gid within a source gid).
func (a *Archive) successors(gid GID) []GID {
	return a.linkTable[a.linkIdxBase[gid]:a.linkIdxBase[gid+1]]
}

func (a *Archive) sectionByID(id uint32) *section {
	return a.c.names.object(id)
}

func (a *Archive) sectionLen(gid GID) int {
	return int(a.sectionByID(gid.SectionID()).len)
}

// fetchBase returns the i-th base (0-based, in the gid's own traversal
// direction) of the section gid names: forward reads left to right;
// reverse reads right to left and complements each base, so the reverse
// strand is never materialized as a buffer.
func (a *Archive) fetchBase(gid GID, i int) byte {
	sec := a.sectionByID(gid.SectionID())
	if gid.IsForward() {
		return a.c.seq.get(sec.base + uint64(i))
	}
	return biosimd.Complement4(a.c.seq.get(sec.base + uint64(sec.len) - 1 - uint64(i)))
}

// HasAmbiguity reports whether any base in [lb, ub) of the packed
// sequence buffer (addressed the same way Section.Base is, in code-index
// units) is anything other than exactly one concrete base: an IUPAC
// ambiguity code or a gap (N) both count (see seqenc.IsAmbiguous). This accessor
// was dropped from the distilled surface but not excluded by any
// non-goal, and is restored here since it's a one-line wrapper over
// biosimd.PackedSeqCount the walker itself doesn't need but callers
// inspecting a section's quality often do.
func (a *Archive) HasAmbiguity(lb, ub uint64) bool {
	if a.c.seq.copyMode == NoCopy || ub <= lb {
		// Borrowed buffers aren't bit-packed into one array; fall back
		// to a direct per-base scan, which is still O(ub-lb) and rare
		// (ambiguity checks are not on the hot query path).
		for pos := lb; pos < ub; pos++ {
			if seqenc.IsAmbiguous(a.c.seq.get(pos)) {
				return true
			}
		}
		return false
	}
	tbl := ambiguityTable()
	return biosimd.PackedSeqCount(a.c.seq.packed, &tbl, int(lb), int(ub)) > 0
}

var cachedAmbiguityTable *biosimd.NibbleLookupTable

func ambiguityTable() biosimd.NibbleLookupTable {
	if cachedAmbiguityTable != nil {
		return *cachedAmbiguityTable
	}
	var raw [16]byte
	for c := 0; c < 16; c++ {
		if seqenc.IsAmbiguous(byte(c)) {
			raw[c] = 1
		}
	}
	tbl := biosimd.MakeNibbleLookupTable(raw)
	cachedAmbiguityTable = &tbl
	return tbl
}

// GetSection returns the registered metadata for a section id, including
// the tail sentinel once frozen.
func (a *Archive) GetSection(id uint32) (Section, error) {
	return getSection(a.c, id)
}

// GetName returns the name registered for a section id.
func (a *Archive) GetName(id uint32) (string, error) {
	return getName(a.c, id)
}

// GetPtr returns the packed sequence buffer backing Copy-mode storage,
// or nil in NoCopy mode, where there is no single backing array.
func (a *Archive) GetPtr() []byte {
	return a.c.seq.ptr()
}

// GetTotalLen returns the total number of bases stored.
func (a *Archive) GetTotalLen() uint64 {
	return a.c.seq.totalLen()
}

// GetSectionCount returns the number of registered sections, including
// the tail sentinel.
func (a *Archive) GetSectionCount() int {
	return a.c.names.count()
}

// Dump is a reserved persistence hook: this generation of the graph has
// no on-disk format, matching the stub dump_index/load_index in this
// package's ancestor.
func (a *Archive) Dump() error {
	return ErrUnimplemented
}

// LoadArchive is the reserved counterpart to Archive.Dump.
func LoadArchive([]byte) (*Archive, error) {
	return nil, ErrUnimplemented
}

// Clean drops every resource this archive owns.
func (a *Archive) Clean() {
	a.c = nil
	a.linkIdxBase = nil
	a.linkTable = nil
}
