package graph

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/bio-graph/seqref/seqenc"
)

// maxSegmentLen is the largest segment length the registry will record;
// inputs longer than this are truncated rather than rejected, matching
// this package's C ancestor.
const maxSegmentLen = 0x80000000

// core holds the state shared by every lifecycle stage of a graph: the
// section name table and the sequence buffer. Pool, Archive and Index
// each wrap a *core (plus their own stage-specific tables) instead of
// sharing one mutable struct across states, so a Go type error -- not a
// runtime check -- catches most attempts to call an operation in the
// wrong state.
type core struct {
	params    Params
	names     *nameTable
	seq       *seqBuffer
	tailID    uint32 // one past the highest section id; the tail sentinel's id once Freeze has run
	usedBytes int64  // tracked footprint, checked against Params.MaxBytes
}

// Pool is a graph under construction: segments and links may still be
// appended. Call Freeze to move to an Archive.
type Pool struct {
	c     *core
	links []linkPair
}

type linkPair struct {
	from, to GID
}

// NewPool creates an empty graph in the POOL state.
func NewPool(params Params) (*Pool, error) {
	p := params.WithDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Pool{
		c: &core{
			params: p,
			names:  newNameTable(p.HashSize),
			seq:    newSeqBuffer(p.CopyMode),
		},
	}, nil
}

// AppendSegment registers a named segment's bases and returns its id. If
// name was already registered, this call replaces that section's bases
// in place (the name's id is reused) -- matching the registry's
// "allocate-if-new, otherwise reuse" name-to-id contract.
//
// Input interpretation depends on Params.SeqFormat: ASCII bytes are run
// through seqenc.Encode4; 4BIT bytes are taken as raw ambiguity codes
// (0..15) with no re-encoding. Params.CopyMode selects whether the bytes
// are copied into the graph's own buffer or (4BIT only) borrowed for the
// graph's lifetime.
func (p *Pool) AppendSegment(name string, seq []byte) (uint32, error) {
	if p.c == nil {
		return 0, errors.Wrap(ErrWrongState, "append_segment on a cleaned pool")
	}
	if len(seq) > maxSegmentLen {
		log.Printf("graph: segment %q length %d exceeds %d, truncating", name, len(seq), maxSegmentLen)
		seq = seq[:maxSegmentLen]
	}

	if p.c.params.CopyMode != NoCopy {
		// NoCopy segments are borrowed, not allocated, so only Copy-mode
		// appends count against the budget: roughly one packed byte per
		// two bases.
		if err := p.c.checkBudget(int64(len(seq)+1) / 2); err != nil {
			return 0, err
		}
	}

	codes := seq
	if p.c.params.SeqFormat == ASCII {
		codes = make([]byte, len(seq))
		for i, c := range seq {
			codes[i] = seqenc.Encode4(c)
		}
	}

	var base, tail uint64
	if p.c.params.CopyMode == NoCopy {
		base, tail = p.c.seq.appendExternal(codes)
	} else {
		base, tail = p.c.seq.appendCopy(codes)
		p.c.chargeBudget(int64(len(codes)+1) / 2)
	}

	id, _ := p.c.names.getID(name)
	obj := p.c.names.object(id)
	obj.id = id
	obj.base = base
	obj.len = uint32(tail - base)
	if id+1 > p.c.tailID {
		p.c.tailID = id + 1
	}
	return id, nil
}

// AppendLink records a directed, orientation-qualified edge between two
// segments, allocating ids for endpoints not yet seen by name alone
// (with a zero-length placeholder section, the same way the original
// registry tolerates a link referencing a segment not yet appended).
// Two internal pairs are stored: the forward pair and its reverse twin,
// so that walking the link table from the reverse orientation of either
// endpoint is symmetric.
func (p *Pool) AppendLink(srcName string, srcDir uint8, dstName string, dstDir uint8) error {
	if p.c == nil {
		return errors.Wrap(ErrWrongState, "append_link on a cleaned pool")
	}
	srcID, _ := p.c.names.getID(srcName)
	dstID, _ := p.c.names.getID(dstName)
	if srcID+1 > p.c.tailID {
		p.c.tailID = srcID + 1
	}
	if dstID+1 > p.c.tailID {
		p.c.tailID = dstID + 1
	}

	fromGID := NewGID(srcID, srcDir)
	toGID := NewGID(dstID, dstDir)
	p.links = append(p.links, linkPair{from: fromGID, to: toGID})
	p.links = append(p.links, linkPair{from: toGID.Rev(), to: fromGID.Rev()})
	return nil
}

// SplitSection is declared for parity with this registry's ancestor but
// is not implemented there either: no test in the system this package
// descends from exercises it, and its intended semantics (split a
// segment at a position, name the suffix, auto-link the two halves)
// were never specified precisely enough to implement safely.
func (p *Pool) SplitSection(name string, pos int) error {
	return errors.Wrapf(ErrUnimplemented, "split section %q at %d", name, pos)
}

// SectionCount returns the number of distinct names registered so far.
func (p *Pool) SectionCount() int {
	return p.c.names.count()
}

// GetSection returns the registered metadata for a section id.
func (p *Pool) GetSection(id uint32) (Section, error) {
	return getSection(p.c, id)
}

// GetName returns the name registered for a section id.
func (p *Pool) GetName(id uint32) (string, error) {
	return getName(p.c, id)
}

// GetTotalLen returns the total number of bases appended so far.
func (p *Pool) GetTotalLen() uint64 {
	return p.c.seq.totalLen()
}

// Clean drops every resource this pool owns. The Go garbage collector
// would reclaim them anyway once p goes out of scope; Clean exists so
// callers that otherwise free every graph resource explicitly (as this
// package's C ancestor requires) have an operation to call in every
// state, per this package's published lifecycle table.
func (p *Pool) Clean() {
	p.c = nil
	p.links = nil
}

func getSection(c *core, id uint32) (Section, error) {
	if id >= uint32(c.names.count()) {
		return Section{}, errors.Wrapf(ErrInvalidParams, "section id %d out of range", id)
	}
	obj := c.names.object(id)
	return Section{ID: obj.id, Name: c.names.key(id), Len: obj.len, Base: obj.base}, nil
}

func getName(c *core, id uint32) (string, error) {
	if id >= uint32(c.names.count()) {
		return "", errors.Wrapf(ErrInvalidParams, "section id %d out of range", id)
	}
	return c.names.key(id), nil
}

