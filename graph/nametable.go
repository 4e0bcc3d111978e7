package graph

import farm "github.com/dgryski/go-farm"

// section is the fixed-size object every name in the table carries
// alongside its id: the section's own {id, len, base} triple. Per-gid
// link ranges are looked up directly in Archive rather than duplicated
// in this slot.
type section struct {
	id   uint32
	len  uint32
	base uint64
}

// Section is the public, read-only view of a registered segment.
type Section struct {
	ID   uint32
	Name string
	Len  uint32
	Base uint64
}

// nameTable is the "H" collaborator the graph is built on: a
// string-to-consecutive-id map, with a fixed-size object slot attached
// to every id. Ids are assigned in insertion order starting at 0, which
// is what lets GID arithmetic treat a section's id as a direct index
// into per-gid tables elsewhere in the package.
//
// Grounded on the sharded farm-hash/open-addressing table in
// grailbio/bio/fusion's kmer index, simplified to a single growable
// table since this graph's section count is orders of magnitude smaller
// than a k-mer index's entry count.
type nameTable struct {
	buckets []int32 // -1 empty, else an id
	names   []string
	slots   []section
}

const emptyBucket = -1

func newNameTable(hashSize int) *nameTable {
	n := nextPow2(hashSize)
	buckets := make([]int32, n)
	for i := range buckets {
		buckets[i] = emptyBucket
	}
	return &nameTable{buckets: buckets}
}

func (t *nameTable) hashIndex(name string, numBuckets int) uint32 {
	h := farm.Hash64([]byte(name))
	return uint32(h) & uint32(numBuckets-1)
}

// getID returns the id for name, allocating a new one (and a new
// section slot) if name has not been seen before. The bool result is
// true iff a new id was allocated.
func (t *nameTable) getID(name string) (uint32, bool) {
	if len(t.names)+1 > len(t.buckets)*3/4 {
		t.grow()
	}
	idx := t.hashIndex(name, len(t.buckets))
	for {
		b := t.buckets[idx]
		if b == emptyBucket {
			id := uint32(len(t.names))
			t.names = append(t.names, name)
			t.slots = append(t.slots, section{id: id})
			t.buckets[idx] = int32(id)
			return id, true
		}
		if t.names[b] == name {
			return uint32(b), false
		}
		idx = (idx + 1) & uint32(len(t.buckets)-1)
	}
}

// lookup returns the id for name without allocating, and false if name
// is not registered.
func (t *nameTable) lookup(name string) (uint32, bool) {
	idx := t.hashIndex(name, len(t.buckets))
	for probes := 0; probes < len(t.buckets); probes++ {
		b := t.buckets[idx]
		if b == emptyBucket {
			return 0, false
		}
		if t.names[b] == name {
			return uint32(b), true
		}
		idx = (idx + 1) & uint32(len(t.buckets)-1)
	}
	return 0, false
}

func (t *nameTable) grow() {
	newSize := len(t.buckets) * 2
	buckets := make([]int32, newSize)
	for i := range buckets {
		buckets[i] = emptyBucket
	}
	for id, name := range t.names {
		idx := t.hashIndex(name, newSize)
		for buckets[idx] != emptyBucket {
			idx = (idx + 1) & uint32(newSize-1)
		}
		buckets[idx] = int32(id)
	}
	t.buckets = buckets
}

func (t *nameTable) count() int {
	return len(t.names)
}

func (t *nameTable) key(id uint32) string {
	return t.names[id]
}

func (t *nameTable) object(id uint32) *section {
	return &t.slots[id]
}
