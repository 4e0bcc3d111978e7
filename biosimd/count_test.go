package biosimd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// popcountNot1Table flags codes whose population count (number of set
// bits among the low 4 bits) is not exactly 1 -- the definition of an
// "ambiguous" base used by graph's Archive.HasAmbiguity.
var popcountNot1Table = MakeNibbleLookupTable([16]byte{
	1, 0, 0, 1, 0, 1, 1, 1,
	0, 1, 1, 1, 1, 1, 1, 1,
})

func TestPackedSeqCount(t *testing.T) {
	// codes: A C G T M(A|C) gap
	codes := []byte{1, 2, 4, 8, 3, 0}
	packed := make([]byte, (len(codes)+1)/2)
	PackSeq(packed, codes)

	assert.Equal(t, 0, PackedSeqCount(packed, &popcountNot1Table, 0, 4))
	assert.Equal(t, 2, PackedSeqCount(packed, &popcountNot1Table, 0, 6))
	assert.Equal(t, 1, PackedSeqCount(packed, &popcountNot1Table, 4, 5))
	assert.Equal(t, 0, PackedSeqCount(packed, &popcountNot1Table, 2, 2))
}
