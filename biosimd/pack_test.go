package biosimd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpackSeqRoundTrip(t *testing.T) {
	src := []byte{1, 2, 4, 8, 3, 5, 0, 15}
	dst := make([]byte, (len(src)+1)/2)
	PackSeq(dst, src)

	got := make([]byte, len(src))
	UnpackSeq(got, dst)
	assert.Equal(t, src, got)
}

func TestPackSeqOddLength(t *testing.T) {
	src := []byte{1, 2, 4}
	dst := make([]byte, (len(src)+1)/2)
	PackSeq(dst, src)
	assert.Equal(t, byte(1|2<<4), dst[0])
	assert.Equal(t, byte(4), dst[1])

	got := make([]byte, len(src))
	UnpackSeq(got, dst)
	assert.Equal(t, src, got)
}

func TestPackSeqAppendIncremental(t *testing.T) {
	var packed []byte
	n := 0
	packed, n = PackSeqAppend(packed, n, []byte{1, 2, 4})
	packed, n = PackSeqAppend(packed, n, []byte{8, 3})

	got := make([]byte, n)
	UnpackSeq(got, packed)
	assert.Equal(t, []byte{1, 2, 4, 8, 3}, got)
}

func TestUnpackOne(t *testing.T) {
	packed := []byte{1 | 2<<4, 4}
	assert.Equal(t, byte(1), UnpackOne(packed, 0))
	assert.Equal(t, byte(2), UnpackOne(packed, 1))
	assert.Equal(t, byte(4), UnpackOne(packed, 2))
}
