package seqenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode4(t *testing.T) {
	assert.Equal(t, byte(1), Encode4('A'))
	assert.Equal(t, byte(2), Encode4('C'))
	assert.Equal(t, byte(4), Encode4('G'))
	assert.Equal(t, byte(8), Encode4('T'))
	assert.Equal(t, byte(8), Encode4('U'))
	assert.Equal(t, byte(1), Encode4('a'))
	assert.Equal(t, byte(0), Encode4('N'))
	assert.Equal(t, byte(0), Encode4('_'))
	assert.Equal(t, byte(1|2), Encode4('M'))
	assert.Equal(t, byte(4|8), Encode4('K'))
	assert.Equal(t, byte(0), Encode4('?'))
}

func TestEncode2(t *testing.T) {
	assert.Equal(t, byte(0), Encode2('A'))
	assert.Equal(t, byte(1), Encode2('C'))
	assert.Equal(t, byte(2), Encode2('G'))
	assert.Equal(t, byte(3), Encode2('T'))
	assert.Equal(t, byte(0), Encode2('N'))
	assert.Equal(t, byte(0), Encode2('M')) // ambiguity codes fold to A
}

func TestExpandAndPopCount(t *testing.T) {
	cases := []struct {
		code4 byte
		want  []byte
	}{
		{0, []byte{}},
		{1, []byte{0}},
		{3, []byte{0, 1}},
		{7, []byte{0, 1, 2}},
		{15, []byte{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Expand(c.code4))
		assert.Equal(t, len(c.want), PopCount(c.code4))
	}
}

func TestIsAmbiguous(t *testing.T) {
	assert.False(t, IsAmbiguous(1)) // A
	assert.False(t, IsAmbiguous(2)) // C
	assert.False(t, IsAmbiguous(4)) // G
	assert.False(t, IsAmbiguous(8)) // T
	assert.True(t, IsAmbiguous(0))  // gap
	assert.True(t, IsAmbiguous(15)) // A|C|G|T
	assert.True(t, IsAmbiguous(3))  // M
}
