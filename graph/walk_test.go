package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorEndsWithTermTuple(t *testing.T) {
	params := DefaultParams()
	params.K = 3
	pool, err := NewPool(params)
	require.NoError(t, err)
	_, err = pool.AppendSegment("a", []byte("ACGT"))
	require.NoError(t, err)

	arc, err := pool.Freeze()
	require.NoError(t, err)

	it := arc.NewIterator()
	var tuples []Tuple
	for {
		tup, ok := it.Next()
		if !ok {
			break
		}
		tuples = append(tuples, tup)
	}
	require.NotEmpty(t, tuples)
	assert.Equal(t, TermTuple, tuples[len(tuples)-1])

	for _, tup := range tuples[:len(tuples)-1] {
		assert.NotEqual(t, TermTuple, tup)
	}
}

func TestWalkAllEveryWindowHasAllConcreteBases(t *testing.T) {
	params := DefaultParams()
	params.K = 4
	pool, err := NewPool(params)
	require.NoError(t, err)
	_, err = pool.AppendSegment("a", []byte("ACGTRN"))
	require.NoError(t, err)

	arc, err := pool.Freeze()
	require.NoError(t, err)

	tuples := arc.walkAll()
	require.NotEmpty(t, tuples)
	for _, tup := range tuples {
		assert.LessOrEqual(t, tup.Kmer, uint64(1)<<uint(2*params.K)-1)
	}
}
