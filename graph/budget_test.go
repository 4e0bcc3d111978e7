package graph

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendSegmentRejectsOverBudget(t *testing.T) {
	params := DefaultParams()
	params.MaxBytes = 1 // a handful of bases pack into more than one byte
	pool, err := NewPool(params)
	require.NoError(t, err)

	_, err = pool.AppendSegment("a", []byte("ACGTACGTACGT"))
	assert.True(t, errors.Is(err, ErrAllocationFailure))
}

func TestAppendSegmentWithinBudgetSucceeds(t *testing.T) {
	params := DefaultParams()
	params.MaxBytes = 1024
	pool, err := NewPool(params)
	require.NoError(t, err)

	_, err = pool.AppendSegment("a", []byte("ACGT"))
	assert.NoError(t, err)
}

func TestBuildIndexRejectsOverBudget(t *testing.T) {
	params := DefaultParams()
	params.K = 20 // keyspace alone is 8*4^20+8 bytes, far past the budget below
	params.MaxBytes = 1024
	pool, err := NewPool(params)
	require.NoError(t, err)
	_, err = pool.AppendSegment("a", []byte("ACGT"))
	require.NoError(t, err)

	arc, err := pool.Freeze()
	require.NoError(t, err)

	_, err = arc.BuildIndex()
	assert.True(t, errors.Is(err, ErrAllocationFailure))
}
