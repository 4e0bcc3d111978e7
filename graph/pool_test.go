package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendSegmentAssignsIDsAndMetadata(t *testing.T) {
	pool, err := NewPool(DefaultParams())
	require.NoError(t, err)

	id0, err := pool.AppendSegment("sec0", []byte("ACGT"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), id0)

	id1, err := pool.AppendSegment("sec1", []byte("TT"))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id1)

	sec0, err := pool.GetSection(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), sec0.Len)
	assert.Equal(t, "sec0", sec0.Name)

	name, err := pool.GetName(1)
	require.NoError(t, err)
	assert.Equal(t, "sec1", name)

	assert.Equal(t, uint64(6), pool.GetTotalLen())
}

func TestAppendSegmentNoCopyBorrowsCaller(t *testing.T) {
	params := DefaultParams()
	params.SeqFormat = FourBit
	params.CopyMode = NoCopy
	pool, err := NewPool(params)
	require.NoError(t, err)

	codes := []byte{1, 2, 4, 8}
	_, err = pool.AppendSegment("sec0", codes)
	require.NoError(t, err)

	codes[0] = 2
	sec0, err := pool.GetSection(0)
	require.NoError(t, err)
	assert.Equal(t, byte(2), pool.c.seq.get(sec0.Base))
}

func TestAppendLinkCreatesForwardAndTwin(t *testing.T) {
	pool, err := NewPool(DefaultParams())
	require.NoError(t, err)
	_, err = pool.AppendSegment("a", []byte("ACGT"))
	require.NoError(t, err)
	_, err = pool.AppendSegment("b", []byte("TTTT"))
	require.NoError(t, err)
	require.NoError(t, pool.AppendLink("a", 0, "b", 0))

	require.Len(t, pool.links, 2)
	assert.Equal(t, linkPair{from: NewGID(0, 0), to: NewGID(1, 0)}, pool.links[0])
	assert.Equal(t, linkPair{from: NewGID(1, 1), to: NewGID(0, 1)}, pool.links[1])
}

func TestGetSectionOutOfRange(t *testing.T) {
	pool, err := NewPool(DefaultParams())
	require.NoError(t, err)
	_, err = pool.GetSection(0)
	assert.Error(t, err)
}

func TestSplitSectionUnimplemented(t *testing.T) {
	pool, err := NewPool(DefaultParams())
	require.NoError(t, err)
	_, err = pool.AppendSegment("a", []byte("ACGT"))
	require.NoError(t, err)
	err = pool.SplitSection("a", 1)
	assert.ErrorIs(t, err, ErrUnimplemented)
}

func TestOperationsOnCleanedPoolReportWrongState(t *testing.T) {
	pool, err := NewPool(DefaultParams())
	require.NoError(t, err)
	_, err = pool.AppendSegment("a", []byte("ACGT"))
	require.NoError(t, err)
	pool.Clean()

	_, err = pool.AppendSegment("b", []byte("ACGT"))
	assert.ErrorIs(t, err, ErrWrongState)

	err = pool.AppendLink("a", 0, "a", 0)
	assert.ErrorIs(t, err, ErrWrongState)

	_, err = pool.Freeze()
	assert.ErrorIs(t, err, ErrWrongState)
}
