package fasta_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bio-graph/seqref/fasta"
	"github.com/bio-graph/seqref/graph"
)

const testFastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 a comment\n" + "ACGT\n" + "ACGT\n"

func TestReadAll(t *testing.T) {
	recs, err := fasta.ReadAll(strings.NewReader(testFastaData))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "seq1", recs[0].Name)
	assert.Equal(t, "ACGTACGTACGT", string(recs[0].Seq))
	assert.Equal(t, "seq2", recs[1].Name)
	assert.Equal(t, "ACGTACGT", string(recs[1].Seq))
}

func TestReadAllDropsCommentAfterFirstSpace(t *testing.T) {
	recs, err := fasta.ReadAll(strings.NewReader(">chr1 a viral sequence\nACGT\n"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "chr1", recs[0].Name)
}

func TestScanVisitsRecordsInOrder(t *testing.T) {
	var names []string
	err := fasta.Scan(strings.NewReader(testFastaData), func(rec fasta.Record) error {
		names = append(names, rec.Name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"seq1", "seq2"}, names)
}

func TestScanRejectsBodyBeforeHeader(t *testing.T) {
	err := fasta.Scan(strings.NewReader("ACGT\n>seq1\nACGT\n"), func(fasta.Record) error { return nil })
	assert.Error(t, err)
}

func TestLoadPoolAppendsEverySegment(t *testing.T) {
	pool, err := graph.NewPool(graph.DefaultParams())
	require.NoError(t, err)

	n, err := fasta.LoadPool(strings.NewReader(testFastaData), pool)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, pool.SectionCount())

	sec0, err := pool.GetSection(0)
	require.NoError(t, err)
	assert.Equal(t, "seq1", sec0.Name)
	assert.Equal(t, uint32(12), sec0.Len)
}
