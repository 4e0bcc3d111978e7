package fasta

import (
	"io"

	"github.com/bio-graph/seqref/graph"
)

// LoadPool streams every record in r into pool via AppendSegment,
// returning the number of segments appended. This is the only point of
// contact between this package and graph: fasta never reaches back into
// a Pool's internals, only its published AppendSegment contract.
func LoadPool(r io.Reader, pool *graph.Pool) (int, error) {
	n := 0
	err := Scan(r, func(rec Record) error {
		_, err := pool.AppendSegment(rec.Name, rec.Seq)
		if err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}
