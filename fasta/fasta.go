// Package fasta implements minimal FASTA record parsing for loading
// reference sequence into a sequence graph's Pool. A FASTA file is a
// set of named sequences that may be wrapped across multiple lines:
//
//	>chr7
//	ACGTAC
//	GAGGAC
//	>chr8
//	ACGT
//
// A sequence's name is the text immediately after '>' up to the first
// space; anything after the space is a comment and is discarded.
//
// Adapted from grailbio/bio/encoding/fasta's eager reader: that package
// builds a random-access Fasta value backed by a name->sequence map for
// repeated Get/Len queries; this module only ever needs to stream every
// record once into a graph.Pool, so the indexed-lookup surface and the
// faidx-format index reader/generator are dropped and replaced with a
// single streaming pass.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/unsafe"
	"github.com/pkg/errors"
)

const bufferInitSize = 300 * 1024 * 1024

// Record is one named sequence read from a FASTA file.
type Record struct {
	Name string
	Seq  []byte
}

// RecordFunc is called once per record in the order it appears in the
// file. The Seq slice is only valid for the duration of the call.
type RecordFunc func(Record) error

// Scan reads every record from r and invokes fn once per record.
func Scan(r io.Reader, fn RecordFunc) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)

	var name string
	var haveName bool
	var seq strings.Builder

	flush := func() error {
		if !haveName {
			return nil
		}
		if err := fn(Record{Name: name, Seq: unsafe.StringToBytes(seq.String())}); err != nil {
			return err
		}
		seq.Reset()
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			name = strings.SplitN(line[1:], " ", 2)[0]
			haveName = true
			continue
		}
		if !haveName {
			return errors.Errorf("fasta: malformed file: sequence body before any '>' header")
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "fasta: reading")
	}
	return flush()
}

// ReadAll parses every record from r into memory. Prefer Scan for large
// files: ReadAll materializes the whole set before returning.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	err := Scan(r, func(rec Record) error {
		// Seq aliases the scanner's strings.Builder buffer only for the
		// duration of the callback; copy it before retaining.
		cp := make([]byte, len(rec.Seq))
		copy(cp, rec.Seq)
		out = append(out, Record{Name: rec.Name, Seq: cp})
		return nil
	})
	return out, err
}
