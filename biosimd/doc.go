// Package biosimd provides the byte-level primitives the sequence graph
// builds on: nibble packing/unpacking for the 4-bit base store, a
// population-count lookup for ambiguity scans, and the bit-reversal
// complement table for IUPAC codes.
//
// It is a small, non-vectorized cousin of grailbio/bio's biosimd package:
// same table shapes, adapted to this module's nibble ordering and 4-bit
// alphabet (A=1, C=2, G=4, T=8, ambiguity codes as bit unions).
package biosimd
