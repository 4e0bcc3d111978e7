// Package seqenc implements the base-encoding primitives shared by the
// rest of this module: ASCII to 4-bit ambiguity-code encoding, ASCII to
// concrete 2-bit encoding, and the concretization table used to expand an
// ambiguous 4-bit code into the set of concrete bases it represents.
//
// The alphabet and tables here are the ones the sequence graph itself is
// built on: A=1, C=2, G=4, T/U=8 in the 4-bit code, with IUPAC ambiguity
// codes as bit unions of those four, and gap/N encoding to 0.
package seqenc

// enc4Table maps an ASCII base character to its 4-bit ambiguity code.
// Indexed directly by the input byte; lowercase letters are folded to
// uppercase before the lookup. Anything not a recognized IUPAC letter
// (including '_' and 'N') encodes to 0, the gap/fully-ambiguous code.
var enc4Table = buildEnc4Table()

func buildEnc4Table() [256]byte {
	var t [256]byte
	set := func(c byte, v byte) {
		t[c] = v
		t[c|0x20] = v // lowercase
	}
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('U', 8)
	set('R', 1|4)  // A|G
	set('Y', 2|8)  // C|T
	set('S', 4|2)  // G|C
	set('W', 1|8)  // A|T
	set('K', 4|8)  // G|T
	set('M', 1|2)  // A|C
	set('B', 2|4|8) // C|G|T
	set('D', 1|4|8) // A|G|T
	set('H', 1|2|8) // A|C|T
	set('V', 1|2|4) // A|C|G
	set('N', 0)
	set('_', 0)
	return t
}

// enc2Table maps an ASCII base character to its concrete 2-bit code
// (A=0, C=1, G=2, T/U=3). Any character outside {A,C,G,T,U,N} (including
// ambiguity codes) encodes to 0, matching N's mapping.
var enc2Table = buildEnc2Table()

func buildEnc2Table() [256]byte {
	var t [256]byte
	set := func(c byte, v byte) {
		t[c] = v
		t[c|0x20] = v
	}
	set('A', 0)
	set('C', 1)
	set('G', 2)
	set('T', 3)
	set('U', 3)
	set('N', 0)
	return t
}

// Encode4 returns the 4-bit ambiguity code for an ASCII base character.
func Encode4(c byte) byte {
	return enc4Table[c]
}

// Encode2 returns the concrete 2-bit code for an ASCII base character.
// Ambiguity codes and anything unrecognized fold to A (0), matching N.
func Encode2(c byte) byte {
	return enc2Table[c]
}

// expandTable lists, for each 4-bit code, the concrete 2-bit bases it
// represents in ascending order (A<C<G<T). Index 0 (gap, which is also
// what N encodes to) and index 15 (all four bits set) both expand to the
// empty set: a fully ambiguous
// position contributes no concrete k-mer extensions, same as a gap.
var expandTable = [16][]byte{
	0:  {},
	1:  {0},          // A
	2:  {1},          // C
	3:  {0, 1},        // M = A|C
	4:  {2},          // G
	5:  {0, 2},        // R = A|G
	6:  {1, 2},        // S = C|G
	7:  {0, 1, 2},      // V = A|C|G
	8:  {3},          // T
	9:  {0, 3},        // W = A|T
	10: {1, 3},        // Y = C|T
	11: {0, 1, 3},      // H = A|C|T
	12: {2, 3},        // K = G|T
	13: {0, 2, 3},      // D = A|G|T
	14: {1, 2, 3},      // B = C|G|T
	15: {},           // A|C|G|T
}

// popcountTable gives the size of Expand(c)'s result without allocating.
// Matches the original bit-population count table, with index 15 (every
// bit set) hardcoded to 0 rather than 4: a fully ambiguous base
// contributes no concrete extensions, the same as a gap.
var popcountTable = [16]byte{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 0}

// Expand returns the concrete 2-bit bases a 4-bit ambiguity code stands
// for, in ascending order. The returned slice is shared and must not be
// mutated by the caller.
func Expand(code4 byte) []byte {
	return expandTable[code4&15]
}

// PopCount returns len(Expand(code4)) without allocating.
func PopCount(code4 byte) int {
	return int(popcountTable[code4&15])
}

// IsAmbiguous reports whether a 4-bit code represents more than one
// concrete base (PopCount != 1): ambiguity codes, gaps, and N are all
// ambiguous by this definition, matching graph's Archive.HasAmbiguity.
func IsAmbiguous(code4 byte) bool {
	return popcountTable[code4&15] != 1
}
