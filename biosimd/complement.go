package biosimd

// complement4Table is the bit-reversal complement of the 4-bit ambiguity
// alphabet (A=1, C=2, G=4, T=8; IUPAC codes are bit unions of these).
// Complementing a base is reversing its 4 bits: A(0001)<->T(1000),
// C(0010)<->G(0100), and every ambiguity code maps to its complementary
// ambiguity code (e.g. M=A|C(0011) <-> K=G|T(1100)).
//
// Lifted from grailbio/bio/biosimd's revComp4Table, which is the same
// table under the same alphabet.
var complement4Table = [16]byte{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

// Complement4 returns the complement of a single 4-bit ambiguous base
// code. It never allocates or touches a buffer: the sequence graph reads
// the reverse strand by complementing one base at a time as it walks,
// rather than materializing a reverse-complement copy.
func Complement4(c uint8) uint8 {
	return complement4Table[c&15]
}
