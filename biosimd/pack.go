package biosimd

import "github.com/grailbio/base/simd"

// NibbleLookupTable is re-exported from grailbio/base/simd to keep callers
// of this package from needing a second import for table construction.
type NibbleLookupTable = simd.NibbleLookupTable

// MakeNibbleLookupTable is re-exported from grailbio/base/simd.
func MakeNibbleLookupTable(table [16]byte) NibbleLookupTable {
	return simd.MakeNibbleLookupTable(table)
}

// UnpackSeq unpacks dst[] from src[], one 4-bit code per dst byte, with the
// least-significant nibble of each src byte holding the even position:
//
//	pos even: dst[pos] = src[pos/2] & 15
//	pos odd:  dst[pos] = src[pos/2] >> 4
//
// It panics if len(src) != (len(dst)+1)/2.
func UnpackSeq(dst, src []byte) {
	dstLen := len(dst)
	nSrcFullByte := dstLen >> 1
	dstOdd := dstLen & 1
	if len(src) != nSrcFullByte+dstOdd {
		panic("UnpackSeq: len(src) must equal (len(dst)+1)/2")
	}
	for srcPos := 0; srcPos != nSrcFullByte; srcPos++ {
		srcByte := src[srcPos]
		dst[2*srcPos] = srcByte & 15
		dst[2*srcPos+1] = srcByte >> 4
	}
	if dstOdd == 1 {
		dst[2*nSrcFullByte] = src[nSrcFullByte] & 15
	}
}

// PackSeq packs src[] (one 4-bit code per byte, values < 16) into dst[],
// least-significant nibble first:
//
//	pos even: low nibble of dst[pos/2] = src[pos]
//	pos odd:  high nibble of dst[pos/2] = src[pos]
//
// It panics if len(dst) != (len(src)+1)/2.
func PackSeq(dst, src []byte) {
	srcLen := len(src)
	nDstFullByte := srcLen >> 1
	srcOdd := srcLen & 1
	if len(dst) != nDstFullByte+srcOdd {
		panic("PackSeq: len(dst) must equal (len(src)+1)/2")
	}
	for dstPos := 0; dstPos < nDstFullByte; dstPos++ {
		dst[dstPos] = src[2*dstPos] | (src[2*dstPos+1] << 4)
	}
	if srcOdd == 1 {
		dst[nDstFullByte] = src[nDstFullByte*2]
	}
}

// PackSeqAppend appends the 4-bit codes in src to a packed nibble buffer
// dst that already holds validLen codes, returning the extended buffer and
// the new valid code count. It is the incremental counterpart of PackSeq,
// used by the sequence buffer to grow without repacking from scratch.
func PackSeqAppend(dst []byte, validLen int, src []byte) ([]byte, int) {
	for _, c := range src {
		if validLen&1 == 0 {
			dst = append(dst, c&15)
		} else {
			dst[len(dst)-1] |= c << 4
		}
		validLen++
	}
	return dst, validLen
}

// UnpackOne returns the single 4-bit code at position pos of a packed
// nibble buffer.
func UnpackOne(packed []byte, pos int) byte {
	b := packed[pos>>1]
	if pos&1 == 0 {
		return b & 15
	}
	return b >> 4
}
