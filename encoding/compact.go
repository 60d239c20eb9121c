package encoding

import "github.com/ibmatcher/ibmatcher/internal/conv"

// NoMatch is the compact-result sentinel: start = 0xFFFFFFFF signals no
// match, independent of the (meaningless) upper bits.
const NoMatch uint64 = 0xFFFFFFFF

// PackMatch packs a (start, end) pair into the simplified API's 64-bit
// compact result: the lower 32 bits hold start, the upper 32 hold end.
// Offsets are checked against uint32's range rather than silently
// truncated, since a haystack that large would otherwise corrupt the
// packed result without any signal to the caller.
func PackMatch(start, end int) uint64 {
	return uint64(conv.IntToUint32(start)) | uint64(conv.IntToUint32(end))<<32
}

// UnpackMatch reverses PackMatch. ok is false when v's start half (its
// lower 32 bits) equals 0xFFFFFFFF, whatever its upper bits hold.
func UnpackMatch(v uint64) (start, end int, ok bool) {
	if uint32(v) == uint32(NoMatch) {
		return 0, 0, false
	}
	return int(uint32(v)), int(uint32(v >> 32)), true
}
