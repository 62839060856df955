package wire

// Uvarint decodes a base-128 varint from buf starting at pos.
//
// Each byte contributes its low seven bits, least significant group first; a
// set high bit means another byte follows. Values must fit in 64 bits, which
// caps a legal encoding at ten bytes.
//
// It returns the value and the offset of the first byte after the encoding.
func Uvarint(buf []byte, pos int) (uint64, int, error) {
	var v uint64
	for shift := uint(0); pos < len(buf); shift += 7 {
		b := buf[pos]
		pos++
		if shift == 63 && b > 1 {
			// The tenth byte may carry only the top bit of a 64-bit value.
			return 0, pos, ErrVarintOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, pos, nil
		}
	}
	return 0, len(buf), ErrTruncatedVarint
}
