package dynamo

// EncodeRGBA expands a packed 0xRRGGBB buffer into opaque RGBA bytes,
// reusing dst when it is large enough.
func EncodeRGBA(buf []uint32, dst []byte) []byte {
	if cap(dst) < len(buf)*4 {
		dst = make([]byte, len(buf)*4)
	}
	dst = dst[:len(buf)*4]
	for i, px := range buf {
		r, g, b := Color(px).RGB()
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = 0xff
	}
	return dst
}
