package core

// BitWriter packs bits into bytes most significant bit first. The final byte
// is zero padded when the bit count is not a multiple of eight.
type BitWriter struct {
	data    []byte
	bitMask uint8
}

// NewBitWriter returns a writer with room reserved for n bits.
func NewBitWriter(n int) *BitWriter {
	return &BitWriter{data: make([]byte, 0, (n+7)/8)}
}

// Append adds one bit.
func (w *BitWriter) Append(bit bool) {
	if w.bitMask == 0 {
		w.bitMask = 0x80
		w.data = append(w.data, 0)
	}
	if bit {
		w.data[len(w.data)-1] |= w.bitMask
	}
	w.bitMask >>= 1
}

// Bytes returns the packed bits. The slice aliases the writer's buffer.
func (w *BitWriter) Bytes() []byte { return w.data }

// PackBits packs a slice of booleans using BitWriter ordering.
func PackBits(bits []bool) []byte {
	w := NewBitWriter(len(bits))
	for _, b := range bits {
		w.Append(b)
	}
	return w.Bytes()
}

// UnpackBits fills dst from packed data. Bits beyond the end of data are false
// and bits of data beyond len(dst) are ignored.
func UnpackBits(dst []bool, data []byte) {
	e := NewEntropy(data)
	for i := range dst {
		b, _ := e.Bit()
		dst[i] = b
	}
}
