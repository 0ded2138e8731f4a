package core

// Entropy reads bits from a byte slice in order, most significant bit of
// each byte first. It is single-pass and not safe for concurrent use.
//
// Every read reports ok=false once the stream runs dry. A multi-bit read that
// runs out part way discards the bits it consumed rather than padding them.
type Entropy struct {
	data      []byte
	byteIndex int
	bitMask   uint8
}

// NewEntropy returns a stream positioned at the first bit of data. The slice
// is not copied and must not be modified while the stream is in use.
func NewEntropy(data []byte) *Entropy {
	return &Entropy{data: data, bitMask: 0x80}
}

// Bit returns the next bit.
func (e *Entropy) Bit() (bool, bool) {
	if e.byteIndex >= len(e.data) {
		return false, false
	}
	bit := e.data[e.byteIndex]&e.bitMask != 0
	e.bitMask >>= 1
	if e.bitMask == 0 {
		e.bitMask = 0x80
		e.byteIndex++
	}
	return bit, true
}

func (e *Entropy) bits(n int) (uint16, bool) {
	var value uint16
	for i := 0; i < n; i++ {
		b, ok := e.Bit()
		if !ok {
			return 0, false
		}
		value <<= 1
		if b {
			value |= 1
		}
	}
	return value, true
}

// Uint2 returns the next two bits as a value in [0, 3].
func (e *Entropy) Uint2() (uint8, bool) {
	v, ok := e.bits(2)
	return uint8(v), ok
}

// Uint8 returns the next eight bits.
func (e *Entropy) Uint8() (uint8, bool) {
	v, ok := e.bits(8)
	return uint8(v), ok
}

// Uint16 returns the next sixteen bits.
func (e *Entropy) Uint16() (uint16, bool) {
	return e.bits(16)
}

// Frac returns the next sixteen bits mapped onto [0, 1] by dividing by 65535.
func (e *Entropy) Frac() (float64, bool) {
	v, ok := e.Uint16()
	if !ok {
		return 0, false
	}
	return float64(v) / 65535.0, true
}

// Remaining reports how many unread bits are left.
func (e *Entropy) Remaining() int {
	if e.byteIndex >= len(e.data) {
		return 0
	}
	used := 0
	for m := uint8(0x80); m > e.bitMask; m >>= 1 {
		used++
	}
	return (len(e.data)-e.byteIndex)*8 - used
}
