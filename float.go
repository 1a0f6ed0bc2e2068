package memcomparable

import "math"

// Float encoding normalizes NaN to a single canonical bit pattern and zero
// to +0.0, then maps the IEEE-754 bit pattern into unsigned order: positive
// values get their sign bit set, negative values are fully complemented.
// This preserves total order on finite floats and ±∞, and gives NaN a
// single well-defined (if otherwise unspecified) position in that order.

// PutFloat32 writes v using the order-preserving float32 encoding.
func (s *Serializer) PutFloat32(v float32) {
	s.w.putUint32(encodeFloat32(v))
}

// GetFloat32 reads an order-preserving float32 encoding.
func (d *Deserializer) GetFloat32() (float32, error) {
	bits, err := d.r.getUint32()
	if err != nil {
		return 0, err
	}
	return decodeFloat32(bits), nil
}

// PutFloat64 writes v using the order-preserving float64 encoding.
func (s *Serializer) PutFloat64(v float64) {
	s.w.putUint64(encodeFloat64(v))
}

// GetFloat64 reads an order-preserving float64 encoding.
func (d *Deserializer) GetFloat64() (float64, error) {
	bits, err := d.r.getUint64()
	if err != nil {
		return 0, err
	}
	return decodeFloat64(bits), nil
}

func encodeFloat32(v float32) uint32 {
	if math.IsNaN(float64(v)) {
		v = float32(math.NaN())
	}
	if v == 0 {
		v = 0
	}
	bits := math.Float32bits(v)
	if bits&(1<<31) == 0 {
		return bits | (1 << 31)
	}
	return ^bits
}

func decodeFloat32(bits uint32) float32 {
	if bits&(1<<31) != 0 {
		bits &^= 1 << 31
	} else {
		bits = ^bits
	}
	return math.Float32frombits(bits)
}

func encodeFloat64(v float64) uint64 {
	if math.IsNaN(v) {
		v = math.NaN()
	}
	if v == 0 {
		v = 0
	}
	bits := math.Float64bits(v)
	if bits&(1<<63) == 0 {
		return bits | (1 << 63)
	}
	return ^bits
}

func decodeFloat64(bits uint64) float64 {
	if bits&(1<<63) != 0 {
		bits &^= 1 << 63
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits)
}
