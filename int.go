package memcomparable

// Signed integers are written as their unsigned bit pattern with the most
// significant bit toggled (offset binary). This maps two's-complement
// order onto unsigned big-endian order, so the same FlipIO-backed
// fixed-width writers used for unsigned integers can be reused unchanged.

const (
	signBit8  = uint8(1) << 7
	signBit16 = uint16(1) << 15
	signBit32 = uint32(1) << 31
	signBit64 = uint64(1) << 63
)

// PutInt8 writes v sign-flipped, as a single big-endian byte.
func (s *Serializer) PutInt8(v int8) {
	s.w.putUint8(uint8(v) ^ signBit8)
}

// GetInt8 reads a single big-endian byte and undoes the sign flip.
func (d *Deserializer) GetInt8() (int8, error) {
	v, err := d.r.getUint8()
	if err != nil {
		return 0, err
	}
	return int8(v ^ signBit8), nil
}

// PutInt16 writes v sign-flipped, as 2 big-endian bytes.
func (s *Serializer) PutInt16(v int16) {
	s.w.putUint16(uint16(v) ^ signBit16)
}

// GetInt16 reads 2 big-endian bytes and undoes the sign flip.
func (d *Deserializer) GetInt16() (int16, error) {
	v, err := d.r.getUint16()
	if err != nil {
		return 0, err
	}
	return int16(v ^ signBit16), nil
}

// PutInt32 writes v sign-flipped, as 4 big-endian bytes.
func (s *Serializer) PutInt32(v int32) {
	s.w.putUint32(uint32(v) ^ signBit32)
}

// GetInt32 reads 4 big-endian bytes and undoes the sign flip.
func (d *Deserializer) GetInt32() (int32, error) {
	v, err := d.r.getUint32()
	if err != nil {
		return 0, err
	}
	return int32(v ^ signBit32), nil
}

// PutInt64 writes v sign-flipped, as 8 big-endian bytes.
func (s *Serializer) PutInt64(v int64) {
	s.w.putUint64(uint64(v) ^ signBit64)
}

// GetInt64 reads 8 big-endian bytes and undoes the sign flip.
func (d *Deserializer) GetInt64() (int64, error) {
	v, err := d.r.getUint64()
	if err != nil {
		return 0, err
	}
	return int64(v ^ signBit64), nil
}
