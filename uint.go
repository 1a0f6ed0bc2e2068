package memcomparable

// Unsigned integers encode as their big-endian bit pattern. Ordering of the
// encoded bytes is immediate: big-endian unsigned comparison already
// matches numeric order, so no transformation is needed beyond FlipIO.

// PutUint8 writes v as a single big-endian byte.
func (s *Serializer) PutUint8(v uint8) {
	s.w.putUint8(v)
}

// GetUint8 reads a single big-endian byte.
func (d *Deserializer) GetUint8() (uint8, error) {
	return d.r.getUint8()
}

// PutUint16 writes v as 2 big-endian bytes.
func (s *Serializer) PutUint16(v uint16) {
	s.w.putUint16(v)
}

// GetUint16 reads 2 big-endian bytes.
func (d *Deserializer) GetUint16() (uint16, error) {
	return d.r.getUint16()
}

// PutUint32 writes v as 4 big-endian bytes.
func (s *Serializer) PutUint32(v uint32) {
	s.w.putUint32(v)
}

// GetUint32 reads 4 big-endian bytes.
func (d *Deserializer) GetUint32() (uint32, error) {
	return d.r.getUint32()
}

// PutUint64 writes v as 8 big-endian bytes.
func (s *Serializer) PutUint64(v uint64) {
	s.w.putUint64(v)
}

// GetUint64 reads 8 big-endian bytes.
func (d *Deserializer) GetUint64() (uint64, error) {
	return d.r.getUint64()
}
