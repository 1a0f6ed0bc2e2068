package memcomparable

// Uint128 is an unsigned 128-bit integer, stored as two big-endian halves.
// Go has no native 128-bit integer type; this is the idiomatic stand-in,
// the same high/low split used by fixed-size 128-bit values elsewhere in
// the ecosystem (e.g. a UUID split into two uint64s for arithmetic).
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer, stored as two big-endian halves with
// Hi holding the sign bit in its most significant position.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// PutUint128 writes v as 16 big-endian bytes, high half first.
func (s *Serializer) PutUint128(v Uint128) {
	s.w.putUint64(v.Hi)
	s.w.putUint64(v.Lo)
}

// GetUint128 reads 16 big-endian bytes, high half first.
func (d *Deserializer) GetUint128() (Uint128, error) {
	hi, err := d.r.getUint64()
	if err != nil {
		return Uint128{}, err
	}
	lo, err := d.r.getUint64()
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// PutInt128 writes v sign-flipped (offset binary on the high half's top
// bit), as 16 big-endian bytes, high half first.
func (s *Serializer) PutInt128(v Int128) {
	s.w.putUint64(v.Hi ^ signBit64)
	s.w.putUint64(v.Lo)
}

// GetInt128 reads 16 big-endian bytes and undoes the sign flip.
func (d *Deserializer) GetInt128() (Int128, error) {
	hi, err := d.r.getUint64()
	if err != nil {
		return Int128{}, err
	}
	lo, err := d.r.getUint64()
	if err != nil {
		return Int128{}, err
	}
	return Int128{Hi: hi ^ signBit64, Lo: lo}, nil
}
