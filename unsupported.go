package memcomparable

// PutMap always fails: map/dictionary types have no defined memcomparable
// ordering (ordering across arbitrary unordered collections is
// undefined), so they are rejected rather than silently given an
// encoding order downstream code might rely on.
func (s *Serializer) PutMap() error {
	return NotSupported("map")
}

// GetMap always fails, the decode-side counterpart of PutMap.
func (d *Deserializer) GetMap() error {
	return NotSupported("map")
}

// GetAny always fails: this format is not self-describing, so there is
// no way to decode a value without being told its expected type.
func (d *Deserializer) GetAny() error {
	return NotSupported("deserialize_any")
}

// GetBorrowedString always fails: an encoded string's payload is split
// into 8-byte groups separated by trailer bytes, so decoding copies it
// out of the input and a zero-copy borrowed string view is never returned.
func (d *Deserializer) GetBorrowedString() error {
	return NotSupported("borrowed str")
}

// GetIdentifier always fails: this format carries no field/variant name
// metadata for a structured-value adapter to resolve.
func (d *Deserializer) GetIdentifier() error {
	return NotSupported("identifier")
}

// SkipValue always fails: skipping an arbitrary, untyped value requires
// self-describing framing this format doesn't carry (see SkipBytes for
// the one shape, byte strings, that can be skipped without a type).
func (d *Deserializer) SkipValue() error {
	return NotSupported("ignored_any")
}
