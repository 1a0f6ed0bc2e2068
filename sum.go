package memcomparable

// PutVariantIndex writes the 1-byte tag identifying which variant of a
// tagged sum is present. index is the variant's zero-based declaration
// order. It is an error to call this with an index that doesn't fit in a
// byte; sum types are limited to 256 variants.
func (s *Serializer) PutVariantIndex(index int) error {
	if index < 0 || index > 255 {
		return &TooManyVariantsError{Index: index}
	}
	s.w.putUint8(uint8(index))
	return nil
}

// GetVariantIndex reads the 1-byte variant tag. Callers dispatch to the
// matching variant's payload decoder by the returned index.
func (d *Deserializer) GetVariantIndex() (int, error) {
	v, err := d.r.getUint8()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
