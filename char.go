package memcomparable

import "unicode/utf8"

// PutChar writes r as its Unicode scalar value, using the uint32 encoding.
func (s *Serializer) PutChar(r rune) {
	s.w.putUint32(uint32(r))
}

// GetChar reads a uint32 and validates it as a Unicode scalar value.
// InvalidCharEncodingError is returned for surrogate halves and values
// above the Unicode range.
func (d *Deserializer) GetChar() (rune, error) {
	v, err := d.r.getUint32()
	if err != nil {
		return 0, err
	}
	r := rune(v)
	if v > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, &InvalidCharEncodingError{Value: v}
	}
	return r, nil
}
