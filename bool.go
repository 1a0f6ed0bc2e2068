package memcomparable

// PutBool writes b as a single byte: 0x00 for false, 0x01 for true.
func (s *Serializer) PutBool(b bool) {
	if b {
		s.w.putUint8(1)
		return
	}
	s.w.putUint8(0)
}

// GetBool reads a single byte and interprets it as a bool. Any byte other
// than 0x00 or 0x01 is reported as InvalidBoolEncodingError.
func (d *Deserializer) GetBool() (bool, error) {
	v, err := d.r.getUint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidBoolEncodingError{Value: v}
	}
}
