package memcomparable

// PutOptionTag writes the 1-byte Option discriminant: 0x00 for none,
// 0x01 for some. Callers write the payload themselves immediately after
// when present, e.g.:
//
//	if v == nil {
//	    s.PutOptionTag(false)
//	} else {
//	    s.PutOptionTag(true)
//	    s.PutUint32(*v)
//	}
func (s *Serializer) PutOptionTag(present bool) {
	if present {
		s.w.putUint8(1)
		return
	}
	s.w.putUint8(0)
}

// GetOptionTag reads the 1-byte Option discriminant. The caller reads the
// payload itself when the result is true.
func (d *Deserializer) GetOptionTag() (bool, error) {
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
		return false, &InvalidTagEncodingError{Value: v}
	}
}

// PutOption writes an Option[T] given an encoder for its payload.
func PutOption[T any](s *Serializer, v *T, encode func(*Serializer, T)) {
	if v == nil {
		s.PutOptionTag(false)
		return
	}
	s.PutOptionTag(true)
	encode(s, *v)
}

// GetOption reads an Option[T] given a decoder for its payload.
func GetOption[T any](d *Deserializer, decode func(*Deserializer) (T, error)) (*T, error) {
	present, err := d.GetOptionTag()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := decode(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
