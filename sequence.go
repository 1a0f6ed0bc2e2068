package memcomparable

// PutSeqElement writes the 0x01 marker preceding each sequence element.
// Call once before every element, then PutSeqEnd after the last one.
func (s *Serializer) PutSeqElement() {
	s.w.putUint8(1)
}

// PutSeqEnd writes the 0x00 terminator following a sequence's last
// element. An empty sequence is just this terminator.
func (s *Serializer) PutSeqEnd() {
	s.w.putUint8(0)
}

// GetSeqTag reads the next sequence marker and reports whether another
// element follows. false means the terminator was consumed and the
// sequence is done.
func (d *Deserializer) GetSeqTag() (bool, error) {
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
		return false, &InvalidSeqEncodingError{Value: v}
	}
}

// PutSlice writes a Seq[T] built from a Go slice, given an encoder for
// each element.
func PutSlice[T any](s *Serializer, vs []T, encode func(*Serializer, T)) {
	for _, v := range vs {
		s.PutSeqElement()
		encode(s, v)
	}
	s.PutSeqEnd()
}

// GetSlice reads a Seq[T] into a Go slice, given a decoder for each
// element.
func GetSlice[T any](d *Deserializer, decode func(*Deserializer) (T, error)) ([]T, error) {
	var out []T
	for {
		more, err := d.GetSeqTag()
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
		v, err := decode(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
