package memcomparable

import "unicode/utf8"

const (
	bytesChunkSize     = 8
	bytesChunkUnitSize = bytesChunkSize + 1
)

// PutBytes writes b as a length-self-delimiting, chunked byte string: a
// single 0x00 if b is empty, otherwise a 0x01 prefix followed by 9-byte
// groups (8 payload bytes, zero-padded on the right, plus a trailer byte).
// The trailer is the group's significant byte count (1..8) for the final
// group, or 9 if the group is full and at least one more group follows.
// Encoding the trailer this way makes a string sort after any of its
// proper prefixes: the prefix's zero padding or its smaller trailer byte
// is the first byte that differs.
func (s *Serializer) PutBytes(b []byte) {
	if len(b) == 0 {
		s.w.putUint8(0)
		return
	}
	s.w.putUint8(1)
	for i := 0; ; i += bytesChunkSize {
		remaining := len(b) - i
		if remaining >= bytesChunkSize {
			s.w.putSlice(b[i : i+bytesChunkSize])
			if remaining == bytesChunkSize {
				s.w.putUint8(bytesChunkSize)
				return
			}
			s.w.putUint8(bytesChunkUnitSize)
			continue
		}
		s.w.putSlice(b[i:])
		s.w.putZeros(bytesChunkSize - remaining)
		s.w.putUint8(uint8(remaining))
		return
	}
}

// PutString writes s as its UTF-8 byte string, using the PutBytes framing.
func (s *Serializer) PutString(str string) {
	s.PutBytes([]byte(str))
}

// GetBytes reads a chunked byte string and returns its payload.
func (d *Deserializer) GetBytes() ([]byte, error) {
	prefix, err := d.r.getUint8()
	if err != nil {
		return nil, err
	}
	switch prefix {
	case 0:
		return nil, nil
	case 1:
		// fall through to chunk loop
	default:
		return nil, &InvalidBytesEncodingError{Value: prefix}
	}

	var out []byte
	group := make([]byte, bytesChunkSize)
	for {
		if err := d.r.copyToSlice(group); err != nil {
			return nil, err
		}
		trailer, err := d.r.getUint8()
		if err != nil {
			return nil, err
		}
		switch {
		case trailer == bytesChunkUnitSize:
			out = append(out, group...)
		case trailer >= 1 && trailer <= bytesChunkSize:
			out = append(out, group[:trailer]...)
			return out, nil
		default:
			return nil, &InvalidBytesEncodingError{Value: trailer}
		}
	}
}

// GetString reads a chunked byte string and validates it as UTF-8 text.
func (d *Deserializer) GetString() (string, error) {
	b, err := d.GetBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrUtf8
	}
	return string(b), nil
}
