package memcomparable

// SkipBytes advances past an encoded byte string without materializing
// it, returning the number of payload bytes skipped. It parses exactly
// the framing GetBytes does; callers scanning composite keys use it to
// pass over fields they don't need to decode.
func (d *Deserializer) SkipBytes() (int, error) {
	prefix, err := d.r.getUint8()
	if err != nil {
		return 0, err
	}
	switch prefix {
	case 0:
		return 0, nil
	case 1:
		// fall through to chunk loop
	default:
		return 0, &InvalidBytesEncodingError{Value: prefix}
	}

	n := 0
	for {
		if d.r.remaining() < bytesChunkUnitSize {
			return 0, ErrUnexpectedEOF
		}
		d.r.advance(bytesChunkSize)
		trailer, err := d.r.getUint8()
		if err != nil {
			return 0, err
		}
		switch {
		case trailer == bytesChunkUnitSize:
			n += bytesChunkSize
		case trailer >= 1 && trailer <= bytesChunkSize:
			n += int(trailer)
			return n, nil
		default:
			return 0, &InvalidBytesEncodingError{Value: trailer}
		}
	}
}
