package memcomparable

// Deserializer decodes typed values from a byte slice cursor. It is not
// safe for concurrent use.
type Deserializer struct {
	r        flipReader
	inputLen int
}

// NewDeserializer returns a Deserializer reading from data.
func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{r: flipReader{data: data}, inputLen: len(data)}
}

// SetReverse toggles whether subsequently read bytes are bitwise
// complemented before being interpreted, the decode-side counterpart of
// Serializer.SetReverse. The caller must toggle it at the same points in
// the byte stream the encoder did.
func (d *Deserializer) SetReverse(reverse bool) {
	d.r.flip = reverse
}

// Position returns the number of bytes consumed so far.
func (d *Deserializer) Position() int {
	return d.inputLen - d.r.remaining()
}

// HasRemaining reports whether any unread bytes remain.
func (d *Deserializer) HasRemaining() bool {
	return d.r.remaining() > 0
}

// Advance skips n bytes without interpreting them.
func (d *Deserializer) Advance(n int) {
	d.r.advance(n)
}

// FromSlice decodes a single value from data by invoking decode with a
// Deserializer wrapping it, then requires that no bytes remain.
// ErrTrailingCharacters is returned if any do.
func FromSlice(data []byte, decode func(*Deserializer) error) error {
	d := NewDeserializer(data)
	if err := decode(d); err != nil {
		return err
	}
	if d.HasRemaining() {
		return ErrTrailingCharacters
	}
	return nil
}
