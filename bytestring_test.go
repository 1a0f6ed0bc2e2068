package memcomparable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftdb/memcomparable"
)

func encodeString(t *testing.T, s string) []byte {
	t.Helper()
	b, err := memcomparable.ToVec(func(ser *memcomparable.Serializer) error {
		ser.PutString(s)
		return nil
	})
	require.NoError(t, err)
	return b
}

func TestBytesGroupFraming(t *testing.T) {
	assert.Equal(t, []byte{0}, encodeString(t, ""))

	assert.Equal(t, []byte{
		1, '1', '2', '3', 0, 0, 0, 0, 0, 3,
	}, encodeString(t, "123"))

	assert.Equal(t, []byte{
		1, '1', '2', '3', '4', '5', '6', '7', '8', 8,
	}, encodeString(t, "12345678"))

	assert.Equal(t, []byte{
		1, '1', '2', '3', '4', '5', '6', '7', '8', 9,
		'9', '0', 0, 0, 0, 0, 0, 0, 2,
	}, encodeString(t, "1234567890"))
}

func TestStringRoundTrip(t *testing.T) {
	values := []string{"", "a", "123", "12345678", "1234567890", "hello, world", "日本語"}
	for _, v := range values {
		b := encodeString(t, v)
		var got string
		err := memcomparable.FromSlice(b, func(d *memcomparable.Deserializer) error {
			var err error
			got, err = d.GetString()
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestBytesOrder(t *testing.T) {
	values := []string{"", "1", "12", "123", "12345678", "123456789", "2"}
	var encoded [][]byte
	for _, v := range values {
		encoded = append(encoded, encodeString(t, v))
	}
	for i := 1; i < len(encoded); i++ {
		assert.Negative(t, compareBytes(encoded[i-1], encoded[i]),
			"encode(%q) should sort before encode(%q)", values[i-1], values[i])
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	b, err := memcomparable.ToVec(func(s *memcomparable.Serializer) error {
		s.PutBytes([]byte{0xFF, 0xFE})
		return nil
	})
	require.NoError(t, err)

	err = memcomparable.FromSlice(b, func(d *memcomparable.Deserializer) error {
		_, err := d.GetString()
		return err
	})
	assert.ErrorIs(t, err, memcomparable.ErrUtf8)
}

func TestBytesInvalidTrailer(t *testing.T) {
	bad := []byte{1, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 10}
	err := memcomparable.FromSlice(bad, func(d *memcomparable.Deserializer) error {
		_, err := d.GetBytes()
		return err
	})
	var target *memcomparable.InvalidBytesEncodingError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, byte(10), target.Value)
}

func TestSkipBytes(t *testing.T) {
	b, err := memcomparable.ToVec(func(s *memcomparable.Serializer) error {
		s.PutString("1234567890")
		s.PutUint8(0x42)
		return nil
	})
	require.NoError(t, err)

	d := memcomparable.NewDeserializer(b)
	n, err := d.SkipBytes()
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	rest, err := d.GetUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), rest)
}
