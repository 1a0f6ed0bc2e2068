package memcomparable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftdb/memcomparable"
)

func TestIntRoundTrip(t *testing.T) {
	values := []int64{
		-0x8000000000000000, -1, 0, 1, 0x12, 0x1234, 0x12345678,
		0x1234567887654321, 0x7FFFFFFFFFFFFFFF,
	}
	for _, v := range values {
		b, err := memcomparable.ToVec(func(s *memcomparable.Serializer) error {
			s.PutInt64(v)
			return nil
		})
		require.NoError(t, err)
		var got int64
		err = memcomparable.FromSlice(b, func(d *memcomparable.Deserializer) error {
			var err error
			got, err = d.GetInt64()
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestIntOrder(t *testing.T) {
	values := []int32{-0x80000000, -2, -1, 0, 1, 2, 0x7FFFFFFF}
	var encoded [][]byte
	for _, v := range values {
		b, _ := memcomparable.ToVec(func(s *memcomparable.Serializer) error {
			s.PutInt32(v)
			return nil
		})
		encoded = append(encoded, b)
	}
	for i := 1; i < len(encoded); i++ {
		assert.Negative(t, compareBytes(encoded[i-1], encoded[i]),
			"encode(%d) should sort before encode(%d)", values[i-1], values[i])
	}
}

// Scenario 3 of the documented byte layout: a tuple of signed integers is
// just the concatenation of their individual encodings.
func TestTupleOfSignedInts(t *testing.T) {
	b, err := memcomparable.ToVec(func(s *memcomparable.Serializer) error {
		s.PutInt8(0x12)
		s.PutInt16(0x1234)
		s.PutInt32(0x12345678)
		s.PutInt64(0x1234567887654321)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x92,
		0x92, 0x34,
		0x92, 0x34, 0x56, 0x78,
		0x92, 0x34, 0x56, 0x78, 0x87, 0x65, 0x43, 0x21,
	}, b)
}
