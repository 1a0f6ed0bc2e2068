package memcomparable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftdb/memcomparable"
)

func TestTrailingCharacters(t *testing.T) {
	b, err := memcomparable.ToVec(func(s *memcomparable.Serializer) error {
		s.PutUint8(0x12)
		return nil
	})
	require.NoError(t, err)

	extra := append(append([]byte{}, b...), 0xFF)
	err = memcomparable.FromSlice(extra, func(d *memcomparable.Deserializer) error {
		_, err := d.GetUint8()
		return err
	})
	assert.ErrorIs(t, err, memcomparable.ErrTrailingCharacters)
}

func TestUnexpectedEOF(t *testing.T) {
	err := memcomparable.FromSlice([]byte{0x12}, func(d *memcomparable.Deserializer) error {
		_, err := d.GetUint32()
		return err
	})
	assert.ErrorIs(t, err, memcomparable.ErrUnexpectedEOF)
}

func TestPositionAndHasRemaining(t *testing.T) {
	b, err := memcomparable.ToVec(func(s *memcomparable.Serializer) error {
		s.PutUint32(1)
		s.PutUint32(2)
		return nil
	})
	require.NoError(t, err)

	d := memcomparable.NewDeserializer(b)
	assert.True(t, d.HasRemaining())
	assert.Equal(t, 0, d.Position())

	_, err = d.GetUint32()
	require.NoError(t, err)
	assert.Equal(t, 4, d.Position())
	assert.True(t, d.HasRemaining())

	d.Advance(4)
	assert.False(t, d.HasRemaining())
	assert.Equal(t, 8, d.Position())
}
