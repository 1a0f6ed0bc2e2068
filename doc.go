// Package memcomparable implements a memcomparable serialization codec:
// byte encodings for scalar and composite values chosen so that the
// lexicographic order of the encoded bytes matches the natural order of
// the values they represent.
//
// This property lets an ordered key-value store, a B-tree index, or a
// sorted log-structured merge store compare, sort, and range-scan by raw
// byte comparison of encoded keys, without decoding them first.
//
// The package is organized in four layers, leaves first: a bit-flipping
// byte sink/source used to produce descending-order encodings (flip.go),
// a scalar codec for booleans, fixed-width integers up to 128 bits,
// IEEE-754 floats, Unicode scalar values, and byte strings, a composite
// codec for options, sequences, tuples, and tagged sums, and an optional
// extended-decimal codec gated behind the decimal build tag.
//
// Encoding is driven through a Serializer, decoding through a
// Deserializer. Neither is self-describing: the caller must know the
// expected shape of the value being decoded. Serializer and Deserializer
// are not safe for concurrent use; distinct instances over distinct
// buffers require no coordination.
package memcomparable
