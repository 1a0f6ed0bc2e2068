package memcomparable_test

// This file contains small helpers shared by the tests in this package,
// it doesn't have any tests itself.

import "bytes"

// compareBytes is a thin wrapper over bytes.Compare, used at call sites
// to make order assertions read as "x sorts before y".
func compareBytes(x, y []byte) int {
	return bytes.Compare(x, y)
}
