// Package wire provides bounds-checked little-endian readers and writers over
// byte slices.
//
// Reader and Writer track their position so that composite layouts can place
// each field at the cumulative offset of the fields before it. Neither type
// grows its buffer: the Writer is handed a slice of the exact encoded size.
//
// This package is internal to the codec.
package wire
