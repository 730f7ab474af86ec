// Package types defines the layout kind enumeration shared by the codec.
//
// This package is internal to the codec.
package types
