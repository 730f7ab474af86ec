// Package convert provides internal utilities for the layout codec.
//
// # Contents
//
//   - coerce.go: numeric coercion from dynamic Go values to unsigned widths
//   - helpers.go: checked size arithmetic and type naming
//
// This package is internal to the codec.
package convert
