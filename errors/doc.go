// Package errors provides structured error types for the layout codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/layout type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOutOfRange).
//		Path("setParams", "param").
//		GoType("int").
//		LayoutType("u8").
//		Detail("value 300 does not fit").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseEncode, path, 300, "u8")
//	err := errors.BufferTooSmall(errors.PhaseDecode, path, 8, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// The exported sentinels (ErrInvalidName, ErrWrongLength, ...) match an error
// of the same Kind raised in any phase.
package errors
