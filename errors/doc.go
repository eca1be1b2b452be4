// Package errors provides structured error types for the lookalike codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: 1-based character
// position, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidSymbol).
//		Position(5).
//		Value('X').
//		Detail("invalid character %q", 'X').
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidSymbol(errors.PhaseDecode, 5, 'X')
//	err := errors.ChecksumMismatch(0xCBF43926, 0xDEADBEEF)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
