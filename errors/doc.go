// Package errors provides structured error types for the spirv-graph module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: opcode name, entity id, byte offset in the
// stream, the violated validation rule, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Op("OpTypeInt").
//		ID(7).
//		Offset(40).
//		Detail("signedness must be 0 or 1").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownID(7)
//	err := errors.WordCountMismatch("OpTypeInt", 40, 5, 4)
//
// Validation violations are batched into ValidationErrors so one pass can
// report all of them. All errors implement the standard error interface and
// support errors.Is/As.
package errors
