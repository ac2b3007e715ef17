// Package errors provides structured error types for the python-xdis library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the version or opcode involved and a
// cause chain, so callers can decide whether an unknown version is fatal for
// them or merely means "treat as unsupported".
//
// Use the convenience constructors for the common cases:
//
//	err := errors.UnknownVersion(errors.PhaseQuery, "9.9.9")
//	err := errors.TableConsistency("3.5", "remove LOAD_FAST (99): no such opcode")
//
// Match on kind regardless of phase with the exported sentinels:
//
//	if errors.Is(err, errors.ErrUnknownVersion) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
