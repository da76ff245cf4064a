// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Document errors
	CodeNotFound  Code = "NOT_FOUND"
	CodeParse     Code = "PARSE_ERROR"
	CodeNotObject Code = "NOT_OBJECT"

	// Filesystem errors
	CodeRead  Code = "READ_ERROR"
	CodeWrite Code = "WRITE_ERROR"
)

// Process exit codes reported by CLI entry points.
const (
	ExitOK       = 0
	ExitUnknown  = 1
	ExitNotFound = 2
	ExitInvalid  = 3
	ExitIO       = 4
)

// ExitCode maps domain codes to process exit codes.
func (c Code) ExitCode() int {
	switch c {
	case CodeNotFound:
		return ExitNotFound

	// Invalid - the file exists but its content cannot be patched
	case CodeParse,
		CodeNotObject:
		return ExitInvalid

	// IO - permissions, disk full
	case CodeRead,
		CodeWrite:
		return ExitIO

	default:
		return ExitUnknown
	}
}
