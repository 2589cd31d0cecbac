package serialize

import (
	"fmt"
	"time"
)

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess          RetCode = iota // 0: Serialization completed.
	RetCDeadlineExceeded                // 1: The configured timeout elapsed before traversal completed.
	RetCInternalError                   // 2: Unexpected traversal fault, treated as a defect.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCDeadlineExceeded:
		return "DeadlineExceeded"
	case RetCInternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the typed failure returned by the engine. It wraps a return code,
// a message, and the wall time elapsed when the failure was observed.
//
// DeadlineExceeded is recoverable: the caller may retry with a larger
// budget. InternalError indicates a defect and should not be retried.
type Error struct {
	Code    RetCode       // The return code
	Msg     string        // The error message
	Elapsed time.Duration // Wall time since the serialize call started
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("SerializeError (code %s): %s (elapsed %v)", e.Code, e.Msg, e.Elapsed)
}

// Is makes errors.Is match on the return code, so callers can test against
// the ErrDeadlineExceeded / ErrInternal sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Sentinels for errors.Is.
var (
	ErrDeadlineExceeded = &Error{Code: RetCDeadlineExceeded, Msg: "deadline exceeded"}
	ErrInternal         = &Error{Code: RetCInternalError, Msg: "internal error"}
)
